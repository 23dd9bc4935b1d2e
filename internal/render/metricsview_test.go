package render_test

import (
	"testing"

	"github.com/okraft/skillscope/internal/domain/model"
	"github.com/okraft/skillscope/internal/render"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsView_Render(t *testing.T) {
	Convey("Given dataset metrics", t, func() {
		surface := render.NewHTMLSurface()
		view := render.NewMetricsView()

		m := model.Metrics{
			TotalSkills:    23,
			TotalClusters:  4,
			TotalEmployees: 15,
			AvgProficiency: 2.466,
		}

		Convey("When the summary is rendered", func() {
			So(view.Render(surface, m), ShouldBeNil)

			Convey("Then every display slot is filled", func() {
				So(surface.Slot(render.SlotTotalSkills), ShouldEqual, "23")
				So(surface.Slot(render.SlotTotalClusters), ShouldEqual, "4")
				So(surface.Slot(render.SlotTotalEmployees), ShouldEqual, "15")
				So(surface.Slot(render.SlotAvgProficiency), ShouldEqual, "2.5")
			})
		})
	})
}
