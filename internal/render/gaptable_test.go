package render_test

import (
	"strings"
	"testing"

	"github.com/okraft/skillscope/internal/domain/model"
	"github.com/okraft/skillscope/internal/render"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGapTableView_Render(t *testing.T) {
	Convey("Given gap records in a deliberate order", t, func() {
		surface := render.NewHTMLSurface()
		view := render.NewGapTableView()

		gaps := []model.GapRecord{
			{Skill: "Zig", Required: 3, Current: 1, Gap: 2, Priority: model.PriorityMedium},
			{Skill: "Ada", Required: 5, Current: 0, Gap: 5, Priority: model.PriorityHigh},
			{Skill: "COBOL", Required: 2, Current: 1, Gap: 1, Priority: model.PriorityLow},
		}

		Convey("When the table is rendered", func() {
			err := view.Render(surface, gaps)
			So(err, ShouldBeNil)

			got := surface.Fragment(render.MountGapTable)

			Convey("Then rows keep the input order verbatim", func() {
				zig := strings.Index(got, "<td>Zig</td>")
				ada := strings.Index(got, "<td>Ada</td>")
				cobol := strings.Index(got, "<td>COBOL</td>")
				So(zig, ShouldBeGreaterThanOrEqualTo, 0)
				So(ada, ShouldBeGreaterThan, zig)
				So(cobol, ShouldBeGreaterThan, ada)
			})

			Convey("And each priority gets its style class", func() {
				So(got, ShouldContainSubstring, `priority priority-medium">Medium`)
				So(got, ShouldContainSubstring, `priority priority-high">High`)
				So(got, ShouldContainSubstring, `priority priority-low">Low`)
			})

			Convey("And every row carries an action button for its skill", func() {
				So(got, ShouldContainSubstring, `data-skill="Zig"`)
				So(got, ShouldContainSubstring, `data-skill="Ada"`)
				So(got, ShouldContainSubstring, `data-skill="COBOL"`)
			})
		})
	})

	Convey("Given a record with an unrecognized priority", t, func() {
		surface := render.NewHTMLSurface()
		view := render.NewGapTableView()

		gaps := []model.GapRecord{
			{Skill: "Fortran", Required: 4, Current: 2, Gap: 2, Priority: model.Priority("Urgent")},
		}

		Convey("When the table is rendered", func() {
			err := view.Render(surface, gaps)

			Convey("Then the pass succeeds with neutral styling", func() {
				So(err, ShouldBeNil)
				got := surface.Fragment(render.MountGapTable)
				So(got, ShouldContainSubstring, `priority priority-neutral">Urgent`)
				So(got, ShouldContainSubstring, "<td>Fortran</td>")
			})
		})
	})

	Convey("Given a skill name containing markup", t, func() {
		surface := render.NewHTMLSurface()
		view := render.NewGapTableView()

		gaps := []model.GapRecord{
			{Skill: "C++ <templates>", Required: 1, Current: 0, Gap: 1, Priority: model.PriorityLow},
		}

		Convey("Then the rendered cell is escaped", func() {
			So(view.Render(surface, gaps), ShouldBeNil)
			got := surface.Fragment(render.MountGapTable)
			So(got, ShouldContainSubstring, "C++ &lt;templates&gt;")
			So(got, ShouldNotContainSubstring, "<templates>")
		})
	})
}
