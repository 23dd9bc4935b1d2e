package export_test

import (
	"testing"
	"time"

	"github.com/okraft/skillscope/internal/domain/export"
	"github.com/okraft/skillscope/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestToCSV(t *testing.T) {
	Convey("Given a single gap row", t, func() {
		fields := []string{"skill", "required", "current", "gap", "priority"}
		rows := [][]string{{"Blockchain", "5", "0", "5", "High"}}

		Convey("Then the output matches byte for byte", func() {
			So(export.ToCSV(fields, rows), ShouldEqual,
				"skill,required,current,gap,priority\nBlockchain,5,0,5,High\n")
		})
	})

	Convey("Given no rows", t, func() {
		Convey("Then only the header line is emitted", func() {
			So(export.ToCSV([]string{"a", "b"}, nil), ShouldEqual, "a,b\n")
		})
	})
}

func TestGapCSV(t *testing.T) {
	Convey("Given gap records", t, func() {
		gaps := []model.GapRecord{
			{Skill: "Rust", Required: 4, Current: 1, Gap: 3, Priority: model.PriorityHigh},
			{Skill: "Terraform", Required: 4, Current: 3, Gap: 1, Priority: model.PriorityLow},
		}

		got := export.GapCSV(gaps)

		Convey("Then rows keep their input order under the header", func() {
			So(got, ShouldEqual,
				"Skill,Required,Current,Gap,Priority\n"+
					"Rust,4,1,3,High\n"+
					"Terraform,4,3,1,Low\n")
		})
	})

	Convey("Given a gap value that disagrees with required minus current", t, func() {
		gaps := []model.GapRecord{
			{Skill: "Go", Required: 5, Current: 1, Gap: 2, Priority: model.PriorityMedium},
		}

		Convey("Then the supplied gap is emitted verbatim", func() {
			So(export.GapCSV(gaps), ShouldContainSubstring, "Go,5,1,2,Medium")
		})
	})
}

func TestClusterCSV(t *testing.T) {
	Convey("Given clusters with multiple skills", t, func() {
		clusters := []model.Cluster{
			{ID: "cluster-1", Name: "Programming Languages", Skills: []string{"GO", "RUST"}, Count: 9},
			{ID: "cluster-2", Name: "Leadership", Skills: []string{"MENTORING"}, Count: 2},
		}

		Convey("Then skills are joined with a semicolon separator", func() {
			So(export.ClusterCSV(clusters), ShouldEqual,
				"Cluster,Skills,Count\n"+
					"Programming Languages,GO; RUST,9\n"+
					"Leadership,MENTORING,2\n")
		})
	})
}

func TestClusterStatsFilename(t *testing.T) {
	Convey("Given a fixed timestamp", t, func() {
		ts := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

		Convey("Then the filename carries it in compact form", func() {
			So(export.ClusterStatsFilename(ts), ShouldEqual, "cluster_stats_20260314_092653.csv")
		})
	})
}
