package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/okraft/skillscope/internal/domain/inventory"
	"github.com/okraft/skillscope/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestInventory_FetchDataset(t *testing.T) {
	Convey("Given raw records with messy skill names and duplicates", t, func() {
		inv := inventory.New(
			inventory.WithRecords([]inventory.Record{
				{EmployeeID: "E001", Skill: "  go ", Department: "Engineering", Proficiency: "EXPERT"},
				{EmployeeID: "E001", Skill: "GO", Department: "Engineering", Proficiency: "BEGINNER"}, // duplicate pair
				{EmployeeID: "E002", Skill: "Go", Department: "Engineering", Proficiency: "INTERMEDIATE"},
				{EmployeeID: "E002", Skill: "Rust", Department: "Engineering", Proficiency: "wizard"}, // unknown level
				{EmployeeID: "", Skill: "Python", Department: "Data", Proficiency: "ADVANCED"},        // dropped
				{EmployeeID: "E003", Skill: "   ", Department: "Data", Proficiency: "ADVANCED"},       // dropped
				{EmployeeID: "E003", Skill: "Python", Department: "Data", Proficiency: "ADVANCED"},
			}),
			inventory.WithCategories([]inventory.Category{
				{Name: "Programming Languages", Skills: []string{"Go", "Rust", "Python"}},
			}),
		)
		ctx := context.Background()

		Convey("When the dataset is fetched without a filter", func() {
			ds, err := inv.FetchDataset(ctx, inventory.Filter{})
			So(err, ShouldBeNil)

			Convey("Then skills are trimmed, upper-cased and deduplicated", func() {
				So(ds.Metrics.TotalSkills, ShouldEqual, 3) // GO, RUST, PYTHON
				So(ds.Metrics.TotalEmployees, ShouldEqual, 3)
			})

			Convey("And the duplicate pair keeps its first occurrence", func() {
				// GO: E001 expert (4) + E002 intermediate (2); RUST: unknown
				// level scored as intermediate (2); PYTHON: advanced (3).
				// (4+2+2+3) / 4 records.
				So(ds.Metrics.AvgProficiency, ShouldAlmostEqual, 2.75, 1e-9)
			})

			Convey("And the taxonomy groups everything into one cluster", func() {
				So(ds.Clusters, ShouldHaveLength, 1)
				So(ds.Clusters[0].ID, ShouldEqual, "cluster-1")
				So(ds.Clusters[0].Name, ShouldEqual, "Programming Languages")
				So(ds.Clusters[0].Count, ShouldEqual, 3)
			})
		})

		Convey("When the dataset is fetched with a department filter", func() {
			ds, err := inv.FetchDataset(ctx, inventory.Filter{inventory.FacetDepartment: "Data"})
			So(err, ShouldBeNil)

			Convey("Then only matching records contribute", func() {
				So(ds.Metrics.TotalSkills, ShouldEqual, 1) // PYTHON
				So(ds.Metrics.TotalEmployees, ShouldEqual, 1)
			})
		})

		Convey("When the context is already cancelled", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			_, err := inv.FetchDataset(cancelled, inventory.Filter{})

			Convey("Then the fetch fails with the fetch error", func() {
				So(errors.Is(err, inventory.ErrFetchFailed), ShouldBeTrue)
			})
		})
	})
}

func TestInventory_Clusters(t *testing.T) {
	Convey("Given skills inside and outside the taxonomy", t, func() {
		inv := inventory.New(
			inventory.WithRecords([]inventory.Record{
				{EmployeeID: "E001", Skill: "Go"},
				{EmployeeID: "E001", Skill: "Rust"},
				{EmployeeID: "E001", Skill: "Kubernetes"},
				{EmployeeID: "E001", Skill: "Juggling"},
			}),
			inventory.WithCategories([]inventory.Category{
				{Name: "Programming Languages", Skills: []string{"Go", "Rust"}},
				{Name: "Cloud & Infrastructure", Skills: []string{"Kubernetes"}},
			}),
		)

		ds, err := inv.FetchDataset(context.Background(), inventory.Filter{})
		So(err, ShouldBeNil)

		Convey("Then unclassified skills fall into a trailing Other cluster", func() {
			names := make([]string, len(ds.Clusters))
			for i, c := range ds.Clusters {
				names[i] = c.Name
			}
			So(names, ShouldResemble, []string{"Programming Languages", "Cloud & Infrastructure", "Other"})
		})

		Convey("And clusters are ordered heaviest first with stable ids", func() {
			So(ds.Clusters[0].Count, ShouldEqual, 2)
			So(ds.Clusters[1].ID, ShouldEqual, "cluster-2")
			So(ds.Clusters[2].ID, ShouldEqual, "cluster-3")
		})
	})
}

func TestInventory_Gaps(t *testing.T) {
	Convey("Given coverage requirements", t, func() {
		inv := inventory.New(
			inventory.WithRecords([]inventory.Record{
				{EmployeeID: "E001", Skill: "Go"},
				{EmployeeID: "E002", Skill: "Go"},
				{EmployeeID: "E001", Skill: "Rust"},
			}),
			inventory.WithRequirements(map[string]int{
				"Go":         2, // fully covered, no gap
				"Rust":       4, // gap 3, ratio 0.75 -> High
				"Kubernetes": 5, // gap 5, ratio 1.0 -> High
				"Terraform":  3, // gap 3, ratio 1.0 -> High
				"mentoring":  10,
			}),
		)

		ds, err := inv.FetchDataset(context.Background(), inventory.Filter{})
		So(err, ShouldBeNil)

		Convey("Then covered requirements produce no gap row", func() {
			for _, g := range ds.Gaps {
				So(g.Skill, ShouldNotEqual, "GO")
			}
		})

		Convey("And gaps are ordered widest first with name tiebreak", func() {
			skills := make([]string, len(ds.Gaps))
			for i, g := range ds.Gaps {
				skills[i] = g.Skill
			}
			So(skills, ShouldResemble, []string{"MENTORING", "KUBERNETES", "RUST", "TERRAFORM"})
		})

		Convey("And priorities follow the unmet-coverage ratio", func() {
			byskill := map[string]model.Priority{}
			for _, g := range ds.Gaps {
				byskill[g.Skill] = g.Priority
			}
			So(byskill["RUST"], ShouldEqual, model.PriorityHigh)
			So(byskill["KUBERNETES"], ShouldEqual, model.PriorityHigh)
		})

		Convey("And the gap field is consistent with required and current", func() {
			for _, g := range ds.Gaps {
				So(g.Gap, ShouldEqual, g.Required-g.Current)
			}
		})
	})
}

func TestInventory_Fixture(t *testing.T) {
	Convey("Given the built-in fixture inventory", t, func() {
		inv := inventory.Fixture()

		ds, err := inv.FetchDataset(context.Background(), inventory.Filter{})
		So(err, ShouldBeNil)

		Convey("Then it yields a non-trivial dataset", func() {
			So(ds.Metrics.TotalSkills, ShouldBeGreaterThan, 0)
			So(ds.Metrics.TotalEmployees, ShouldBeGreaterThan, 0)
			So(ds.Clusters, ShouldNotBeEmpty)
			So(ds.Gaps, ShouldNotBeEmpty)
		})

		Convey("And every gap priority is a recognized value", func() {
			for _, g := range ds.Gaps {
				So(g.Priority.Known(), ShouldBeTrue)
			}
		})
	})
}
