package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/okraft/skillscope/internal/adapters/http/api"
	"github.com/okraft/skillscope/internal/domain/inventory"
	"github.com/okraft/skillscope/internal/domain/model"
	"github.com/okraft/skillscope/internal/render"
	. "github.com/smartystreets/goconvey/convey"
)

// fakeDeps satisfies api.Dependencies with canned responses and records
// what the handlers forwarded.
type fakeDeps struct {
	mu       sync.Mutex
	refreshs []inventory.Filter
	actions  []render.ActionIntent
	notice   string
	pdfErr   error
}

func (f *fakeDeps) RenderDashboard(_ context.Context, width, height float64) (*render.HTMLSurface, error) {
	surface := render.NewHTMLSurface()
	w, _ := surface.Mount(render.MountClusterMap)
	_, _ = w.Write([]byte(`<svg class="cluster-map"></svg>`))
	w, _ = surface.Mount(render.MountGapTable)
	_, _ = w.Write([]byte(`<table class="gap-table"></table>`))
	_ = surface.SetSlot(render.SlotTotalSkills, "23")
	_ = surface.SetSlot(render.SlotTotalClusters, "4")
	_ = surface.SetSlot(render.SlotTotalEmployees, "15")
	_ = surface.SetSlot(render.SlotAvgProficiency, "2.5")
	return surface, nil
}

func (f *fakeDeps) Dataset(_ context.Context) model.Dataset {
	return model.Dataset{
		Metrics: model.Metrics{TotalSkills: 23, TotalClusters: 4, TotalEmployees: 15, AvgProficiency: 2.5},
		Gaps: []model.GapRecord{
			{Skill: "Blockchain", Required: 5, Current: 0, Gap: 5, Priority: model.PriorityHigh},
		},
	}
}

func (f *fakeDeps) Refresh(_ context.Context, filter inventory.Filter) {
	f.mu.Lock()
	f.refreshs = append(f.refreshs, filter)
	f.mu.Unlock()
}

func (f *fakeDeps) RequestAction(_ context.Context, intent render.ActionIntent) {
	f.mu.Lock()
	f.actions = append(f.actions, intent)
	f.mu.Unlock()
}

func (f *fakeDeps) ExportGapsCSV(_ context.Context) (string, []byte) {
	return "skills_gap_analysis.csv", []byte("Skill,Required,Current,Gap,Priority\n")
}

func (f *fakeDeps) ExportClustersCSV(_ context.Context) (string, []byte) {
	return "cluster_stats_20260826_120000.csv", []byte("Cluster,Skills,Count\n")
}

func (f *fakeDeps) ExportSummaryJSON(_ context.Context) (string, []byte, error) {
	return "clustering_summary_20260826_120000.json", []byte(`{"gap_count": 1}` + "\n"), nil
}

func (f *fakeDeps) ExportGapsPDF(_ context.Context) (string, []byte, error) {
	if f.pdfErr != nil {
		return "", nil, f.pdfErr
	}
	return "skills_gap_analysis.pdf", []byte("%PDF-1.4"), nil
}

func (f *fakeDeps) ExportClusterChart(_ context.Context, _, _ float64) (string, []byte, error) {
	return "skill_clusters.png", []byte("\x89PNG"), nil
}

func (f *fakeDeps) Notice() string { return f.notice }

type fakeStats struct{}

func (fakeStats) GetStats() map[string]interface{} {
	return map[string]interface{}{"started": true, "refreshState": "idle"}
}

func newTestServer(deps *fakeDeps) *httptest.Server {
	mux := http.NewServeMux()
	api.NewServer(deps, fakeStats{}, 960, 540).Register(context.Background(), mux)
	return httptest.NewServer(mux)
}

func TestHTTP_Dashboard(t *testing.T) {
	Convey("Given a running API server", t, func() {
		deps := &fakeDeps{notice: "dataset fetch failed: backend unavailable"}
		ts := newTestServer(deps)
		defer ts.Close()

		Convey("When the dashboard page is requested", func() {
			resp, err := http.Get(ts.URL + "/dashboard")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			body := readBody(resp)

			Convey("Then the page embeds the rendered fragments and slots", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(resp.Header.Get("Content-Type"), ShouldStartWith, "text/html")
				So(body, ShouldContainSubstring, `<svg class="cluster-map">`)
				So(body, ShouldContainSubstring, `<table class="gap-table">`)
				So(body, ShouldContainSubstring, ">23<")
				So(body, ShouldContainSubstring, ">2.5<")
			})

			Convey("And the refresh-failure notice is shown", func() {
				So(body, ShouldContainSubstring, "backend unavailable")
			})
		})

		Convey("When the page is requested with a disallowed method", func() {
			resp, err := http.Post(ts.URL+"/dashboard", "application/json", nil)
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusMethodNotAllowed)
		})
	})
}

func TestHTTP_Dataset(t *testing.T) {
	Convey("Given a running API server", t, func() {
		deps := &fakeDeps{}
		ts := newTestServer(deps)
		defer ts.Close()

		Convey("When the dataset is requested", func() {
			resp, err := http.Get(ts.URL + "/dataset")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			var ds model.Dataset
			So(json.NewDecoder(resp.Body).Decode(&ds), ShouldBeNil)

			Convey("Then the snapshot is returned as JSON", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(ds.Metrics.TotalSkills, ShouldEqual, 23)
				So(ds.Gaps, ShouldHaveLength, 1)
			})
		})
	})
}

func TestHTTP_Refresh(t *testing.T) {
	Convey("Given a running API server", t, func() {
		deps := &fakeDeps{}
		ts := newTestServer(deps)
		defer ts.Close()

		Convey("When a filter change is posted", func() {
			resp, err := http.Post(ts.URL+"/refresh", "application/json",
				strings.NewReader(`{"department":"Engineering"}`))
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then the request is accepted and forwarded", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusAccepted)

				deps.mu.Lock()
				defer deps.mu.Unlock()
				So(deps.refreshs, ShouldHaveLength, 1)
				So(deps.refreshs[0].Department(), ShouldEqual, "Engineering")
			})
		})

		Convey("When the body is not valid JSON", func() {
			resp, err := http.Post(ts.URL+"/refresh", "application/json",
				strings.NewReader(`{"department":`))
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestHTTP_Actions(t *testing.T) {
	Convey("Given a running API server", t, func() {
		deps := &fakeDeps{}
		ts := newTestServer(deps)
		defer ts.Close()

		Convey("When an action intent is posted", func() {
			resp, err := http.Post(ts.URL+"/actions", "application/json",
				strings.NewReader(`{"skill":"Blockchain"}`))
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then it is accepted and forwarded", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusAccepted)

				deps.mu.Lock()
				defer deps.mu.Unlock()
				So(deps.actions, ShouldHaveLength, 1)
				So(deps.actions[0].Skill, ShouldEqual, "Blockchain")
			})
		})

		Convey("When the skill is missing", func() {
			resp, err := http.Post(ts.URL+"/actions", "application/json",
				strings.NewReader(`{}`))
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestHTTP_Export(t *testing.T) {
	Convey("Given a running API server", t, func() {
		deps := &fakeDeps{}
		ts := newTestServer(deps)
		defer ts.Close()

		Convey("When the gap CSV is requested", func() {
			resp, err := http.Get(ts.URL + "/export/gaps.csv")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then it is delivered as an attachment", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(resp.Header.Get("Content-Type"), ShouldStartWith, "text/csv")
				So(resp.Header.Get("Content-Disposition"), ShouldEqual,
					`attachment; filename="skills_gap_analysis.csv"`)
				So(readBody(resp), ShouldStartWith, "Skill,Required,Current,Gap,Priority")
			})
		})

		Convey("When the dataset summary is requested", func() {
			resp, err := http.Get(ts.URL + "/export/summary.json")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then it is delivered as a JSON attachment", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(resp.Header.Get("Content-Type"), ShouldStartWith, "application/json")
				So(resp.Header.Get("Content-Disposition"), ShouldEqual,
					`attachment; filename="clustering_summary_20260826_120000.json"`)
				So(readBody(resp), ShouldContainSubstring, `"gap_count"`)
			})
		})

		Convey("When the cluster chart is requested", func() {
			resp, err := http.Get(ts.URL + "/export/clusters.png")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(resp.Header.Get("Content-Type"), ShouldEqual, "image/png")
		})

		Convey("When the artifact name is unknown", func() {
			resp, err := http.Get(ts.URL + "/export/gaps.xlsx")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})

		Convey("When the PDF export fails upstream", func() {
			deps.pdfErr = errInternal{}
			resp, err := http.Get(ts.URL + "/export/gaps.pdf")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusInternalServerError)
		})
	})
}

func TestHTTP_Stats(t *testing.T) {
	Convey("Given a running API server", t, func() {
		ts := newTestServer(&fakeDeps{})
		defer ts.Close()

		Convey("When stats are requested", func() {
			resp, err := http.Get(ts.URL + "/stats")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			var stats map[string]interface{}
			So(json.NewDecoder(resp.Body).Decode(&stats), ShouldBeNil)
			So(stats["refreshState"], ShouldEqual, "idle")
		})
	})
}

type errInternal struct{}

func (errInternal) Error() string { return "pdf renderer exploded" }

func readBody(resp *http.Response) string {
	b, _ := io.ReadAll(resp.Body)
	return string(b)
}
