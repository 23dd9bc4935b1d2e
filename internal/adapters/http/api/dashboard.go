package api

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/okraft/skillscope/internal/render"
)

// dashboardTemplate is parsed once at startup from the embedded assets.
var dashboardTemplate = template.Must(
	template.ParseFS(apiStaticFS, "static/dashboard.gohtml"),
)

// dashboardPage carries everything the page template needs. Fragments are
// pre-rendered HTML produced by the view layer, so they are trusted.
type dashboardPage struct {
	ClusterMap     template.HTML
	GapTable       template.HTML
	TotalSkills    string
	TotalClusters  string
	TotalEmployees string
	AvgProficiency string
	Notice         string
}

// DashboardHandler serves the server-rendered dashboard page.
type DashboardHandler struct {
	deps   Dependencies
	width  float64
	height float64
}

// NewDashboardHandler creates a new dashboard handler rendering at the
// given viewport size.
func NewDashboardHandler(deps Dependencies, width, height float64) *DashboardHandler {
	return &DashboardHandler{deps: deps, width: width, height: height}
}

// HandleDashboard handles GET / and GET /dashboard requests. Optional
// width/height query parameters override the configured viewport.
func (h *DashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, ErrMethodNotAllowed)
		return
	}

	width, height := h.width, h.height
	if v, err := strconv.ParseFloat(r.URL.Query().Get("width"), 64); err == nil && v > 0 {
		width = v
	}
	if v, err := strconv.ParseFloat(r.URL.Query().Get("height"), 64); err == nil && v > 0 {
		height = v
	}

	surface, err := h.deps.RenderDashboard(r.Context(), width, height)
	if err != nil {
		writeError(w, http.StatusInternalServerError, codeInternal, err)
		return
	}

	page := dashboardPage{
		ClusterMap:     template.HTML(surface.Fragment(render.MountClusterMap)),
		GapTable:       template.HTML(surface.Fragment(render.MountGapTable)),
		TotalSkills:    surface.Slot(render.SlotTotalSkills),
		TotalClusters:  surface.Slot(render.SlotTotalClusters),
		TotalEmployees: surface.Slot(render.SlotTotalEmployees),
		AvgProficiency: surface.Slot(render.SlotAvgProficiency),
		Notice:         h.deps.Notice(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTemplate.Execute(w, page); err != nil {
		// Headers are already sent; nothing useful to report to the client.
		return
	}
}
