// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okraft/skillscope/internal/domain/inventory"
	"github.com/okraft/skillscope/internal/domain/model"
	"github.com/okraft/skillscope/internal/render"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// RenderDashboard runs one render pass at the given viewport size.
	RenderDashboard(ctx context.Context, width, height float64) (*render.HTMLSurface, error)

	// Dataset returns the current dataset snapshot.
	Dataset(ctx context.Context) model.Dataset

	// Refresh routes a filter-change event; applied asynchronously.
	Refresh(ctx context.Context, f inventory.Filter)

	// RequestAction forwards a gap-row action intent.
	RequestAction(ctx context.Context, intent render.ActionIntent)

	// Export operations produce downloadable artifacts.
	ExportGapsCSV(ctx context.Context) (string, []byte)
	ExportClustersCSV(ctx context.Context) (string, []byte)
	ExportSummaryJSON(ctx context.Context) (string, []byte, error)
	ExportGapsPDF(ctx context.Context) (string, []byte, error)
	ExportClusterChart(ctx context.Context, width, height float64) (string, []byte, error)

	// Notice returns the transient notice from the last failed refresh.
	Notice() string
}

// Server wires HTTP routes for the business API.
type Server struct {
	dashboardHandler *DashboardHandler
	datasetHandler   *DatasetHandler
	refreshHandler   *RefreshHandler
	actionsHandler   *ActionsHandler
	exportHandler    *ExportHandler
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
}

// NewServer creates a new API server with all handlers. The viewport
// size is used for server-side dashboard rendering.
func NewServer(deps Dependencies, statsProvider StatsProvider, viewportWidth, viewportHeight float64) *Server {
	return &Server{
		dashboardHandler: NewDashboardHandler(deps, viewportWidth, viewportHeight),
		datasetHandler:   NewDatasetHandler(deps),
		refreshHandler:   NewRefreshHandler(deps),
		actionsHandler:   NewActionsHandler(deps),
		exportHandler:    NewExportHandler(deps, viewportWidth, viewportHeight),
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/dataset", MetricsMiddleware(s.datasetHandler.HandleGetDataset, "dataset"))
	mux.HandleFunc("/refresh", MetricsMiddleware(s.refreshHandler.HandlePostRefresh, "refresh"))
	mux.HandleFunc("/actions", MetricsMiddleware(s.actionsHandler.HandlePostAction, "actions"))
	mux.HandleFunc("/export/", MetricsMiddleware(s.exportHandler.HandleExport, "export"))
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServerFS(staticFS())))
	mux.HandleFunc("/dashboard", MetricsMiddleware(s.dashboardHandler.HandleDashboard, "dashboard"))
	mux.HandleFunc("/", MetricsMiddleware(s.dashboardHandler.HandleDashboard, "dashboard"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
