// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/okraft/skillscope/internal/adapters/repository"
	"github.com/okraft/skillscope/internal/controller"
	"github.com/okraft/skillscope/internal/domain/export"
	"github.com/okraft/skillscope/internal/domain/inventory"
	"github.com/okraft/skillscope/internal/domain/layout"
	"github.com/okraft/skillscope/internal/domain/model"
	"github.com/okraft/skillscope/internal/render"
	"github.com/okraft/skillscope/pkg/logger"
	"github.com/okraft/skillscope/pkg/metrics"
)

// Service owns the dataset store, the layout/render pipeline, and the
// refresh controller, and exposes the operations the HTTP API needs.
type Service struct {
	mu sync.RWMutex

	// Core components
	store       repository.Store
	packer      *layout.Packer
	metricsView *render.MetricsView
	clusterView *render.ClusterView
	gapView     *render.GapTableView
	refresher   *controller.FilterController
	source      controller.Source

	// Configuration
	palette         []string
	layoutPadding   float64
	layoutMargin    float64
	layoutMinWeight float64
	fontMin         float64
	fontMax         float64
	refreshTimeout  time.Duration
	defaultFilter   inventory.Filter
	actionHandler   render.ActionHandler

	// Transient user-facing notice from the last failed refresh.
	noticeMu sync.Mutex
	notice   string

	// State
	started bool

	// Logging
	log logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		layoutPadding:   4,
		layoutMargin:    16,
		layoutMinWeight: 1,
		fontMin:         9,
		fontMax:         22,
		refreshTimeout:  10 * time.Second,
		defaultFilter:   inventory.Filter{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes components and loads the initial dataset from the
// source. It fails when the initial fetch fails; there is nothing useful
// to serve without a dataset.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.log == nil {
		s.log = logger.Get()
	}
	if s.source == nil {
		s.source = inventory.Fixture()
		s.log.Info(ctx, "no source configured; using fixture inventory")
	}
	if s.actionHandler == nil {
		s.actionHandler = func(ctx context.Context, intent render.ActionIntent) {
			s.log.Info(ctx, "action requested", logger.String("skill", intent.Skill))
		}
	}

	s.store = repository.NewDatasetStore(repository.WithLogger(s.log))
	s.packer = layout.New(
		layout.WithPadding(s.layoutPadding),
		layout.WithMargin(s.layoutMargin),
		layout.WithMinWeight(s.layoutMinWeight),
	)

	clusterOpts := []render.ClusterViewOption{
		render.WithFontRange(s.fontMin, s.fontMax),
		render.WithClusterLogger(s.log),
	}
	if len(s.palette) > 0 {
		clusterOpts = append(clusterOpts, render.WithPalette(s.palette))
	}
	s.metricsView = render.NewMetricsView()
	s.clusterView = render.NewClusterView(clusterOpts...)
	s.gapView = render.NewGapTableView(render.WithGapTableLogger(s.log))

	s.refresher = controller.New(s.store, s.source,
		controller.WithTimeout(s.refreshTimeout),
		controller.WithLogger(s.log),
		controller.WithErrorHandler(s.setNotice),
	)

	// A successful replacement clears any stale failure notice.
	s.store.OnChange(func(model.Dataset) { s.clearNotice() })

	initial, err := s.source.FetchDataset(ctx, s.defaultFilter)
	if err != nil {
		return fmt.Errorf("initial dataset fetch: %w", err)
	}
	if err := s.store.Load(ctx, initial); err != nil {
		return fmt.Errorf("initial dataset load: %w", err)
	}

	s.started = true
	s.log.Info(ctx, "dashboard service started",
		logger.Int("clusters", len(initial.Clusters)),
		logger.Int("gaps", len(initial.Gaps)),
		logger.String("department", s.defaultFilter.Department()),
	)
	return nil
}

// Stop shuts the service down. In-flight refreshes settle on their own;
// their results land in the store but no longer get served.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.log.Info(context.Background(), "dashboard service stopped")
}

// ready reports whether Start has run, so operations fail cleanly
// instead of dereferencing components that do not exist yet.
func (s *Service) ready() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return ErrNotStarted
	}
	return nil
}

// RenderDashboard runs one full render pass over the current dataset
// snapshot: layout, then every view onto a fresh surface. A failing view
// is logged and skipped so the other views still render; a layout
// failure aborts the pass without touching the stored dataset.
func (s *Service) RenderDashboard(ctx context.Context, width, height float64) (*render.HTMLSurface, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	snapshot := s.store.Current(ctx)

	start := time.Now()
	circles, err := s.packer.Pack(snapshot.Clusters, width, height)
	if err != nil {
		return nil, err
	}
	metrics.ObserveLayoutDuration(float64(time.Since(start).Microseconds()) / 1000.0)

	surface := render.NewHTMLSurface()

	if err := s.metricsView.Render(surface, snapshot.Metrics); err != nil {
		metrics.RecordRenderError()
		s.log.Error(ctx, "metrics view failed", logger.Error(err))
	}
	if err := s.clusterView.Render(surface, snapshot.Clusters, circles, width, height); err != nil {
		metrics.RecordRenderError()
		s.log.Error(ctx, "cluster view failed", logger.Error(err))
	}
	if err := s.gapView.Render(surface, snapshot.Gaps); err != nil {
		metrics.RecordRenderError()
		s.log.Error(ctx, "gap table view failed", logger.Error(err))
	}

	metrics.RecordRender()
	return surface, nil
}

// Dataset returns the current dataset snapshot.
func (s *Service) Dataset(ctx context.Context) model.Dataset {
	if err := s.ready(); err != nil {
		return model.Dataset{}
	}
	return s.store.Current(ctx)
}

// Refresh routes a filter-change event to the refresh controller. It
// returns immediately; the new dataset is applied asynchronously with
// latest-wins semantics.
func (s *Service) Refresh(ctx context.Context, f inventory.Filter) {
	if err := s.ready(); err != nil {
		return
	}
	s.refresher.Apply(ctx, f)
}

// RequestAction forwards a gap-row action intent to the configured
// handler. The dataset is never touched.
func (s *Service) RequestAction(ctx context.Context, intent render.ActionIntent) {
	if err := s.ready(); err != nil {
		return
	}
	metrics.RecordActionIntent()
	s.actionHandler(ctx, intent)
}

// ExportGapsCSV serializes the current gap records as the downloadable
// gap-analysis artifact.
func (s *Service) ExportGapsCSV(ctx context.Context) (string, []byte) {
	if err := s.ready(); err != nil {
		return "", nil
	}
	snapshot := s.store.Current(ctx)
	metrics.RecordExport("csv")
	return export.GapReportFilename, []byte(export.GapCSV(snapshot.Gaps))
}

// ExportClustersCSV serializes the current cluster statistics, named
// with a timestamp like the upstream analytics artifacts.
func (s *Service) ExportClustersCSV(ctx context.Context) (string, []byte) {
	if err := s.ready(); err != nil {
		return "", nil
	}
	snapshot := s.store.Current(ctx)
	metrics.RecordExport("csv")
	return export.ClusterStatsFilename(time.Now().UTC()), []byte(export.ClusterCSV(snapshot.Clusters))
}

// ExportSummaryJSON serializes the current dataset summary as the
// timestamped JSON artifact.
func (s *Service) ExportSummaryJSON(ctx context.Context) (string, []byte, error) {
	if err := s.ready(); err != nil {
		return "", nil, err
	}
	snapshot := s.store.Current(ctx)
	now := time.Now().UTC()
	content, err := export.SummaryJSON(snapshot, now)
	if err != nil {
		metrics.RecordExportError("json")
		return "", nil, err
	}
	metrics.RecordExport("json")
	return export.SummaryFilename(now), content, nil
}

// ExportGapsPDF renders the current gap records as a PDF report.
func (s *Service) ExportGapsPDF(ctx context.Context) (string, []byte, error) {
	if err := s.ready(); err != nil {
		return "", nil, err
	}
	snapshot := s.store.Current(ctx)
	content, err := export.GapReportPDF(snapshot.Gaps, time.Now().UTC())
	if err != nil {
		metrics.RecordExportError("pdf")
		return "", nil, err
	}
	metrics.RecordExport("pdf")
	return "skills_gap_analysis.pdf", content, nil
}

// ExportClusterChart lays out the current clusters and renders them as a
// bubble-chart PNG.
func (s *Service) ExportClusterChart(ctx context.Context, width, height float64) (string, []byte, error) {
	if err := s.ready(); err != nil {
		return "", nil, err
	}
	snapshot := s.store.Current(ctx)
	circles, err := s.packer.Pack(snapshot.Clusters, width, height)
	if err != nil {
		metrics.RecordExportError("png")
		return "", nil, err
	}
	content, err := export.ClusterChartPNG(snapshot.Clusters, circles, width, height)
	if err != nil {
		metrics.RecordExportError("png")
		return "", nil, err
	}
	metrics.RecordExport("png")
	return "skill_clusters.png", content, nil
}

// Notice returns the transient user-facing notice from the last failed
// refresh, or "" when the last refresh succeeded.
func (s *Service) Notice() string {
	s.noticeMu.Lock()
	defer s.noticeMu.Unlock()
	return s.notice
}

func (s *Service) setNotice(err error) {
	s.noticeMu.Lock()
	s.notice = err.Error()
	s.noticeMu.Unlock()
}

func (s *Service) clearNotice() {
	s.noticeMu.Lock()
	s.notice = ""
	s.noticeMu.Unlock()
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started": s.started,
	}

	if s.started {
		ds := s.store.Current(context.Background())
		stats["totalSkills"] = ds.Metrics.TotalSkills
		stats["totalClusters"] = ds.Metrics.TotalClusters
		stats["totalEmployees"] = ds.Metrics.TotalEmployees
		stats["avgProficiency"] = ds.Metrics.AvgProficiency
		stats["gapCount"] = len(ds.Gaps)
		stats["refreshState"] = refreshStateName(s.refresher.State())
		stats["notice"] = s.Notice()
	}

	return stats
}

func refreshStateName(st controller.State) string {
	if st == controller.StateRefreshing {
		return "refreshing"
	}
	return "idle"
}
