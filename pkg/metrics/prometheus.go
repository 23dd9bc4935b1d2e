// Package metrics provides Prometheus metrics for the skillscope dashboard service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the dashboard service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Render pipeline
	rendersTotal   prometheus.Counter
	renderErrors   prometheus.Counter
	layoutDuration prometheus.Histogram

	// Dataset refresh lifecycle
	refreshesTotal    prometheus.Counter
	refreshFailures   prometheus.Counter
	refreshSuperseded prometheus.Counter
	refreshDuration   prometheus.Histogram

	// Export artifacts
	exportsTotal *prometheus.CounterVec
	exportErrors *prometheus.CounterVec

	// Current dataset shape
	datasetSkills         prometheus.Gauge
	datasetClusters       prometheus.Gauge
	datasetEmployees      prometheus.Gauge
	datasetAvgProficiency prometheus.Gauge

	// Data quality and user interaction
	actionIntents       prometheus.Counter
	malformedPriorities prometheus.Counter

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "skillscope",
		subsystem:        "dashboard",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.rendersTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "renders_total",
		Help:      "Total number of dashboard render passes",
	})

	m.renderErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "render_errors_total",
		Help:      "Total number of view render failures (other views still render)",
	})

	m.layoutDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "layout_duration_milliseconds",
		Help:      "Histogram of circle-packing layout duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.refreshesTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "refreshes_total",
		Help:      "Total number of dataset replacements applied",
	})

	m.refreshFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "refresh_failures_total",
		Help:      "Total number of dataset fetches that failed (prior dataset retained)",
	})

	m.refreshSuperseded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "refresh_superseded_total",
		Help:      "Total number of in-flight fetches superseded by a newer filter",
	})

	m.refreshDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "refresh_duration_milliseconds",
		Help:      "Histogram of dataset fetch duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.exportsTotal = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "exports_total",
			Help:      "Total number of artifacts exported by format",
		},
		[]string{"format"},
	)

	m.exportErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "export_errors_total",
			Help:      "Total number of export failures by format",
		},
		[]string{"format"},
	)

	m.datasetSkills = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_skills",
		Help:      "Number of distinct skills in the current dataset",
	})

	m.datasetClusters = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_clusters",
		Help:      "Number of clusters in the current dataset",
	})

	m.datasetEmployees = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_employees",
		Help:      "Number of distinct employees in the current dataset",
	})

	m.datasetAvgProficiency = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_avg_proficiency",
		Help:      "Average proficiency score of the current dataset",
	})

	m.actionIntents = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "action_intents_total",
		Help:      "Total number of gap-row action intents emitted",
	})

	m.malformedPriorities = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "malformed_priorities_total",
		Help:      "Total number of gap records with an unrecognized priority (data quality)",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "System memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Number of goroutines",
	})
}

// RecordRender increments the render pass counter.
func RecordRender() {
	globalManager.rendersTotal.Inc()
}

// RecordRenderError increments the view render failure counter.
func RecordRenderError() {
	globalManager.renderErrors.Inc()
}

// ObserveLayoutDuration records a layout pass duration in milliseconds.
func ObserveLayoutDuration(ms float64) {
	globalManager.layoutDuration.Observe(ms)
}

// RecordRefresh increments the applied-refresh counter.
func RecordRefresh() {
	globalManager.refreshesTotal.Inc()
}

// RecordRefreshFailure increments the failed-refresh counter.
func RecordRefreshFailure() {
	globalManager.refreshFailures.Inc()
}

// RecordRefreshSuperseded increments the superseded-refresh counter.
func RecordRefreshSuperseded() {
	globalManager.refreshSuperseded.Inc()
}

// ObserveRefreshDuration records a dataset fetch duration in milliseconds.
func ObserveRefreshDuration(ms float64) {
	globalManager.refreshDuration.Observe(ms)
}

// RecordExport increments the export counter for a format.
func RecordExport(format string) {
	globalManager.exportsTotal.WithLabelValues(format).Inc()
}

// RecordExportError increments the export failure counter for a format.
func RecordExportError(format string) {
	globalManager.exportErrors.WithLabelValues(format).Inc()
}

// UpdateDatasetGauges sets the current dataset shape gauges.
func UpdateDatasetGauges(skills, clusters, employees int, avgProficiency float64) {
	globalManager.datasetSkills.Set(float64(skills))
	globalManager.datasetClusters.Set(float64(clusters))
	globalManager.datasetEmployees.Set(float64(employees))
	globalManager.datasetAvgProficiency.Set(avgProficiency)
}

// RecordActionIntent increments the action intent counter.
func RecordActionIntent() {
	globalManager.actionIntents.Inc()
}

// RecordMalformedPriority increments the malformed priority counter.
func RecordMalformedPriority() {
	globalManager.malformedPriorities.Inc()
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// UpdateSystemMemoryUsage sets current memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the current goroutine count.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom registry used by the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
