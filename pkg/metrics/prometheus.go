// Package metrics provides Prometheus metrics for the medal dashboard service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Fetch latency buckets in milliseconds; upstream pages are slow.
var fetchBuckets = []float64{50, 100, 250, 500, 1000, 2000, 5000, 10000, 20000} //nolint:gochecknoglobals // bucket layout

// Manager manages all Prometheus metrics for the scraper service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Upstream fetches
	pageFetches      *prometheus.CounterVec
	pageFetchLatency *prometheus.HistogramVec

	// Report builds
	builds             *prometheus.CounterVec
	buildDuration      prometheus.Histogram
	standingsCountries prometheus.Gauge
	medalRecords       prometheus.Gauge
	buildProgress      prometheus.Gauge

	// Snapshot cache
	snapshotHits     prometheus.Counter
	snapshotMisses   prometheus.Counter
	snapshotLastUnix prometheus.Gauge

	// Progress feed
	progressPublished prometheus.Counter
	progressDropped   prometheus.Counter

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Errors
	errorRateByComponent *prometheus.CounterVec

	// System
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
		namespace:        "medals",
		subsystem:        "scraper",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() { //nolint:funlen // one place for every metric
	auto := promauto.With(m.registry)

	m.pageFetches = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "page_fetches_total",
			Help:      "Upstream page fetches by page kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	m.pageFetchLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "page_fetch_duration_milliseconds",
			Help:      "Upstream page fetch latency in milliseconds",
			Buckets:   fetchBuckets,
		},
		[]string{"kind"},
	)

	m.builds = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "report_builds_total",
			Help:      "Report builds by outcome (ok, fallback, unavailable)",
		},
		[]string{"outcome"},
	)

	m.buildDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "report_build_duration_seconds",
		Help:      "Wall time of a full report build, pacing included",
		Buckets:   []float64{1, 5, 10, 20, 30, 45, 60, 90, 120},
	})

	m.standingsCountries = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "standings_countries",
		Help:      "Countries in the most recently built standings",
	})

	m.medalRecords = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "medal_records",
		Help:      "Athlete medal records in the most recently built report",
	})

	m.buildProgress = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "build_progress_ratio",
		Help:      "Fraction of country pages processed by the running build",
	})

	m.snapshotHits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_hits_total",
		Help:      "Reads served from a fresh snapshot",
	})

	m.snapshotMisses = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_misses_total",
		Help:      "Reads that found no snapshot or a stale one",
	})

	m.snapshotLastUnix = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_last_unixtime",
		Help:      "Unix time of the last published snapshot",
	})

	m.progressPublished = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "progress_published_total",
		Help:      "Progress notifications accepted by the feed",
	})

	m.progressDropped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "progress_dropped_total",
		Help:      "Progress notifications dropped because the feed was full",
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

	m.errorRateByComponent = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_component_total",
			Help:      "Total number of errors by component",
		},
		[]string{"component", "error_type"},
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

// RecordPageFetch counts one upstream fetch and observes its latency.
func RecordPageFetch(kind, outcome string, latencyMs float64) {
	globalManager.pageFetches.WithLabelValues(kind, outcome).Inc()
	globalManager.pageFetchLatency.WithLabelValues(kind).Observe(latencyMs)
}

// RecordBuild counts a finished report build and observes its duration.
func RecordBuild(outcome string, seconds float64) {
	globalManager.builds.WithLabelValues(outcome).Inc()
	globalManager.buildDuration.Observe(seconds)
}

// UpdateStandingsCountries sets the number of countries in the standings.
func UpdateStandingsCountries(count int) {
	globalManager.standingsCountries.Set(float64(count))
}

// UpdateMedalRecords sets the number of athlete medal records.
func UpdateMedalRecords(count int) {
	globalManager.medalRecords.Set(float64(count))
}

// UpdateBuildProgress sets the completion ratio of the running build.
func UpdateBuildProgress(current, total int) {
	if total <= 0 {
		globalManager.buildProgress.Set(0)
		return
	}
	globalManager.buildProgress.Set(float64(current) / float64(total))
}

// RecordSnapshotHit increments the snapshot hit counter.
func RecordSnapshotHit() {
	globalManager.snapshotHits.Inc()
}

// RecordSnapshotMiss increments the snapshot miss counter.
func RecordSnapshotMiss() {
	globalManager.snapshotMisses.Inc()
}

// UpdateSnapshotLastUnix sets the publish time of the current snapshot.
func UpdateSnapshotLastUnix(unix int64) {
	globalManager.snapshotLastUnix.Set(float64(unix))
}

// RecordProgressPublished increments the accepted progress counter.
func RecordProgressPublished() {
	globalManager.progressPublished.Inc()
}

// RecordProgressDropped increments the dropped progress counter.
func RecordProgressDropped() {
	globalManager.progressDropped.Inc()
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
