package observability

import (
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus metrics collected for render,
// hydrate, and query operations.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "philjs").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for operation duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures a MetricsConfig.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "philjs",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// metrics holds the Prometheus metrics for render/hydrate/query operations.
type metrics struct {
	opsTotal      *prometheus.CounterVec
	opDuration    *prometheus.HistogramVec
	opErrors      *prometheus.CounterVec
	queryHits     prometheus.Counter
	queryMisses   prometheus.Counter
	reconcileSize prometheus.Histogram
}

var (
	globalMetrics   *metrics
	globalMetricsMu sync.Mutex
)

func initMetrics(config MetricsConfig) *metrics {
	factory := promauto.With(config.Registry)

	return &metrics{
		opsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "operations_total",
			Help:        "Total number of render/hydrate/query operations processed",
			ConstLabels: config.ConstLabels,
		}, []string{"operation", "status"}),

		opDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "operation_duration_seconds",
			Help:        "Operation processing duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"operation"}),

		opErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "operation_errors_total",
			Help:        "Total number of operation errors",
			ConstLabels: config.ConstLabels,
		}, []string{"operation", "error_type"}),

		queryHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "query_cache_hits_total",
			Help:        "Total number of query cache hits",
			ConstLabels: config.ConstLabels,
		}),

		queryMisses: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "query_cache_misses_total",
			Help:        "Total number of query cache misses",
			ConstLabels: config.ConstLabels,
		}),

		reconcileSize: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "reconcile_patch_count",
			Help:        "Number of patches produced by a single keyed-list reconciliation",
			ConstLabels: config.ConstLabels,
			Buckets:     []float64{1, 5, 10, 50, 100, 500, 1000},
		}),
	}
}

// InitPrometheus initializes the global Prometheus metrics. Safe to call
// once at startup; subsequent calls are no-ops if metrics already exist.
//
// Example:
//
//	observability.InitPrometheus(observability.WithNamespace("myapp"))
//	http.Handle("/metrics", promhttp.Handler())
func InitPrometheus(opts ...MetricsOption) {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	globalMetricsMu.Lock()
	defer globalMetricsMu.Unlock()
	if globalMetrics == nil {
		globalMetrics = initMetrics(config)
	}
}

// RecordOperation times fn and records it under the operations_total,
// operation_duration_seconds, and operation_errors_total metrics.
//
// Example:
//
//	err := observability.RecordOperation("render", func() error {
//	    _, err := r.RenderToString(node)
//	    return err
//	})
func RecordOperation(operation string, fn func() error) error {
	globalMetricsMu.Lock()
	m := globalMetrics
	globalMetricsMu.Unlock()
	if m == nil {
		return fn()
	}

	start := time.Now()
	err := fn()
	m.opDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())

	status := "success"
	if err != nil {
		status = "error"
		m.opErrors.WithLabelValues(operation, categorizeError(err)).Inc()
	}
	m.opsTotal.WithLabelValues(operation, status).Inc()

	return err
}

// categorizeError returns a coarse category for an error, avoiding
// high-cardinality labels derived directly from error messages.
func categorizeError(err error) string {
	errStr := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errStr, "timeout"):
		return "timeout"
	case strings.Contains(errStr, "not found"):
		return "not_found"
	case strings.Contains(errStr, "cycle"):
		return "dependency_cycle"
	case strings.Contains(errStr, "mismatch"):
		return "hydration_mismatch"
	case strings.Contains(errStr, "validation"):
		return "validation"
	default:
		return "internal"
	}
}

// RecordQueryHit records a query cache hit.
func RecordQueryHit() {
	globalMetricsMu.Lock()
	m := globalMetrics
	globalMetricsMu.Unlock()
	if m != nil {
		m.queryHits.Inc()
	}
}

// RecordQueryMiss records a query cache miss.
func RecordQueryMiss() {
	globalMetricsMu.Lock()
	m := globalMetrics
	globalMetricsMu.Unlock()
	if m != nil {
		m.queryMisses.Inc()
	}
}

// RecordReconcileSize records the number of patches a keyed-list
// reconciliation produced.
func RecordReconcileSize(patches int) {
	globalMetricsMu.Lock()
	m := globalMetrics
	globalMetricsMu.Unlock()
	if m != nil {
		m.reconcileSize.Observe(float64(patches))
	}
}

// Collector exposes the underlying Prometheus metrics for registration
// alongside other application metrics.
type Collector struct {
	OperationsTotal      *prometheus.CounterVec
	OperationDuration    *prometheus.HistogramVec
	OperationErrors      *prometheus.CounterVec
	QueryCacheHits       prometheus.Counter
	QueryCacheMisses     prometheus.Counter
	ReconcilePatchCount  prometheus.Histogram
}

// GetMetrics returns the global metrics collector, or nil if
// InitPrometheus has not been called.
func GetMetrics() *Collector {
	globalMetricsMu.Lock()
	defer globalMetricsMu.Unlock()
	if globalMetrics == nil {
		return nil
	}
	return &Collector{
		OperationsTotal:     globalMetrics.opsTotal,
		OperationDuration:   globalMetrics.opDuration,
		OperationErrors:     globalMetrics.opErrors,
		QueryCacheHits:      globalMetrics.queryHits,
		QueryCacheMisses:    globalMetrics.queryMisses,
		ReconcilePatchCount: globalMetrics.reconcileSize,
	}
}
