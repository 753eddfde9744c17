package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// namespace is the metric name prefix for all wallsweep metrics.
const namespace = "wallsweep"

// Config contains configuration for the metrics Collector.
type Config struct {
	// Enabled turns metrics collection on. When false, all record calls
	// are no-ops and Push does nothing.
	Enabled bool

	// PushGateway is the base URL of a Prometheus Pushgateway. Empty
	// disables pushing (metrics are still collected on the registry).
	PushGateway string

	// JobName is the Pushgateway job label. Defaults to "wallsweep".
	JobName string

	// RunID is attached as a grouping label so successive runs do not
	// overwrite each other on the Pushgateway. Empty omits the label.
	RunID string
}

// Collector records cleanup run metrics on a private Prometheus registry.
type Collector struct {
	config   Config
	registry *prometheus.Registry

	filesMatched   prometheus.Counter
	filesDeleted   prometheus.Counter
	deleteFailures prometheus.Counter
	runDuration    prometheus.Histogram
	lastRun        prometheus.Gauge
}

// NewCollector creates a metrics collector with the specified configuration
// and registry. If registry is nil, a new private registry is used.
func NewCollector(cfg Config, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	if cfg.JobName == "" {
		cfg.JobName = "wallsweep"
	}

	c := &Collector{
		config:   cfg,
		registry: registry,
		filesMatched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_matched_total",
			Help:      "Wallpaper files older than the retention cutoff.",
		}),
		filesDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_deleted_total",
			Help:      "Wallpaper files successfully deleted.",
		}),
		deleteFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "delete_failures_total",
			Help:      "Per-file deletion failures (logged and skipped).",
		}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Duration of cleanup runs in seconds.",
			// A run is a directory listing plus a handful of unlinks.
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1.0, 5.0, 30.0},
		}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix timestamp of the last completed cleanup run.",
		}),
	}

	registry.MustRegister(c.filesMatched, c.filesDeleted, c.deleteFailures, c.runDuration, c.lastRun)

	return c
}

// RecordMatched records the number of candidates selected for deletion.
func (c *Collector) RecordMatched(n int) {
	if c == nil || !c.config.Enabled {
		return
	}
	c.filesMatched.Add(float64(n))
}

// RecordDeleted records one successful deletion.
func (c *Collector) RecordDeleted() {
	if c == nil || !c.config.Enabled {
		return
	}
	c.filesDeleted.Inc()
}

// RecordDeleteFailure records one per-file deletion failure.
func (c *Collector) RecordDeleteFailure() {
	if c == nil || !c.config.Enabled {
		return
	}
	c.deleteFailures.Inc()
}

// ObserveRunDuration records the total duration of a cleanup run and marks
// the run completion time.
func (c *Collector) ObserveRunDuration(d time.Duration) {
	if c == nil || !c.config.Enabled {
		return
	}
	c.runDuration.Observe(d.Seconds())
	c.lastRun.SetToCurrentTime()
}

// Push delivers the collected metrics to the configured Pushgateway. It is a
// no-op when metrics are disabled or no Pushgateway is configured.
func (c *Collector) Push(ctx context.Context) error {
	if c == nil || !c.config.Enabled || c.config.PushGateway == "" {
		return nil
	}

	pusher := push.New(c.config.PushGateway, c.config.JobName).Gatherer(c.registry)
	if c.config.RunID != "" {
		pusher = pusher.Grouping("run_id", c.config.RunID)
	}

	return pusher.PushContext(ctx)
}
