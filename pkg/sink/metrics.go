package sink

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus-instrumented sink.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "tagwright").
	Namespace string

	// Subsystem is the metrics subsystem (default: "sink").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus-instrumented sink.
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

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "tagwright",
		Subsystem: "sink",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics is a set of sink counters: writes, bytes, and write errors.
// The collectors register once at construction, so create one Metrics
// per registry/namespace/subsystem combination and Wrap as many sinks
// with it as needed (one per build, one per request, and so on).
type Metrics struct {
	writesTotal prometheus.Counter
	bytesTotal  prometheus.Counter
	errorsTotal prometheus.Counter
}

// NewMetrics creates and registers the sink counters.
func NewMetrics(opts ...MetricsOption) *Metrics {
	cfg := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	factory := promauto.With(cfg.Registry)
	return &Metrics{
		writesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "writes_total",
			Help:        "Total number of writes issued to the sink.",
			ConstLabels: cfg.ConstLabels,
		}),
		bytesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "bytes_written_total",
			Help:        "Total number of bytes written to the sink.",
			ConstLabels: cfg.ConstLabels,
		}),
		errorsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "write_errors_total",
			Help:        "Total number of failed writes to the sink.",
			ConstLabels: cfg.ConstLabels,
		}),
	}
}

// Wrap returns a sink that forwards every write to next and records it
// in m's counters.
func (m *Metrics) Wrap(next io.StringWriter) *InstrumentedSink {
	return &InstrumentedSink{next: next, metrics: m}
}

// InstrumentedSink forwards writes to an underlying sink while counting
// them. Create one with Metrics.Wrap.
type InstrumentedSink struct {
	next    io.StringWriter
	metrics *Metrics
}

// WriteString forwards to the wrapped sink and updates the counters.
func (s *InstrumentedSink) WriteString(p string) (int, error) {
	n, err := s.next.WriteString(p)
	s.metrics.writesTotal.Inc()
	s.metrics.bytesTotal.Add(float64(n))
	if err != nil {
		s.metrics.errorsTotal.Inc()
	}
	return n, err
}
