package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/vango-dev/headless/pkg/atom"
	"github.com/vango-dev/headless/pkg/reactive"
)

// Config configures the collectors.
type Config struct {
	// Namespace is the metrics namespace (default: "headless").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for durations.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the collectors.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "headless",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Collector holds the Prometheus metrics of one gallery. It implements
// atom.Observer and reactive.Observer so a store and a root can report to it
// directly.
type Collector struct {
	storeWrites        *prometheus.CounterVec
	storeNotifications *prometheus.CounterVec
	renders            prometheus.Counter
	renderDuration     prometheus.Histogram
	eventsTotal        *prometheus.CounterVec
	eventDuration      *prometheus.HistogramVec
	activeSessions     prometheus.Gauge
}

var (
	_ atom.Observer     = (*Collector)(nil)
	_ reactive.Observer = (*Collector)(nil)
)

// New registers the collectors with the configured registry. Registering
// twice with the same registry panics, as promauto does.
func New(opts ...Option) *Collector {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Collector{
		storeWrites: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "store_writes_total",
			Help:        "Total number of store writes that changed a value",
			ConstLabels: config.ConstLabels,
		}, []string{"key"}),

		storeNotifications: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "store_notifications_total",
			Help:        "Total number of subscriber notifications sent by stores",
			ConstLabels: config.ConstLabels,
		}, []string{"key"}),

		renders: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "renders_total",
			Help:        "Total number of render passes",
			ConstLabels: config.ConstLabels,
		}),

		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Render pass duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "events_total",
			Help:        "Total number of events handled",
			ConstLabels: config.ConstLabels,
		}, []string{"type"}),

		eventDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "event_duration_seconds",
			Help:        "Event handling duration in seconds, including the re-render",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"type"}),

		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "active_sessions",
			Help:        "Number of open gallery sessions",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// OnWrite implements atom.Observer.
func (c *Collector) OnWrite(key string) {
	c.storeWrites.WithLabelValues(keyLabel(key)).Inc()
}

// OnNotify implements atom.Observer.
func (c *Collector) OnNotify(key string, subscribers int) {
	c.storeNotifications.WithLabelValues(keyLabel(key)).Add(float64(subscribers))
}

// OnRender implements reactive.Observer.
func (c *Collector) OnRender(d time.Duration) {
	c.renders.Inc()
	c.renderDuration.Observe(d.Seconds())
}

// OnEvent implements reactive.Observer.
func (c *Collector) OnEvent(eventType string, d time.Duration) {
	if eventType == "" {
		eventType = "unknown"
	}
	c.eventsTotal.WithLabelValues(eventType).Inc()
	c.eventDuration.WithLabelValues(eventType).Observe(d.Seconds())
}

// SessionOpened records a new gallery session.
func (c *Collector) SessionOpened() {
	c.activeSessions.Inc()
}

// SessionClosed records the end of a gallery session.
func (c *Collector) SessionClosed() {
	c.activeSessions.Dec()
}

// keyLabel drops the "#id" suffix of a key's debug name so every instance of
// a key kind shares one series.
func keyLabel(key string) string {
	name, _, _ := strings.Cut(key, "#")
	if name == "" {
		return "key"
	}
	return name
}
