package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for rule acquisition.
type Metrics struct {
	// Cache lookups by category and result ("hit", "miss")
	CacheLookups *prometheus.CounterVec

	// Fallback activations by category and failure category
	Fallbacks *prometheus.CounterVec

	// Remote fetch plus extraction latency by category
	AcquireLatency *prometheus.HistogramVec
}

// New creates a new Metrics instance registered with the default registry.
func New() *Metrics {
	return &Metrics{
		CacheLookups: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "advisor_rules_cache_lookups_total",
			Help: "Rule cache lookups by category and result",
		}, []string{"category", "result"}),

		Fallbacks: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "advisor_rules_fallbacks_total",
			Help: "Times built-in rules were served instead of remote rules",
		}, []string{"category", "reason"}), // reason: "configuration", "remote", "extraction", "internal"

		AcquireLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "advisor_rules_acquire_duration_seconds",
			Help:    "Duration of remote rule acquisition including extraction",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"category", "outcome"}),
	}
}

// IncrementCacheHit records a lookup served from cache.
func (m *Metrics) IncrementCacheHit(category string) {
	if m != nil {
		m.CacheLookups.WithLabelValues(category, "hit").Inc()
	}
}

// IncrementCacheMiss records a lookup that required acquisition.
func (m *Metrics) IncrementCacheMiss(category string) {
	if m != nil {
		m.CacheLookups.WithLabelValues(category, "miss").Inc()
	}
}

// IncrementFallback records that built-in rules were served.
func (m *Metrics) IncrementFallback(category, reason string) {
	if m != nil {
		m.Fallbacks.WithLabelValues(category, reason).Inc()
	}
}

// ObserveAcquireLatency records how long an acquisition attempt took.
func (m *Metrics) ObserveAcquireLatency(category, outcome string, d time.Duration) {
	if m != nil {
		m.AcquireLatency.WithLabelValues(category, outcome).Observe(d.Seconds())
	}
}
