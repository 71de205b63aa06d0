package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the decision module.
type Metrics struct {
	// Decision outcomes by check kind, result and rules origin
	DecisionOutcome *prometheus.CounterVec

	// Settlement system selected for permitted transfers
	SettlementSelected *prometheus.CounterVec

	// Evaluation latency including rule acquisition
	EvaluateLatency *prometheus.HistogramVec
}

// New creates a new Metrics instance with all decision module metrics registered.
func New() *Metrics {
	return &Metrics{
		DecisionOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "advisor_decision_outcomes_total",
			Help: "Total decision outcomes by check kind, result and rules origin",
		}, []string{"kind", "result", "origin"}), // kind: "transfer", "company"; result: "possible", "rejected"

		SettlementSelected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "advisor_decision_settlement_selected_total",
			Help: "Settlement systems selected for permitted transfers",
		}, []string{"system"}),

		EvaluateLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "advisor_decision_evaluate_duration_seconds",
			Help:    "Duration of decision evaluation including rule acquisition",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"kind"}),
	}
}

// IncrementOutcome records a decision outcome.
func (m *Metrics) IncrementOutcome(kind string, possible bool, origin string) {
	if m != nil {
		result := "rejected"
		if possible {
			result = "possible"
		}
		m.DecisionOutcome.WithLabelValues(kind, result, origin).Inc()
	}
}

// IncrementSettlement records the settlement system chosen for a transfer.
func (m *Metrics) IncrementSettlement(system string) {
	if m != nil {
		m.SettlementSelected.WithLabelValues(system).Inc()
	}
}

// ObserveEvaluateLatency records the total evaluation duration.
func (m *Metrics) ObserveEvaluateLatency(kind string, d time.Duration) {
	if m != nil {
		m.EvaluateLatency.WithLabelValues(kind).Observe(d.Seconds())
	}
}
