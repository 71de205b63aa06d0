package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for identifier validation.
type Metrics struct {
	Validations *prometheus.CounterVec
}

// New creates a new Metrics instance registered with the default registry.
func New() *Metrics {
	return &Metrics{
		Validations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "advisor_identifier_validations_total",
			Help: "Identifier validations by recognized kind and validity",
		}, []string{"kind", "valid"}),
	}
}

// IncrementValidation records one validation.
func (m *Metrics) IncrementValidation(kind string, valid bool) {
	if m != nil {
		m.Validations.WithLabelValues(kind, strconv.FormatBool(valid)).Inc()
	}
}
