// Package metrics holds the Prometheus collectors for CPF validation.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// OutcomeValid is the outcome label recorded for accepted CPFs. Rejections
// use their models.CPFErrorCode as the label value.
const OutcomeValid = "valid"

// Metrics holds all Prometheus metrics for the service
type Metrics struct {
	ValidationsTotal *prometheus.CounterVec

	registry *prometheus.Registry
}

// New creates a dedicated registry with Go and process collectors and
// registers the validation metrics on it.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Metrics{
		ValidationsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "cpf_validations_total",
			Help: "Total number of CPF validations by outcome",
		}, []string{"outcome"}),
		registry: reg,
	}
}

// IncrementValidations increments the counter for the given outcome by 1
func (m *Metrics) IncrementValidations(outcome string) {
	m.ValidationsTotal.WithLabelValues(outcome).Inc()
}

// Handler returns the exposition handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
