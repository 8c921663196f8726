// Package metrics holds the Prometheus collectors for analysis activity.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "vitalis"

// Metrics groups the collectors on a private registry so that tests and
// multiple app instances never collide on the global one.
type Metrics struct {
	Registry *prometheus.Registry

	SubmissionsTotal        *prometheus.CounterVec
	ValidationFailuresTotal prometheus.Counter
	ExportsTotal            *prometheus.CounterVec
	UseCaseDuration         *prometheus.HistogramVec
	UseCaseErrorsTotal      *prometheus.CounterVec
}

// New creates the collectors and registers them, together with the Go and
// process collectors, on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		SubmissionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Accepted submissions by BMI category.",
		}, []string{"category"}),

		ValidationFailuresTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Submissions rejected by input validation.",
		}),

		ExportsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "History exports by format.",
		}, []string{"format"}),

		UseCaseDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "use_case_duration_seconds",
			Help:      "Duration of service use cases.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"use_case"}),

		UseCaseErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "use_case_errors_total",
			Help:      "Failed service use cases.",
		}, []string{"use_case"}),
	}
}

// The recording helpers are nil-safe so callers can run without metrics.

func (m *Metrics) IncSubmission(category string) {
	if m == nil {
		return
	}
	m.SubmissionsTotal.WithLabelValues(category).Inc()
}

func (m *Metrics) IncValidationFailure() {
	if m == nil {
		return
	}
	m.ValidationFailuresTotal.Inc()
}

func (m *Metrics) IncExport(format string) {
	if m == nil {
		return
	}
	m.ExportsTotal.WithLabelValues(format).Inc()
}

func (m *Metrics) ObserveUseCase(name string, d time.Duration, success bool) {
	if m == nil {
		return
	}
	m.UseCaseDuration.WithLabelValues(name).Observe(d.Seconds())
	if !success {
		m.UseCaseErrorsTotal.WithLabelValues(name).Inc()
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
