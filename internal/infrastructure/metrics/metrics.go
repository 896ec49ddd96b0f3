// Package metrics exposes Prometheus instrumentation for the reference service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"isoref/internal/core/apperror"
)

// Lookup outcomes.
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid_code"
	OutcomeUnknown = "unknown_code"
	OutcomeError   = "error"
)

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	registry *prometheus.Registry

	// Code resolutions by domain and outcome
	Lookups *prometheus.CounterVec

	// HTTP request latency by route template and status
	RequestDuration *prometheus.HistogramVec

	// Entities per catalogue, set once at startup
	CatalogueSize *prometheus.GaugeVec
}

// New creates a Metrics instance on its own registry, with Go and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "isoref_lookups_total",
			Help: "Code resolutions by domain and outcome",
		}, []string{"domain", "outcome"}),

		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "isoref_http_request_duration_seconds",
			Help:    "HTTP request latency by method, route and status",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}, []string{"method", "route", "status"}),

		CatalogueSize: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "isoref_catalogue_entities",
			Help: "Number of entities per reference catalogue",
		}, []string{"domain"}),
	}
}

// RecordLookup counts one resolution. A nil receiver is a no-op.
func (m *Metrics) RecordLookup(domain string, err error) {
	if m != nil {
		m.Lookups.WithLabelValues(domain, Outcome(err)).Inc()
	}
}

// ObserveRequest records one served request.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	if m != nil {
		m.RequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
	}
}

// SetCatalogueSize publishes the entity count of a catalogue.
func (m *Metrics) SetCatalogueSize(domain string, n int) {
	if m != nil {
		m.CatalogueSize.WithLabelValues(domain).Set(float64(n))
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Outcome maps a lookup error to its metric label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case apperror.IsInvalidCode(err):
		return OutcomeInvalid
	case apperror.IsUnknownCode(err):
		return OutcomeUnknown
	default:
		return OutcomeError
	}
}
