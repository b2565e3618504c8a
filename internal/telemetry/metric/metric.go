// Package metric provides Prometheus instrumentation for Soul Forge.
package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry bundles all application metrics behind a single Prometheus
// registry so tests can create isolated instances.
type Registry struct {
	reg *prometheus.Registry

	// OperationsStarted counts mint operations accepted for execution.
	OperationsStarted prometheus.Counter
	// OperationsConfirmed counts operations that reached confirmation.
	OperationsConfirmed prometheus.Counter
	// OperationsFailed counts failed operations labelled by error code.
	OperationsFailed *prometheus.CounterVec
	// ConfirmationSeconds observes end-to-end launch latency.
	ConfirmationSeconds prometheus.Histogram

	// RequestsTotal counts HTTP requests by method, route and status.
	RequestsTotal *prometheus.CounterVec
	// RequestDuration observes HTTP request latency by route.
	RequestDuration *prometheus.HistogramVec
}

// NewRegistry creates a Registry with all collectors registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := &Registry{
		reg: reg,
		OperationsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "forge",
			Subsystem: "mint",
			Name:      "operations_started_total",
			Help:      "Mint operations accepted for execution.",
		}),
		OperationsConfirmed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "forge",
			Subsystem: "mint",
			Name:      "operations_confirmed_total",
			Help:      "Mint operations confirmed on the ledger.",
		}),
		OperationsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "forge",
			Subsystem: "mint",
			Name:      "operations_failed_total",
			Help:      "Failed mint operations by error code.",
		}, []string{"code"}),
		ConfirmationSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "forge",
			Subsystem: "mint",
			Name:      "confirmation_seconds",
			Help:      "Time from launch to ledger confirmation.",
			Buckets:   []float64{1, 2, 5, 10, 20, 30, 45, 60, 90, 120},
		}),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "forge",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "forge",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		r.OperationsStarted,
		r.OperationsConfirmed,
		r.OperationsFailed,
		r.ConfirmationSeconds,
		r.RequestsTotal,
		r.RequestDuration,
	)
	return r
}

// Handler returns an HTTP handler serving the metrics endpoint.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

// Gatherer exposes the underlying registry for tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}
