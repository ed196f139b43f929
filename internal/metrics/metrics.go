// Package metrics exposes Prometheus metrics for the Moneta API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the API.
type Metrics struct {
	// Registry is the private Prometheus registry that owns these metrics.
	// New can be called more than once without duplicate collector panics.
	Registry *prometheus.Registry

	requestDuration     *prometheus.HistogramVec
	requestsTotal       *prometheus.CounterVec
	transactionsCreated *prometheus.CounterVec
}

// New creates a dedicated Prometheus registry and registers all application
// metrics in it.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "moneta_request_duration_seconds",
				Help:    "Duration of HTTP requests by route.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moneta_requests_total",
				Help: "Total HTTP requests processed.",
			},
			[]string{"method", "route", "status"},
		),
		transactionsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moneta_transactions_created_total",
				Help: "Total ledger transactions created.",
			},
			[]string{"type"},
		),
	}
}

// ObserveRequest records one handled HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	m.requestDuration.WithLabelValues(method, route).Observe(d.Seconds())
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// IncrTransactionCreated increments the created-transaction counter.
func (m *Metrics) IncrTransactionCreated(txType string) {
	m.transactionsCreated.WithLabelValues(txType).Inc()
}

// Handler returns an HTTP handler serving the registry in the Prometheus
// exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
