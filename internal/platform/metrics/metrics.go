// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	userErrorsTotal *prometheus.CounterVec
}

// New registers the service collectors on a private registry so tests can
// create as many instances as they need.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		registry: reg,
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "accounts_http_requests_total",
				Help: "Total number of HTTP requests by method and status code",
			},
			[]string{"method", "code"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "accounts_http_request_duration_seconds",
				Help:    "Histogram of HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		userErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "accounts_user_errors_total",
				Help: "Total number of failed user operations by operation and error kind",
			},
			[]string{"operation", "kind"},
		),
	}

	reg.MustRegister(m.requestsTotal, m.requestDuration, m.userErrorsTotal)

	return m
}

func (m *Metrics) ObserveRequest(method string, status int, elapsed time.Duration) {
	m.requestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// RecordUserError counts a failed user operation under its error kind.
func (m *Metrics) RecordUserError(operation, kind string) {
	m.userErrorsTotal.WithLabelValues(operation, kind).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
