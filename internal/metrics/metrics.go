// Package metrics collects and exposes Prometheus metrics for the HTTP API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records HTTP request metrics.
type Collector struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight prometheus.Gauge
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cats_api_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status code",
		}, []string{"method", "route", "status_code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cats_api_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "cats_api_http_requests_in_flight",
			Help: "Number of HTTP requests being served",
		}),
	}

	reg.MustRegister(c.requests, c.duration, c.inFlight)

	return c
}

// RequestStarted marks a request as in flight.
func (c *Collector) RequestStarted() {
	c.inFlight.Inc()
}

// RecordRequest records a finished request.
// route is the matched route pattern, never the raw path.
func (c *Collector) RecordRequest(method, route string, statusCode int, duration time.Duration) {
	c.inFlight.Dec()
	c.requests.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	c.duration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Handler returns the HTTP handler for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
