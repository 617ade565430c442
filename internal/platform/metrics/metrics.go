// Package metrics exposes Prometheus HTTP metrics from a private registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPMetrics holds the request collectors and the registry they live in.
type HTTPMetrics struct {
	registry        *prometheus.Registry
	requestCounter  *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	activeRequests  prometheus.Gauge
}

// NewHTTPMetrics creates the collectors on a fresh registry, so several
// instances (one per test router) never collide.
func NewHTTPMetrics() *HTTPMetrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &HTTPMetrics{
		registry: reg,
		requestCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_http_requests_total",
				Help: "Total number of HTTP requests by path, method, and status code",
			},
			[]string{"path", "method", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "catalog_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path", "method"},
		),
		activeRequests: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "catalog_http_active_requests",
				Help: "Number of in-flight requests being processed",
			},
		),
	}
}

// Middleware records every request under its route template, so /courses/1
// and /courses/2 share one series. Unmatched routes are labelled "unknown".
func (m *HTTPMetrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()
		if path == "" {
			path = "unknown"
		}
		method := c.Request.Method

		m.activeRequests.Inc()
		start := time.Now()

		// A panicking handler is recorded as a 500 before the panic moves
		// on to the recovery middleware, which has not written the status yet.
		defer func() {
			m.activeRequests.Dec()
			status := strconv.Itoa(c.Writer.Status())
			rec := recover()
			if rec != nil {
				status = strconv.Itoa(http.StatusInternalServerError)
			}
			m.requestCounter.WithLabelValues(path, method, status).Inc()
			m.requestDuration.WithLabelValues(path, method).Observe(time.Since(start).Seconds())
			if rec != nil {
				panic(rec)
			}
		}()

		c.Next()
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *HTTPMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
