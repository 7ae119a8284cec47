package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics tracks request counts and latency per route.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewHTTPMetrics creates the HTTP metric vectors and registers them on reg.
func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	m := &HTTPMetrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "path", "status"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
	reg.MustRegister(m.requests, m.latency)
	return m
}

// Middleware records one observation per completed request. The route
// template is used as the path label to keep cardinality bounded.
func (m *HTTPMetrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}

		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		m.requests.WithLabelValues(c.Request.Method, path, statusRange(c.Writer.Status())).Inc()
		m.latency.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// statusRange converts a status code to a range string (2xx, 3xx, 4xx, 5xx).
func statusRange(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return "2xx"
	case statusCode >= 300 && statusCode < 400:
		return "3xx"
	case statusCode >= 400 && statusCode < 500:
		return "4xx"
	case statusCode >= 500:
		return "5xx"
	default:
		return "unknown"
	}
}

// CheckoutMetrics counts checkout domain events.
type CheckoutMetrics struct {
	intents  *prometheus.CounterVec
	outcomes *prometheus.CounterVec
}

// NewCheckoutMetrics creates the checkout metric vectors and registers them
// on reg.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	m := &CheckoutMetrics{
		intents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkout_intents_total",
				Help: "Payment intents created, by outcome.",
			},
			[]string{"outcome"},
		),
		outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkout_outcomes_total",
				Help: "Resolved payment outcomes, by gateway status.",
			},
			[]string{"status"},
		),
	}
	reg.MustRegister(m.intents, m.outcomes)
	return m
}

// RecordIntent counts one intent creation attempt by outcome.
func (m *CheckoutMetrics) RecordIntent(outcome string) {
	if m == nil {
		return
	}
	m.intents.WithLabelValues(outcome).Inc()
}

// RecordOutcome counts one resolved outcome by gateway status.
func (m *CheckoutMetrics) RecordOutcome(status string) {
	if m == nil {
		return
	}
	m.outcomes.WithLabelValues(status).Inc()
}
