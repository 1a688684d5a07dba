package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Conversion result labels
const (
	resultOK    = "ok"
	resultError = "error"
)

// Metrics holds the Prometheus collectors of the API. Each instance owns
// its registry so routers built in tests do not collide.
type Metrics struct {
	registry    *prometheus.Registry
	conversions *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewMetrics creates and registers the API collectors
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hannum_conversions_total",
			Help: "Number of conversions by operation and result",
		}, []string{"op", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hannum_request_duration_seconds",
			Help:    "HTTP request duration by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"path"}),
	}
	m.registry.MustRegister(m.conversions, m.duration)
	return m
}

// ObserveConversion counts one conversion of op
func (m *Metrics) ObserveConversion(op string, err error) {
	result := resultOK
	if err != nil {
		result = resultError
	}
	m.conversions.WithLabelValues(op, result).Inc()
}

// Middleware records the duration of every routed request
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.duration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
