// Package metrics provides Prometheus metrics for the terminal front ends.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Widget metrics
	commandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "defterm_commands_total",
			Help: "Total number of dispatched commands",
		},
		[]string{"command"},
	)

	unknownCommandsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "defterm_unknown_commands_total",
			Help: "Total number of lines naming no known command",
		},
	)

	completionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "defterm_completions_total",
			Help: "Total autocomplete requests",
		},
		[]string{"result"},
	)

	liveWidgets = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "defterm_live_widgets",
			Help: "Number of widgets currently bound to a surface",
		},
		[]string{"frontend"},
	)

	// HTTP request metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "defterm_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "defterm_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Content metrics
	postsLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "defterm_posts_loaded",
			Help: "Number of posts in the content collection",
		},
	)

	contentReloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "defterm_content_reloads_total",
			Help: "Total content collection reloads",
		},
		[]string{"status"},
	)
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordCommand records one submitted line. Unknown names are not used as
// label values so arbitrary input cannot grow the series set.
func RecordCommand(name string, known bool) {
	if !known {
		unknownCommandsTotal.Inc()
		return
	}
	commandsTotal.WithLabelValues(name).Inc()
}

// RecordCompletion records an autocomplete request.
func RecordCompletion(completed bool) {
	result := "completed"
	if !completed {
		result = "unchanged"
	}
	completionsTotal.WithLabelValues(result).Inc()
}

// WidgetBound adjusts the live widget gauge by delta (+1 or -1).
func WidgetBound(frontend string, delta int) {
	liveWidgets.WithLabelValues(frontend).Add(float64(delta))
}

// SetPostsLoaded sets the size of the content collection.
func SetPostsLoaded(n int) {
	postsLoaded.Set(float64(n))
}

// RecordContentReload records a reload of the content collection.
func RecordContentReload(success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	contentReloadsTotal.WithLabelValues(status).Inc()
}

// RecordHTTPRequest records an HTTP request metric.
func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// Middleware returns gin middleware that records request metrics. The
// matched route template is used as the path label.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		RecordHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
