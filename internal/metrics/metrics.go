// Package metrics provides Prometheus metrics collection for the packing planner.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// PackingEditsTotal counts edits applied to packing sessions by operation and outcome.
	PackingEditsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "packing_edits_total",
			Help: "Total number of packing session edits",
		},
		[]string{"operation", "result"},
	)

	// PackingClampsTotal counts units-per-box values lowered to fit the shipment total.
	PackingClampsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "packing_clamps_total",
			Help: "Total number of units-per-box values clamped to remaining capacity",
		},
	)

	// PackingCommitsTotal counts commit attempts by outcome.
	PackingCommitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "packing_commits_total",
			Help: "Total number of packing commits",
		},
		[]string{"status"},
	)

	// PackingCommitDuration tracks the duration of commits that reached the shipments API.
	PackingCommitDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "packing_commit_duration_seconds",
			Help:    "Packing commit duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		},
	)

	// SessionStoreOperationsTotal tracks session store operations.
	SessionStoreOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_store_operations_total",
			Help: "Total number of session store operations",
		},
		[]string{"operation", "result"},
	)

	// ActiveSessions tracks the number of open packing sessions.
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "packing_sessions_active",
			Help: "Current number of open packing sessions",
		},
	)

	// SessionCapacity tracks the session store capacity.
	SessionCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "packing_sessions_capacity",
			Help: "Packing session store capacity",
		},
	)

	// EventsPublishedTotal counts domain events by type and outcome.
	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_published_total",
			Help: "Total number of published domain events",
		},
		[]string{"type", "result"},
	)

	// IdempotencyCacheTotal tracks idempotency replay cache lookups.
	IdempotencyCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "idempotency_cache_operations_total",
			Help: "Total number of idempotency cache operations",
		},
		[]string{"operation", "result"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordEdit records one packing edit.
func RecordEdit(operation, result string) {
	PackingEditsTotal.WithLabelValues(operation, result).Inc()
}

// RecordClamp records an automatic units-per-box adjustment.
func RecordClamp() {
	PackingClampsTotal.Inc()
}

// RecordCommit records a commit outcome. Duration is only observed for
// commits that called the shipments API.
func RecordCommit(duration time.Duration, status string) {
	if duration > 0 {
		PackingCommitDuration.Observe(duration.Seconds())
	}
	PackingCommitsTotal.WithLabelValues(status).Inc()
}

// RecordSessionOperation records metrics for a session store operation.
func RecordSessionOperation(operation, result string) {
	SessionStoreOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateSessionMetrics updates session store size and capacity metrics.
func UpdateSessionMetrics(size, capacity int) {
	ActiveSessions.Set(float64(size))
	SessionCapacity.Set(float64(capacity))
}

// RecordEvent records a domain event publication.
func RecordEvent(eventType, result string) {
	EventsPublishedTotal.WithLabelValues(eventType, result).Inc()
}

// RecordIdempotency records an idempotency cache operation.
func RecordIdempotency(operation, result string) {
	IdempotencyCacheTotal.WithLabelValues(operation, result).Inc()
}
