package metrics

import (
	"strconv"
	"time"

	apperrors "hr-payroll-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry = prometheus.DefaultRegisterer

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by path/method/code.",
		},
		[]string{"path", "method", "code"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests by path/method/code.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method", "code"},
	)

	writeEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hr_write_events_total",
			Help: "Record writes by entity, operation, result and rejection reason.",
		},
		[]string{"entity", "op", "result", "reason"},
	)

	writeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hr_write_duration_seconds",
			Help:    "Duration of record write transactions by entity and operation.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"entity", "op"},
	)

	payrollQueries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hr_payroll_queries_total",
			Help: "Payroll aggregate queries by scope and result.",
		},
		[]string{"scope", "result"},
	)
)

// GinMiddleware records request count and latency per route
func GinMiddleware(c *gin.Context) {
	start := time.Now()
	c.Next()
	code := strconv.Itoa(c.Writer.Status())
	path := c.FullPath()

	// unmatched routes are reported under their raw path
	if path == "" {
		path = c.Request.URL.Path
	}

	if path == "/metrics" {
		return
	}

	method := c.Request.Method

	httpRequests.WithLabelValues(path, method, code).Inc()
	httpDuration.WithLabelValues(path, method, code).Observe(time.Since(start).Seconds())
}

// Handler exposes the default registry
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

// ObserveWrite records the outcome of a write on entity
func ObserveWrite(entity, op string, start time.Time, err error) {
	result := "success"
	if err != nil {
		result = "rejected"
	}
	writeEvents.WithLabelValues(entity, op, result, Reason(err)).Inc()
	writeDuration.WithLabelValues(entity, op).Observe(time.Since(start).Seconds())
}

// ObservePayroll records a payroll query for scope
func ObservePayroll(scope string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	payrollQueries.WithLabelValues(scope, result).Inc()
}

// Reason maps an error to a bounded label value
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case apperrors.IsNotFound(err):
		return "not_found"
	case apperrors.IsAlreadyExists(err):
		return "already_exists"
	case apperrors.IsLeaderConflict(err):
		return "leader_conflict"
	case apperrors.IsHourCapExceeded(err):
		return "hour_cap"
	case apperrors.IsValidation(err):
		return "validation"
	default:
		return "internal"
	}
}

func init() {
	collectors := []prometheus.Collector{
		httpRequests,
		httpDuration,
		writeEvents,
		writeDuration,
		payrollQueries,
	}

	for _, c := range collectors {
		_ = registry.Register(c)
	}
}
