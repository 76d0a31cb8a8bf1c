package http

import (
	"net/http"
	"strconv"
	"time"

	"turismo-api/internal/handler/http/pathutil"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus metrics
var (
	// HTTP request metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// httpRequestDuration tracks request latency. Buckets cover fast local
	// reads through slow backend round-trips so p95/p99 stay measurable.
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)

	httpResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)

	// Business metrics
	reviewsSubmittedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reviews_submitted_total",
			Help: "Total number of reviews submitted, by venue kind (or unscoped)",
		},
		[]string{"kind"},
	)

	reviewsRemovedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reviews_removed_total",
			Help: "Total number of reviews removed",
		},
	)

	reviewCompensationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "review_compensations_total",
			Help: "Times a review was deleted again because its association could not be created",
		},
	)

	busyRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mutation_busy_rejections_total",
			Help: "Requests rejected because a mutation was already in flight for the scope",
		},
		[]string{"operation"},
	)
)

// responseWriter wraps http.ResponseWriter to record status code and response size.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	size, err := rw.ResponseWriter.Write(b)
	rw.size += size
	return size, err
}

// MetricsMiddleware records HTTP request metrics including duration, size,
// and status codes. Paths are normalized so id-bearing routes share one
// label and cardinality stays bounded.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		normalizedPath := pathutil.NormalizePath(r.URL.Path)

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		start := time.Now()
		next.ServeHTTP(rw, r)
		duration := time.Since(start).Seconds()

		status := strconv.Itoa(rw.statusCode)
		httpRequestsTotal.WithLabelValues(r.Method, normalizedPath, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, normalizedPath, status).Observe(duration)
		httpResponseSize.WithLabelValues(r.Method, normalizedPath).Observe(float64(rw.size))
	})
}

// MetricsHandler returns an HTTP handler for the Prometheus metrics endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

// RecordReviewSubmitted records a successful review submission. kind is the
// venue kind, or "all" for unscoped submissions.
func RecordReviewSubmitted(kind string) {
	reviewsSubmittedTotal.WithLabelValues(kind).Inc()
}

// RecordReviewRemoved records a successful review removal.
func RecordReviewRemoved() {
	reviewsRemovedTotal.Inc()
}

// RecordCompensation records a compensating delete after a link failure.
func RecordCompensation() {
	reviewCompensationsTotal.Inc()
}

// RecordBusyRejection records a mutation rejected by the in-flight guard.
func RecordBusyRejection(operation string) {
	busyRejectionsTotal.WithLabelValues(operation).Inc()
}
