package pkgrouter

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals // registered once with the default registry
var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mslogger_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mslogger_http_request_duration_seconds",
			Help:    "Time until response headers were sent, in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	httpResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mslogger_http_response_size_bytes",
			Help:    "Size of HTTP response bodies, in bytes",
			Buckets: prometheus.ExponentialBuckets(64, 4, 8),
		},
		[]string{"method"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mslogger_http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
	)

	rateLimitRejects = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mslogger_rate_limit_rejects_total",
			Help: "Total number of requests rejected due to rate limiting",
		},
	)
)

func middlewareMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		tw := newTimingWriter(w)
		next.ServeHTTP(tw, r)

		status := tw.status
		end := tw.headerAt
		if !tw.headerSent() {
			status = http.StatusOK
			end = time.Now()
		}

		httpRequestsTotal.WithLabelValues(r.Method, strconv.Itoa(status)).Inc()
		httpRequestDuration.WithLabelValues(r.Method).Observe(end.Sub(start).Seconds())
		httpResponseSize.WithLabelValues(r.Method).Observe(float64(tw.bytes))
	})
}
