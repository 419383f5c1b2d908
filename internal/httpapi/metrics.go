package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the Prometheus collectors of the API.
type Metrics struct {
	RequestsTotal      *prometheus.CounterVec
	RequestDurationSec *prometheus.HistogramVec
	RateLimitDropped   prometheus.Counter
}

// NewMetrics creates the collectors and registers them with registry.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "alcocalc_requests_total",
			Help: "Total number of API requests.",
		}, []string{"route", "method", "status"}),
		RequestDurationSec: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "alcocalc_request_duration_seconds",
			Help:    "API request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
		RateLimitDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "alcocalc_ratelimit_dropped_total",
			Help: "Total number of requests dropped by the rate limiter.",
		}),
	}

	registry.MustRegister(m.RequestsTotal, m.RequestDurationSec, m.RateLimitDropped)
	return m
}

// Middleware records count and latency per route, method and status.
// Paths outside routes share the "other" label.
func (m *Metrics) Middleware(routes []string, next http.Handler) http.Handler {
	known := make(map[string]struct{}, len(routes))
	for _, r := range routes {
		known[r] = struct{}{}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startedAt := time.Now()
		wrapped := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		route := r.URL.Path
		if _, ok := known[route]; !ok {
			route = "other"
		}
		method := methodLabel(r.Method)
		status := strconv.Itoa(wrapped.statusCode)
		m.RequestsTotal.WithLabelValues(route, method, status).Inc()
		m.RequestDurationSec.WithLabelValues(route, method, status).Observe(time.Since(startedAt).Seconds())
	})
}

func methodLabel(method string) string {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete, http.MethodOptions:
		return method
	default:
		return "other"
	}
}
