package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var HTTPRequestsCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "jobpulse",
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "Count of served HTTP requests by route, method and status code",
}, []string{"route", "method", "code"})

var HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "jobpulse",
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "Duration of served HTTP requests by route",
	Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
}, []string{"route"})

var DashboardVisibleJobs = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "jobpulse",
	Subsystem: "dashboard",
	Name:      "visible_jobs",
	Help:      "Number of postings left after filtering, per dashboard request",
	Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
})

var rateLimited = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "jobpulse",
	Subsystem: "http",
	Name:      "rate_limited_total",
	Help:      "Count of requests rejected by the per-client rate limiter",
})

var storeJobs = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "jobpulse",
	Subsystem: "store",
	Name:      "jobs",
	Help:      "Number of postings held by the job store",
})

// instrument records count and latency under a fixed route label, so
// arbitrary request paths never become label values.
func instrument(route string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		h(sw, r)
		if sw.status == 0 {
			sw.status = http.StatusOK
		}
		HTTPRequestsCount.WithLabelValues(route, methodLabel(r.Method), strconv.Itoa(sw.status)).Inc()
		HTTPRequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

func methodLabel(m string) string {
	switch m {
	case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete, http.MethodOptions:
		return m
	}
	return "other"
}
