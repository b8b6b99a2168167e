package httpapi

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"jobpulse/internal/render"
)

// NewMux returns the bare routes. NewHandler wraps them in middleware.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Dashboard
	dh := DashboardHandler{Dashboard: d.Dashboard, Renderer: d.Renderer, Logger: d.logger()}
	mux.HandleFunc("/", instrument("dashboard", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: dh.Index,
	})))

	// Jobs (JSON view of the same pipeline)
	jh := JobsHandler{Dashboard: d.Dashboard}
	mux.HandleFunc("/jobs", instrument("jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.List,
	})))

	// Health
	hh := HealthHandler{}
	mux.HandleFunc("/health", instrument("health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	})))

	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/static/", instrument("static", http.StripPrefix("/static/", render.Static()).ServeHTTP))

	return mux
}

// NewHandler is the full server handler: routes behind request ID, access
// log, panic recovery and (optionally) per-client rate limiting.
func NewHandler(d Deps) http.Handler {
	log := d.logger()
	mw := []Middleware{RequestID, AccessLog(log), Recover(log)}
	if d.Limiter != nil {
		mw = append(mw, RateLimit(d.Limiter, log))
	}
	if d.Dashboard != nil {
		storeJobs.Set(float64(d.Dashboard.Store().Len()))
	}
	return Chain(NewMux(d), mw...)
}
