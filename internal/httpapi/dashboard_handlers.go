package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"jobpulse/internal/dashboard"
	"jobpulse/internal/render"
)

type DashboardHandler struct {
	Dashboard *dashboard.Dashboard
	Renderer  *render.Renderer
	Logger    *zap.Logger
}

// Index serves the job board page. "/" is the mux catch-all, so any other
// path ends up here too and gets a 404.
func (h DashboardHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		WriteError(w, r, http.StatusNotFound, CodeNotFound, "no such page: "+r.URL.Path)
		return
	}

	res := h.Dashboard.View(dashboard.ParseCriteria(r.URL.Query()))
	DashboardVisibleJobs.Observe(float64(res.Stats.TotalVisible))

	reqID := RequestIDFrom(r.Context())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := h.Renderer.Dashboard(w, res, h.Dashboard.Store().Len(), reqID); err != nil {
		h.Logger.Error("render dashboard",
			zap.String("request_id", reqID),
			zap.Error(err),
		)
		WriteError(w, r, http.StatusInternalServerError, CodeRenderFailed, "could not render dashboard")
	}
}
