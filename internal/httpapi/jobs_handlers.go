package httpapi

import (
	"net/http"

	"jobpulse/internal/dashboard"
	"jobpulse/internal/domain"
)

type JobsHandler struct {
	Dashboard *dashboard.Dashboard
}

type jobsResponse struct {
	Criteria dashboard.Criteria  `json:"criteria"`
	Jobs     []domain.JobPosting `json:"jobs"`
	Stats    dashboard.Stats     `json:"stats"`
}

// List is the JSON form of the dashboard: same parameters, same pipeline.
func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	res := h.Dashboard.View(dashboard.ParseCriteria(r.URL.Query()))

	jobs := res.Jobs
	if jobs == nil {
		jobs = []domain.JobPosting{}
	}
	writeJSON(w, jobsResponse{
		Criteria: res.Criteria,
		Jobs:     jobs,
		Stats:    res.Stats,
	})
}
