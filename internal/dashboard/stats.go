package dashboard

import (
	"time"

	"jobpulse/internal/domain"
)

type Stats struct {
	TotalVisible        int       `json:"total_visible"`
	PostedTodayCount    int       `json:"posted_today_count"`
	DistinctSourceCount int       `json:"distinct_source_count"`
	GeneratedAt         time.Time `json:"generated_at"`
}

// ComputeStats summarizes an already filtered set. "Today" is the calendar
// date of now in now's location.
func ComputeStats(jobs []domain.JobPosting, now time.Time) Stats {
	today := domain.DateOf(now)
	sources := make(map[string]struct{})

	st := Stats{
		TotalVisible: len(jobs),
		GeneratedAt:  now,
	}
	for _, j := range jobs {
		if j.PostedOn(today) {
			st.PostedTodayCount++
		}
		sources[j.Source] = struct{}{}
	}
	st.DistinctSourceCount = len(sources)
	return st
}
