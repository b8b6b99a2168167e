package dashboard

import (
	"strings"

	"jobpulse/internal/domain"
)

// Filter keeps the postings that match every set field of c, in input order.
// today anchors the Days window.
func Filter(jobs []domain.JobPosting, c Criteria, today domain.Date) []domain.JobPosting {
	m := c.matcher(today)
	out := make([]domain.JobPosting, 0, len(jobs))
	for _, j := range jobs {
		if m(j) {
			out = append(out, j)
		}
	}
	return out
}

// Matches reports whether a single posting passes c.
func (c Criteria) Matches(j domain.JobPosting, today domain.Date) bool {
	return c.matcher(today)(j)
}

func (c Criteria) matcher(today domain.Date) func(domain.JobPosting) bool {
	q := strings.ToLower(c.Query)
	loc := strings.ToLower(c.Location)
	var since domain.Date
	if c.Days > 0 {
		since = today.AddDays(-(c.Days - 1))
	}

	return func(j domain.JobPosting) bool {
		// 1) free text on title/company
		if q != "" &&
			!strings.Contains(strings.ToLower(j.Title), q) &&
			!strings.Contains(strings.ToLower(j.Company), q) {
			return false
		}

		// 2) categorical
		if c.Source != "" && !strings.EqualFold(c.Source, j.Source) {
			return false
		}
		if c.RoleType != "" && !strings.EqualFold(c.RoleType, j.RoleType) {
			return false
		}

		// 3) location substring
		if loc != "" && !strings.Contains(strings.ToLower(j.Location), loc) {
			return false
		}

		// 4) recency window, today inclusive
		if c.Days > 0 && j.PostedDate.Before(since) {
			return false
		}

		return true
	}
}
