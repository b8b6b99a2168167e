// Package dashboard is the filter/aggregate pipeline behind the job board
// page: it narrows the Job Store by a request's Criteria and summarizes what
// is left.
package dashboard

import (
	"time"

	"jobpulse/internal/domain"
	"jobpulse/internal/store"
)

// Facets lists the values offered by the filter form. They come from the
// whole store, not the filtered view, so choosing one never hides the others.
type Facets struct {
	Sources   []string
	RoleTypes []string
}

type Result struct {
	Criteria Criteria
	Jobs     []domain.JobPosting
	Stats    Stats
	Facets   Facets
	Today    domain.Date
}

// Build runs the pipeline over jobs. It has no side effects.
func Build(jobs []domain.JobPosting, c Criteria, now time.Time) Result {
	today := domain.DateOf(now)
	filtered := Filter(jobs, c, today)
	return Result{
		Criteria: c,
		Jobs:     filtered,
		Stats:    ComputeStats(filtered, now),
		Today:    today,
	}
}

// Dashboard binds the pipeline to a store, a clock and the timezone that
// decides what "today" is.
type Dashboard struct {
	store *store.Store
	loc   *time.Location
	now   func() time.Time
}

type Option func(*Dashboard)

func WithClock(now func() time.Time) Option {
	return func(d *Dashboard) { d.now = now }
}

func WithLocation(loc *time.Location) Option {
	return func(d *Dashboard) {
		if loc != nil {
			d.loc = loc
		}
	}
}

func New(s *store.Store, opts ...Option) *Dashboard {
	d := &Dashboard{
		store: s,
		loc:   time.UTC,
		now:   time.Now,
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// View filters the store for c. GeneratedAt is taken fresh on every call.
func (d *Dashboard) View(c Criteria) Result {
	res := Build(d.store.All(), c, d.Now())
	res.Facets = Facets{
		Sources:   d.store.Sources(),
		RoleTypes: d.store.RoleTypes(),
	}
	return res
}

func (d *Dashboard) Now() time.Time {
	return d.now().In(d.loc)
}

func (d *Dashboard) Location() *time.Location { return d.loc }

func (d *Dashboard) Store() *store.Store { return d.store }
