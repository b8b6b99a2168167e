// Package store holds the Job Store: an ordered, immutable set of job
// postings fixed when the process starts.
package store

import "jobpulse/internal/domain"

type Store struct {
	jobs []domain.JobPosting
}

// New copies jobs, so later changes to the caller's slice are not visible.
func New(jobs []domain.JobPosting) *Store {
	cp := make([]domain.JobPosting, len(jobs))
	copy(cp, jobs)
	return &Store{jobs: cp}
}

// All returns the postings in store order. The slice is a copy.
func (s *Store) All() []domain.JobPosting {
	if s == nil {
		return nil
	}
	out := make([]domain.JobPosting, len(s.jobs))
	copy(out, s.jobs)
	return out
}

func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.jobs)
}

// Sources returns distinct source values in first-seen order.
func (s *Store) Sources() []string {
	return s.distinct(func(j domain.JobPosting) string { return j.Source })
}

// RoleTypes returns distinct role types in first-seen order.
func (s *Store) RoleTypes() []string {
	return s.distinct(func(j domain.JobPosting) string { return j.RoleType })
}

func (s *Store) distinct(field func(domain.JobPosting) string) []string {
	if s == nil {
		return nil
	}
	seen := map[string]bool{}
	var out []string
	for _, j := range s.jobs {
		v := field(j)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
