package store

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"jobpulse/internal/domain"
)

//go:embed seed/jobs.yml
var defaultSeed []byte

var (
	ErrEmptyTitle      = errors.New("title is required")
	ErrEmptyApplyURL   = errors.New("apply_url is required")
	ErrInvalidApplyURL = errors.New("apply_url must be an absolute http(s) URL")
)

type seedFile struct {
	Jobs []seedJob `yaml:"jobs"`
}

type seedJob struct {
	Title      string `yaml:"title"`
	Company    string `yaml:"company"`
	Location   string `yaml:"location"`
	Source     string `yaml:"source"`
	PostedDate string `yaml:"posted_date"`
	ApplyURL   string `yaml:"apply_url"`
	RoleType   string `yaml:"role_type"`
}

// Report describes what a seed load kept and dropped.
type Report struct {
	Loaded     int
	Duplicates []string // apply URLs seen more than once; first wins
}

// Load reads a YAML seed file. Relative posted dates ("today", "2 days ago")
// are resolved against now, in now's location.
func Load(path string, now time.Time) (*Store, Report, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, Report{}, fmt.Errorf("read jobs file: %w", err)
	}
	s, rep, err := Parse(b, now)
	if err != nil {
		return nil, rep, fmt.Errorf("%s: %w", path, err)
	}
	return s, rep, nil
}

// Default returns the built-in sample dataset.
func Default(now time.Time) (*Store, Report, error) {
	return Parse(defaultSeed, now)
}

func Parse(b []byte, now time.Time) (*Store, Report, error) {
	var f seedFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, Report{}, fmt.Errorf("parse jobs yaml: %w", err)
	}

	var rep Report
	seen := make(map[string]bool, len(f.Jobs))
	jobs := make([]domain.JobPosting, 0, len(f.Jobs))

	for i, sj := range f.Jobs {
		j, err := sj.posting(now)
		if err != nil {
			return nil, rep, fmt.Errorf("jobs[%d]: %w", i, err)
		}
		key := canonicalizeURL(j.ApplyURL)
		if seen[key] {
			rep.Duplicates = append(rep.Duplicates, j.ApplyURL)
			continue
		}
		seen[key] = true
		jobs = append(jobs, j)
	}

	rep.Loaded = len(jobs)
	return New(jobs), rep, nil
}

func (sj seedJob) posting(now time.Time) (domain.JobPosting, error) {
	j := domain.JobPosting{
		Title:    CleanText(sj.Title),
		Company:  CleanText(sj.Company),
		Location: NormalizeLocation(sj.Location),
		Source:   NormalizeCategory(sj.Source),
		ApplyURL: CleanText(sj.ApplyURL),
		RoleType: NormalizeCategory(sj.RoleType),
	}

	if j.Title == "" {
		return j, ErrEmptyTitle
	}
	if j.ApplyURL == "" {
		return j, ErrEmptyApplyURL
	}
	if !validApplyURL(j.ApplyURL) {
		return j, fmt.Errorf("%w: %q", ErrInvalidApplyURL, j.ApplyURL)
	}

	if j.Company == "" {
		j.Company = "Unknown"
	}
	if j.Location == "" {
		j.Location = "Unknown"
	}
	if j.Source == "" {
		j.Source = "manual"
	}
	if j.RoleType == "" {
		j.RoleType = domain.InferRoleType(j.Title)
	}

	d, err := domain.ParseDate(sj.PostedDate, now)
	if err != nil {
		return j, fmt.Errorf("posted_date: %w", err)
	}
	j.PostedDate = d

	return j, nil
}
