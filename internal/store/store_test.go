package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobpulse/internal/domain"
)

var loadTime = time.Date(2026, time.April, 15, 12, 0, 0, 0, time.UTC)

func TestStore_AllReturnsCopy(t *testing.T) {
	in := []domain.JobPosting{{Title: "a"}, {Title: "b"}}
	s := New(in)

	in[0].Title = "mutated"
	got := s.All()
	assert.Equal(t, "a", got[0].Title)

	got[1].Title = "also mutated"
	assert.Equal(t, "b", s.All()[1].Title)
	assert.Equal(t, 2, s.Len())
}

func TestStore_Nil(t *testing.T) {
	var s *Store
	assert.Nil(t, s.All())
	assert.Equal(t, 0, s.Len())
	assert.Nil(t, s.Sources())
}

func TestStore_DistinctFacets(t *testing.T) {
	s := New([]domain.JobPosting{
		{Source: "rozee", RoleType: "trainee"},
		{Source: "indeed", RoleType: "intern"},
		{Source: "rozee", RoleType: "intern"},
		{Source: "", RoleType: ""},
	})
	assert.Equal(t, []string{"rozee", "indeed"}, s.Sources())
	assert.Equal(t, []string{"trainee", "intern"}, s.RoleTypes())
}

func TestDefault(t *testing.T) {
	s, rep, err := Default(loadTime)
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Loaded)
	assert.Empty(t, rep.Duplicates)

	jobs := s.All()
	require.Len(t, jobs, 2)
	assert.Equal(t, "Python Intern", jobs[0].Title)
	assert.Equal(t, domain.DateOf(loadTime), jobs[0].PostedDate)
	assert.Equal(t, domain.DateOf(loadTime).AddDays(-2), jobs[1].PostedDate)
	assert.Equal(t, "rozee", jobs[1].Source)
}

func TestParse_NormalizesAndInfers(t *testing.T) {
	src := []byte(`
jobs:
  - title: "  Junior   Go Developer "
    company: ""
    location: "Remote"
    source: " RemoteOK "
    posted_date: 2026-04-10
    apply_url: https://remoteok.com/jobs/1
`)
	s, _, err := Parse(src, loadTime)
	require.NoError(t, err)

	j := s.All()[0]
	assert.Equal(t, "Junior Go Developer", j.Title)
	assert.Equal(t, "Unknown", j.Company)
	assert.Equal(t, "remoteok", j.Source)
	assert.Equal(t, domain.RoleJunior, j.RoleType)
	assert.Equal(t, domain.Date{Year: 2026, Month: time.April, Day: 10}, j.PostedDate)
}

func TestParse_DropsDuplicateApplyURLs(t *testing.T) {
	src := []byte(`
jobs:
  - {title: First, source: indeed, posted_date: today, apply_url: "https://Example.com/job/1?utm_source=x"}
  - {title: Second, source: indeed, posted_date: today, apply_url: "https://example.com/job/1/"}
  - {title: Third, source: indeed, posted_date: today, apply_url: "https://example.com/job/2"}
`)
	s, rep, err := Parse(src, loadTime)
	require.NoError(t, err)

	require.Equal(t, 2, s.Len())
	assert.Equal(t, "First", s.All()[0].Title)
	assert.Equal(t, "Third", s.All()[1].Title)
	assert.Equal(t, []string{"https://example.com/job/1/"}, rep.Duplicates)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"missing title", `jobs: [{apply_url: "https://x.io/1", posted_date: today}]`, ErrEmptyTitle},
		{"missing url", `jobs: [{title: A, posted_date: today}]`, ErrEmptyApplyURL},
		{"relative url", `jobs: [{title: A, apply_url: "/jobs/1", posted_date: today}]`, ErrInvalidApplyURL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse([]byte(tt.src), loadTime)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "jobs[0]")
		})
	}

	_, _, err := Parse([]byte(`jobs: [{title: A, apply_url: "https://x.io/1", posted_date: someday}]`), loadTime)
	assert.ErrorContains(t, err, "posted_date")

	_, _, err = Parse([]byte(`jobs: {not: a list}`), loadTime)
	assert.ErrorContains(t, err, "parse jobs yaml")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jobs.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
jobs:
  - {title: Data Intern, company: Acme, source: rozee, posted_date: yesterday, apply_url: "https://acme.io/a"}
`), 0o644))

	s, rep, err := Load(path, loadTime)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Loaded)
	assert.Equal(t, domain.RoleIntern, s.All()[0].RoleType)

	_, _, err = Load(filepath.Join(dir, "missing.yml"), loadTime)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCanonicalizeURL(t *testing.T) {
	assert.Equal(t,
		"https://example.com/a?b=1&b=2&c=3",
		canonicalizeURL("HTTPS://EXAMPLE.com/a/?c=3&b=2&b=1&utm_medium=mail#frag"))
	assert.Equal(t, "", canonicalizeURL("  "))
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "a b c", CleanText("  a  b\n\tc "))
	assert.Equal(t, "indeed", NormalizeCategory(" Indeed "))
}

func TestNormalizeLocation(t *testing.T) {
	tests := map[string]string{
		"Lahore":                     "Lahore",
		"Location: Lahore, Pakistan": "Lahore, Pakistan",
		"LOCATIONS: Remote":          "Remote",
		"Lahore, lahore , Pakistan,": "Lahore, Pakistan",
		"   ":                        "",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeLocation(in), in)
	}
}
