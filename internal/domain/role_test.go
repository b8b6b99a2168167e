package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferRoleType(t *testing.T) {
	cases := map[string]string{
		"Python Intern":            RoleIntern,
		"Summer INTERNSHIP - Data": RoleIntern,
		"Django Trainee Developer": RoleTrainee,
		"Junior Backend Engineer":  RoleJunior,
		"Software Engineer":        RoleEntry,
		"":                         RoleEntry,
	}
	for title, want := range cases {
		assert.Equal(t, want, InferRoleType(title), "title %q", title)
	}
}

func TestJobPosting_PostedOn(t *testing.T) {
	d := Date{2026, 1, 2}
	j := JobPosting{Title: "x", PostedDate: d}
	assert.True(t, j.PostedOn(d))
	assert.False(t, j.PostedOn(d.AddDays(1)))
}
