package domain

import "strings"

const (
	RoleIntern  = "intern"
	RoleTrainee = "trainee"
	RoleJunior  = "junior"
	RoleEntry   = "entry"
)

// InferRoleType guesses the role type from a title. First hit wins, in
// seniority order; anything else is entry level.
func InferRoleType(title string) string {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "intern"):
		return RoleIntern
	case strings.Contains(t, "trainee"):
		return RoleTrainee
	case strings.Contains(t, "junior"):
		return RoleJunior
	default:
		return RoleEntry
	}
}
