// Package roster holds the business rules shared by the roster service and
// the roster panel: team size cap, role uniqueness, access levels and the
// search threshold.
package roster

import (
	"strings"

	apperrors "opportunity-team/internal/errors"
	"opportunity-team/internal/models"
)

const (
	// MaxTeamMembers is the maximum number of members per opportunity.
	MaxTeamMembers = 2
	// MinSearchLength is the minimum trimmed length of a user search term.
	MinSearchLength = 2
	// DefaultAccessLevel applies when no access level was chosen for a user.
	DefaultAccessLevel = models.AccessEdit
)

// CheckCapacity returns ErrMaxTeamMembers when a roster of size count is full.
func CheckCapacity(count int) error {
	if count >= MaxTeamMembers {
		return apperrors.ErrMaxTeamMembers
	}
	return nil
}

// CheckRoleAvailable returns ErrRoleAlreadyAssigned when role is already held
// by one of the given roles.
func CheckRoleAvailable(held []string, role string) error {
	for _, r := range held {
		if r == role {
			return apperrors.ErrRoleAlreadyAssigned
		}
	}
	return nil
}

// ValidateAddition runs the capacity and role checks against a roster snapshot.
// Capacity is checked first.
func ValidateAddition(members []models.TeamMemberRecord, role string) error {
	if err := CheckCapacity(len(members)); err != nil {
		return err
	}

	held := make([]string, 0, len(members))
	for _, m := range members {
		held = append(held, m.TeamMemberRole)
	}
	return CheckRoleAvailable(held, role)
}

// NormalizeAccessLevel maps an empty level to the default and rejects
// anything other than Edit or Read.
func NormalizeAccessLevel(level string) (string, error) {
	switch level {
	case "":
		return DefaultAccessLevel, nil
	case models.AccessEdit, models.AccessRead:
		return level, nil
	default:
		return "", apperrors.ErrInvalidAccessLevel
	}
}

// AccessFor converts an edit checkbox state into an access level.
func AccessFor(canEdit bool) string {
	if canEdit {
		return models.AccessEdit
	}
	return models.AccessRead
}

// IsSearchable reports whether term is long enough to search for.
func IsSearchable(term string) bool {
	return len([]rune(strings.TrimSpace(term))) >= MinSearchLength
}
