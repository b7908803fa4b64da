package roster

import (
	"testing"

	apperrors "opportunity-team/internal/errors"
	"opportunity-team/internal/models"

	"github.com/stretchr/testify/assert"
)

func member(role string) models.TeamMemberRecord {
	return models.TeamMemberRecord{ID: "m-" + role, TeamMemberRole: role, AccessLevel: models.AccessEdit}
}

func TestCheckCapacity(t *testing.T) {
	assert.NoError(t, CheckCapacity(0))
	assert.NoError(t, CheckCapacity(1))
	assert.ErrorIs(t, CheckCapacity(2), apperrors.ErrMaxTeamMembers)
	assert.ErrorIs(t, CheckCapacity(5), apperrors.ErrMaxTeamMembers)
}

func TestCheckRoleAvailable(t *testing.T) {
	assert.NoError(t, CheckRoleAvailable(nil, "Sponsor"))
	assert.NoError(t, CheckRoleAvailable([]string{"Sales Rep"}, "Sponsor"))
	assert.ErrorIs(t, CheckRoleAvailable([]string{"Sales Rep", "Sponsor"}, "Sponsor"), apperrors.ErrRoleAlreadyAssigned)
}

func TestValidateAddition(t *testing.T) {
	tests := []struct {
		name     string
		members  []models.TeamMemberRecord
		role     string
		expected error
	}{
		{"empty roster accepts any role", nil, "Sponsor", nil},
		{"one member with different role", []models.TeamMemberRecord{member("Sales Rep")}, "Sponsor", nil},
		{"one member with same role", []models.TeamMemberRecord{member("Sponsor")}, "Sponsor", apperrors.ErrRoleAlreadyAssigned},
		{"full roster", []models.TeamMemberRecord{member("Sales Rep"), member("Sponsor")}, "Technical Sales", apperrors.ErrMaxTeamMembers},
		{"full roster reports capacity before role", []models.TeamMemberRecord{member("Sales Rep"), member("Sponsor")}, "Sponsor", apperrors.ErrMaxTeamMembers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAddition(tt.members, tt.role)
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestNormalizeAccessLevel(t *testing.T) {
	level, err := NormalizeAccessLevel("")
	assert.NoError(t, err)
	assert.Equal(t, models.AccessEdit, level)

	level, err = NormalizeAccessLevel("Read")
	assert.NoError(t, err)
	assert.Equal(t, models.AccessRead, level)

	_, err = NormalizeAccessLevel("All")
	assert.ErrorIs(t, err, apperrors.ErrInvalidAccessLevel)

	_, err = NormalizeAccessLevel("edit")
	assert.ErrorIs(t, err, apperrors.ErrInvalidAccessLevel)
}

func TestAccessFor(t *testing.T) {
	assert.Equal(t, models.AccessEdit, AccessFor(true))
	assert.Equal(t, models.AccessRead, AccessFor(false))
}

func TestIsSearchable(t *testing.T) {
	tests := []struct {
		term     string
		expected bool
	}{
		{"", false},
		{"a", false},
		{" a ", false},
		{"al", true},
		{"  al  ", true},
		{"Jo", true},
		{"é", false},
		{"éa", true},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsSearchable(tt.term))
		})
	}
}
