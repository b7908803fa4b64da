// Package panel implements the opportunity team roster panel: a cached
// roster source, the user search dropdown, per-candidate access toggles and
// the add and remove workflows. A host UI calls the On* methods per event
// and renders State, TeamMembers, Roles and Pills.
package panel

import (
	"context"

	"opportunity-team/internal/models"
)

//go:generate mockgen -destination=mocks/mock_backend.go -package=mocks opportunity-team/internal/panel Backend

// AddRequest is the payload of a remote add call.
type AddRequest struct {
	OpportunityID string
	UserID        string
	TeamRole      string
	AccessLevel   string
}

// Backend is the remote procedure surface the panel consumes.
type Backend interface {
	FetchTeamMembers(ctx context.Context, opportunityID string) ([]models.TeamMemberRecord, error)
	FetchRoles(ctx context.Context) ([]models.Role, error)
	SearchUsers(ctx context.Context, term string) ([]models.UserCandidate, error)
	AddTeamMember(ctx context.Context, req AddRequest) error
	RemoveTeamMember(ctx context.Context, opportunityID, memberID string) error
}
