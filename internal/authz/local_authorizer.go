package authz

import (
	"context"
	"errors"

	apperrors "opportunity-team/internal/errors"
	"opportunity-team/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OpportunityFinder looks up the parent record of a team.
type OpportunityFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Opportunity, error)
}

// TeamMemberFinder looks up a user's membership in an opportunity team.
type TeamMemberFinder interface {
	FindByOpportunityAndUser(ctx context.Context, opportunityID, userID primitive.ObjectID) (*models.TeamMember, error)
}

// LocalAuthorizer implements Authorizer using database lookups.
type LocalAuthorizer struct {
	opportunities OpportunityFinder
	members       TeamMemberFinder
}

// NewLocalAuthorizer creates a new LocalAuthorizer.
func NewLocalAuthorizer(opportunities OpportunityFinder, members TeamMemberFinder) *LocalAuthorizer {
	return &LocalAuthorizer{
		opportunities: opportunities,
		members:       members,
	}
}

// relationPermissions maps actions to the relations that can perform them.
var relationPermissions = map[string][]string{
	ActionTeamView: {RelationOwner, RelationEditor, RelationTeamMember},
	ActionTeamEdit: {RelationOwner, RelationEditor},
}

// CanPerform checks if a user can perform an action on an opportunity's team.
// A missing opportunity is reported as ErrOpportunityNotFound.
func (a *LocalAuthorizer) CanPerform(ctx context.Context, userID, opportunityID primitive.ObjectID, action string) (bool, error) {
	allowed, exists := relationPermissions[action]
	if !exists {
		return false, nil // Unknown action
	}

	relation, err := a.Relation(ctx, userID, opportunityID)
	if err != nil {
		return false, err
	}

	for _, r := range allowed {
		if relation == r {
			return true, nil
		}
	}

	return false, nil
}

// Relation returns how the user relates to the opportunity.
func (a *LocalAuthorizer) Relation(ctx context.Context, userID, opportunityID primitive.ObjectID) (string, error) {
	opp, err := a.opportunities.FindByID(ctx, opportunityID)
	if err != nil {
		return RelationNone, err
	}

	if opp.OwnerID == userID {
		return RelationOwner, nil
	}

	member, err := a.members.FindByOpportunityAndUser(ctx, opportunityID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamMemberNotFound) {
			return RelationNone, nil // Expected: not a member
		}
		return RelationNone, err
	}

	if member.AccessLevel == models.AccessEdit {
		return RelationEditor, nil
	}
	return RelationTeamMember, nil
}
