// Package authz decides what a user may do with an opportunity's team.
package authz

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -destination=mocks/mock_authorizer.go -package=mocks opportunity-team/internal/authz Authorizer

// Action constants define the authorization actions.
const (
	ActionTeamView = "team:view"
	ActionTeamEdit = "team:edit"
)

// Relations a user can have with an opportunity.
const (
	RelationNone       = ""
	RelationOwner      = "owner"
	RelationEditor     = "editor"
	RelationTeamMember = "member"
)

// Authorizer defines the interface for authorization checks.
type Authorizer interface {
	// CanPerform checks if a user can perform an action on an opportunity's team.
	CanPerform(ctx context.Context, userID, opportunityID primitive.ObjectID, action string) (bool, error)

	// Relation returns how the user relates to the opportunity, or RelationNone.
	Relation(ctx context.Context, userID, opportunityID primitive.ObjectID) (string, error)
}
