// Package service contains business logic for the application.
package service

import (
	"context"

	"opportunity-team/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamMemberServicer defines the interface for opportunity team operations.
type TeamMemberServicer interface {
	ListMembers(ctx context.Context, opportunityID primitive.ObjectID) (*models.TeamMemberListResponse, error)
	AddMember(ctx context.Context, opportunityID, actorID primitive.ObjectID, req *models.AddTeamMemberRequest) (*models.TeamMemberRecord, error)
	RemoveMember(ctx context.Context, opportunityID, memberID primitive.ObjectID) error
}

// UserServicer defines the interface for user directory operations.
type UserServicer interface {
	SearchUsers(ctx context.Context, term string) (*models.UserSearchResponse, error)
}

// RoleServicer defines the interface for the team role catalog.
type RoleServicer interface {
	ListRoles(ctx context.Context) (*models.RoleListResponse, error)
}

// Ensure concrete types implement interfaces
var (
	_ TeamMemberServicer = (*TeamMemberService)(nil)
	_ UserServicer       = (*UserService)(nil)
	_ RoleServicer       = (*RoleService)(nil)
)
