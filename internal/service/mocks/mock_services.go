// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"opportunity-team/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockTeamMemberService is a mock implementation of TeamMemberServicer.
type MockTeamMemberService struct {
	ListMembersFunc  func(ctx context.Context, opportunityID primitive.ObjectID) (*models.TeamMemberListResponse, error)
	AddMemberFunc    func(ctx context.Context, opportunityID, actorID primitive.ObjectID, req *models.AddTeamMemberRequest) (*models.TeamMemberRecord, error)
	RemoveMemberFunc func(ctx context.Context, opportunityID, memberID primitive.ObjectID) error
}

func (m *MockTeamMemberService) ListMembers(ctx context.Context, opportunityID primitive.ObjectID) (*models.TeamMemberListResponse, error) {
	if m.ListMembersFunc != nil {
		return m.ListMembersFunc(ctx, opportunityID)
	}
	return &models.TeamMemberListResponse{Items: []models.TeamMemberRecord{}}, nil
}

func (m *MockTeamMemberService) AddMember(ctx context.Context, opportunityID, actorID primitive.ObjectID, req *models.AddTeamMemberRequest) (*models.TeamMemberRecord, error) {
	if m.AddMemberFunc != nil {
		return m.AddMemberFunc(ctx, opportunityID, actorID, req)
	}
	return nil, nil
}

func (m *MockTeamMemberService) RemoveMember(ctx context.Context, opportunityID, memberID primitive.ObjectID) error {
	if m.RemoveMemberFunc != nil {
		return m.RemoveMemberFunc(ctx, opportunityID, memberID)
	}
	return nil
}

// MockUserService is a mock implementation of UserServicer.
type MockUserService struct {
	SearchUsersFunc func(ctx context.Context, term string) (*models.UserSearchResponse, error)
}

func (m *MockUserService) SearchUsers(ctx context.Context, term string) (*models.UserSearchResponse, error) {
	if m.SearchUsersFunc != nil {
		return m.SearchUsersFunc(ctx, term)
	}
	return &models.UserSearchResponse{Items: []models.UserCandidate{}}, nil
}

// MockRoleService is a mock implementation of RoleServicer.
type MockRoleService struct {
	ListRolesFunc func(ctx context.Context) (*models.RoleListResponse, error)
}

func (m *MockRoleService) ListRoles(ctx context.Context) (*models.RoleListResponse, error) {
	if m.ListRolesFunc != nil {
		return m.ListRolesFunc(ctx)
	}
	return &models.RoleListResponse{Items: []models.Role{}}, nil
}
