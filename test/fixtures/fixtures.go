// Package fixtures provides test data builders for unit and integration tests.
package fixtures

import (
	"fmt"
	"time"

	"opportunity-team/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ===== User Fixtures =====

// UserBuilder provides fluent API for building test users.
type UserBuilder struct {
	user models.User
}

// NewUser creates a new UserBuilder with sensible defaults.
func NewUser() *UserBuilder {
	return &UserBuilder{
		user: models.User{
			Name:     "Test User",
			Email:    fmt.Sprintf("test-%s@example.com", primitive.NewObjectID().Hex()[16:]),
			Title:    "Account Executive",
			IsActive: true,
		},
	}
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.user.Name = name
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

func (b *UserBuilder) WithPhoto(key string) *UserBuilder {
	b.user.PhotoKey = key
	return b
}

func (b *UserBuilder) Inactive() *UserBuilder {
	b.user.IsActive = false
	return b
}

func (b *UserBuilder) BuildPtr() *models.User {
	u := b.user
	return &u
}

// ===== Opportunity Fixtures =====

// OpportunityBuilder provides fluent API for building test opportunities.
type OpportunityBuilder struct {
	opp models.Opportunity
}

// NewOpportunity creates a new OpportunityBuilder with sensible defaults.
func NewOpportunity() *OpportunityBuilder {
	return &OpportunityBuilder{
		opp: models.Opportunity{
			Name:  "Test Opportunity",
			Stage: "Prospecting",
		},
	}
}

func (b *OpportunityBuilder) WithName(name string) *OpportunityBuilder {
	b.opp.Name = name
	return b
}

func (b *OpportunityBuilder) WithOwnerID(ownerID primitive.ObjectID) *OpportunityBuilder {
	b.opp.OwnerID = ownerID
	return b
}

func (b *OpportunityBuilder) BuildPtr() *models.Opportunity {
	o := b.opp
	return &o
}

// ===== Team Member Fixtures =====

// TeamMemberBuilder provides fluent API for building test team members.
type TeamMemberBuilder struct {
	member models.TeamMember
}

// NewTeamMember creates a new TeamMemberBuilder with sensible defaults.
func NewTeamMember() *TeamMemberBuilder {
	return &TeamMemberBuilder{
		member: models.TeamMember{
			OpportunityID:  primitive.NewObjectID(),
			UserID:         primitive.NewObjectID(),
			TeamMemberRole: "Sales Rep",
			AccessLevel:    models.AccessEdit,
			CreatedAt:      time.Now(),
		},
	}
}

func (b *TeamMemberBuilder) WithOpportunityID(opportunityID primitive.ObjectID) *TeamMemberBuilder {
	b.member.OpportunityID = opportunityID
	return b
}

func (b *TeamMemberBuilder) WithUserID(userID primitive.ObjectID) *TeamMemberBuilder {
	b.member.UserID = userID
	return b
}

func (b *TeamMemberBuilder) WithRole(role string) *TeamMemberBuilder {
	b.member.TeamMemberRole = role
	return b
}

func (b *TeamMemberBuilder) ReadOnly() *TeamMemberBuilder {
	b.member.AccessLevel = models.AccessRead
	return b
}

func (b *TeamMemberBuilder) BuildPtr() *models.TeamMember {
	m := b.member
	return &m
}

// ===== Team Role Fixtures =====

// DefaultRoles returns an active role catalog in display order.
func DefaultRoles(labels ...string) []models.TeamRole {
	if len(labels) == 0 {
		labels = []string{"Sales Rep", "Sponsor", "Technical Sales"}
	}

	roles := make([]models.TeamRole, 0, len(labels))
	for i, label := range labels {
		roles = append(roles, models.TeamRole{
			Label:     label,
			Value:     label,
			SortOrder: i,
			Active:    true,
		})
	}
	return roles
}
