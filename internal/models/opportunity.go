package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Opportunity is the parent record a team roster belongs to.
type Opportunity struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439012"`
	Name      string             `json:"name" bson:"name" example:"Acme - 500 Widgets"`
	Stage     string             `json:"stage" bson:"stage" example:"Prospecting"`
	OwnerID   primitive.ObjectID `json:"ownerId" bson:"ownerId" example:"507f1f77bcf86cd799439011"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// Access levels a team member can be granted on the opportunity.
const (
	AccessEdit = "Edit"
	AccessRead = "Read"
)

// OpportunityShare is a sharing grant derived from team membership.
type OpportunityShare struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OpportunityID primitive.ObjectID `json:"opportunityId" bson:"opportunityId"`
	UserID        primitive.ObjectID `json:"userId" bson:"userId"`
	AccessLevel   string             `json:"accessLevel" bson:"accessLevel"`
	RowCause      string             `json:"rowCause" bson:"rowCause"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ShareRowCauseTeam marks shares that exist because of team membership.
const ShareRowCauseTeam = "Team"
