package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamMember is a user's membership in an opportunity team.
type TeamMember struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	OpportunityID  primitive.ObjectID `json:"opportunityId" bson:"opportunityId" example:"507f1f77bcf86cd799439012"`
	UserID         primitive.ObjectID `json:"userId" bson:"userId" example:"507f1f77bcf86cd799439013"`
	TeamMemberRole string             `json:"teamMemberRole" bson:"teamMemberRole" example:"Sales Rep"`
	AccessLevel    string             `json:"accessLevel" bson:"accessLevel" example:"Edit"`
	CreatedBy      primitive.ObjectID `json:"createdBy" bson:"createdBy,omitempty" example:"507f1f77bcf86cd799439014"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
}

// TeamMemberRecord is the wire shape of a roster entry.
type TeamMemberRecord struct {
	ID             string  `json:"Id" example:"507f1f77bcf86cd799439011"`
	User           UserRef `json:"User"`
	TeamMemberRole string  `json:"TeamMemberRole" example:"Sales Rep"`
	AccessLevel    string  `json:"AccessLevel" example:"Edit"`
}

// UserRef is the user embedded in a roster entry.
type UserRef struct {
	ID            string `json:"Id" example:"507f1f77bcf86cd799439013"`
	Name          string `json:"Name" example:"John Doe"`
	SmallPhotoURL string `json:"SmallPhotoUrl,omitempty" example:"https://photos.example.com/u/1.png"`
}

// AddTeamMemberRequest is the payload for adding a member to an opportunity team.
type AddTeamMemberRequest struct {
	UserID      string `json:"userId" binding:"required,objectid" example:"507f1f77bcf86cd799439013"`
	TeamRole    string `json:"teamRole" binding:"required,max=80" example:"Sales Rep"`
	AccessLevel string `json:"accessLevel" binding:"omitempty,accesslevel" example:"Edit"`
}

// TeamMemberListResponse is the response for listing team members.
type TeamMemberListResponse struct {
	Items []TeamMemberRecord `json:"items"`
}
