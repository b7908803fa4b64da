// Package models defines data structures for the application.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a user in the directory.
type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Email     string             `json:"email" bson:"email" example:"user@example.com"`
	Name      string             `json:"name" bson:"name" example:"John Doe"`
	Title     string             `json:"title" bson:"title" example:"Account Executive"`
	PhotoKey  string             `json:"-" bson:"photoKey,omitempty"` // object key in the photo bucket
	IsActive  bool               `json:"isActive" bson:"isActive" example:"true"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// UserCandidate is a search hit offered for team membership.
type UserCandidate struct {
	ID            string `json:"Id" example:"507f1f77bcf86cd799439011"`
	Name          string `json:"Name" example:"John Doe"`
	Email         string `json:"Email" example:"user@example.com"`
	Title         string `json:"Title,omitempty" example:"Account Executive"`
	SmallPhotoURL string `json:"SmallPhotoUrl,omitempty" example:"https://photos.example.com/u/1.png"`
}

// UserSearchResponse is the response for a user search.
type UserSearchResponse struct {
	Items []UserCandidate `json:"items"`
}
