package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// TeamRole is an entry of the team role catalog.
type TeamRole struct {
	ID        primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Label     string             `json:"label" bson:"label" example:"Sales Rep"`
	Value     string             `json:"value" bson:"value" example:"Sales Rep"`
	SortOrder int                `json:"-" bson:"sortOrder"`
	Active    bool               `json:"-" bson:"active"`
}

// Role is the wire shape of a catalog entry.
type Role struct {
	Label string `json:"label" example:"Sales Rep"`
	Value string `json:"value" example:"Sales Rep"`
}

// RoleListResponse is the response for listing team roles.
type RoleListResponse struct {
	Items []Role `json:"items"`
}
