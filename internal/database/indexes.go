package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Index names referenced when translating duplicate key errors.
const (
	TeamMemberUserIndex = "opportunity_user_unique"
	TeamMemberRoleIndex = "opportunity_role_unique"
)

// IndexSpec describes one index of a collection.
type IndexSpec struct {
	Collection string
	Model      mongo.IndexModel
}

// Indexes returns the indexes the roster service relies on. The two unique
// team member indexes back the one-membership-per-user and one-member-per-role
// rules against concurrent writers.
func Indexes() []IndexSpec {
	return []IndexSpec{
		{UsersCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		{UsersCollection, mongo.IndexModel{
			Keys: bson.D{{Key: "isActive", Value: 1}, {Key: "name", Value: 1}},
		}},
		{OpportunitiesCollection, mongo.IndexModel{
			Keys: bson.D{{Key: "ownerId", Value: 1}},
		}},
		{TeamMembersCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "opportunityId", Value: 1}, {Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(TeamMemberUserIndex),
		}},
		{TeamMembersCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "opportunityId", Value: 1}, {Key: "teamMemberRole", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(TeamMemberRoleIndex),
		}},
		{TeamRolesCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "value", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		{SharesCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "opportunityId", Value: 1}, {Key: "userId", Value: 1}, {Key: "rowCause", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
	}
}

// EnsureIndexes creates all indexes returned by Indexes.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, spec := range Indexes() {
		if _, err := db.Collection(spec.Collection).Indexes().CreateOne(ctx, spec.Model); err != nil {
			return fmt.Errorf("create index on %s: %w", spec.Collection, err)
		}
	}
	return nil
}
