package repository

import (
	"context"
	"time"

	"opportunity-team/internal/database"
	"opportunity-team/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ShareRepository defines the interface for team-derived opportunity shares.
type ShareRepository interface {
	Grant(ctx context.Context, opportunityID, userID primitive.ObjectID, accessLevel string) error
	Revoke(ctx context.Context, opportunityID, userID primitive.ObjectID) error
	FindByOpportunityID(ctx context.Context, opportunityID primitive.ObjectID) ([]models.OpportunityShare, error)
}

type shareRepository struct {
	collection *mongo.Collection
}

// NewShareRepository creates a new ShareRepository.
func NewShareRepository(db *mongo.Database) ShareRepository {
	return &shareRepository{
		collection: db.Collection(database.SharesCollection),
	}
}

func shareFilter(opportunityID, userID primitive.ObjectID) bson.M {
	return bson.M{
		"opportunityId": opportunityID,
		"userId":        userID,
		"rowCause":      models.ShareRowCauseTeam,
	}
}

// Grant creates or updates the team share of a user. Applying the same grant
// twice leaves a single share.
func (r *shareRepository) Grant(ctx context.Context, opportunityID, userID primitive.ObjectID, accessLevel string) error {
	update := bson.M{
		"$set": bson.M{
			"accessLevel": accessLevel,
			"updatedAt":   time.Now(),
		},
	}

	_, err := r.collection.UpdateOne(ctx, shareFilter(opportunityID, userID), update, options.Update().SetUpsert(true))
	return err
}

// Revoke deletes the team share of a user. Revoking a missing share is not an error.
func (r *shareRepository) Revoke(ctx context.Context, opportunityID, userID primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, shareFilter(opportunityID, userID))
	return err
}

// FindByOpportunityID returns all team shares of an opportunity.
func (r *shareRepository) FindByOpportunityID(ctx context.Context, opportunityID primitive.ObjectID) ([]models.OpportunityShare, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"opportunityId": opportunityID, "rowCause": models.ShareRowCauseTeam})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var shares []models.OpportunityShare
	if err := cursor.All(ctx, &shares); err != nil {
		return nil, err
	}

	if shares == nil {
		shares = []models.OpportunityShare{}
	}

	return shares, nil
}
