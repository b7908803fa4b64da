package repository

import (
	"context"
	"errors"
	"time"

	"opportunity-team/internal/database"
	apperrors "opportunity-team/internal/errors"
	"opportunity-team/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// OpportunityRepository defines the interface for opportunity data operations.
type OpportunityRepository interface {
	Create(ctx context.Context, opp *models.Opportunity) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Opportunity, error)
}

type opportunityRepository struct {
	collection *mongo.Collection
}

// NewOpportunityRepository creates a new OpportunityRepository.
func NewOpportunityRepository(db *mongo.Database) OpportunityRepository {
	return &opportunityRepository{
		collection: db.Collection(database.OpportunitiesCollection),
	}
}

// Create inserts a new opportunity.
func (r *opportunityRepository) Create(ctx context.Context, opp *models.Opportunity) error {
	now := time.Now()
	opp.ID = primitive.NewObjectID()
	opp.CreatedAt = now
	opp.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, opp)
	return err
}

// FindByID returns an opportunity by ID.
func (r *opportunityRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Opportunity, error) {
	var opp models.Opportunity

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&opp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrOpportunityNotFound
		}
		return nil, err
	}

	return &opp, nil
}
