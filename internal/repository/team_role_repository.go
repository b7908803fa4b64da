package repository

import (
	"context"
	"errors"

	"opportunity-team/internal/database"
	apperrors "opportunity-team/internal/errors"
	"opportunity-team/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TeamRoleRepository defines the interface for the team role catalog.
type TeamRoleRepository interface {
	FindActive(ctx context.Context) ([]models.TeamRole, error)
	FindByValue(ctx context.Context, value string) (*models.TeamRole, error)
	Upsert(ctx context.Context, role *models.TeamRole) error
}

type teamRoleRepository struct {
	collection *mongo.Collection
}

// NewTeamRoleRepository creates a new TeamRoleRepository.
func NewTeamRoleRepository(db *mongo.Database) TeamRoleRepository {
	return &teamRoleRepository{
		collection: db.Collection(database.TeamRolesCollection),
	}
}

// FindActive returns active roles ordered by sort order.
func (r *teamRoleRepository) FindActive(ctx context.Context) ([]models.TeamRole, error) {
	opts := options.Find().SetSort(bson.D{{Key: "sortOrder", Value: 1}, {Key: "label", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var roles []models.TeamRole
	if err := cursor.All(ctx, &roles); err != nil {
		return nil, err
	}

	if roles == nil {
		roles = []models.TeamRole{}
	}

	return roles, nil
}

// FindByValue returns the active role with the given value, or ErrInvalidRole.
func (r *teamRoleRepository) FindByValue(ctx context.Context, value string) (*models.TeamRole, error) {
	var role models.TeamRole
	err := r.collection.FindOne(ctx, bson.M{"value": value, "active": true}).Decode(&role)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrInvalidRole
		}
		return nil, err
	}

	return &role, nil
}

// Upsert inserts or replaces a role keyed by its value.
func (r *teamRoleRepository) Upsert(ctx context.Context, role *models.TeamRole) error {
	update := bson.M{
		"$set": bson.M{
			"label":     role.Label,
			"sortOrder": role.SortOrder,
			"active":    role.Active,
		},
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"value": role.Value}, update, options.Update().SetUpsert(true))
	return err
}
