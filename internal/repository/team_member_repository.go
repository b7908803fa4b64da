package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"opportunity-team/internal/database"
	apperrors "opportunity-team/internal/errors"
	"opportunity-team/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TeamMemberRepository defines the interface for opportunity team member data operations.
type TeamMemberRepository interface {
	Create(ctx context.Context, member *models.TeamMember) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.TeamMember, error)
	FindByOpportunityID(ctx context.Context, opportunityID primitive.ObjectID) ([]models.TeamMember, error)
	FindByOpportunityAndUser(ctx context.Context, opportunityID, userID primitive.ObjectID) (*models.TeamMember, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// teamMemberRepository implements TeamMemberRepository using MongoDB.
type teamMemberRepository struct {
	collection *mongo.Collection
}

// NewTeamMemberRepository creates a new TeamMemberRepository.
func NewTeamMemberRepository(db *mongo.Database) TeamMemberRepository {
	return &teamMemberRepository{
		collection: db.Collection(database.TeamMembersCollection),
	}
}

// Create inserts a new team member. Unique index violations are reported as
// ErrRoleAlreadyAssigned or ErrAlreadyTeamMember.
func (r *teamMemberRepository) Create(ctx context.Context, member *models.TeamMember) error {
	member.ID = primitive.NewObjectID()
	member.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, member)
	if err != nil {
		member.ID = primitive.NilObjectID
		return translateDuplicate(err)
	}
	return nil
}

func translateDuplicate(err error) error {
	if !mongo.IsDuplicateKeyError(err) {
		return err
	}
	if strings.Contains(err.Error(), database.TeamMemberRoleIndex) {
		return apperrors.ErrRoleAlreadyAssigned
	}
	return apperrors.ErrAlreadyTeamMember
}

// FindByID returns a team member by ID.
func (r *teamMemberRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&member)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTeamMemberNotFound
		}
		return nil, err
	}

	return &member, nil
}

// FindByOpportunityID returns all members of an opportunity team, oldest first.
func (r *teamMemberRepository) FindByOpportunityID(ctx context.Context, opportunityID primitive.ObjectID) ([]models.TeamMember, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"opportunityId": opportunityID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var members []models.TeamMember
	if err := cursor.All(ctx, &members); err != nil {
		return nil, err
	}

	if members == nil {
		members = []models.TeamMember{}
	}

	return members, nil
}

// FindByOpportunityAndUser returns a user's membership in an opportunity team.
func (r *teamMemberRepository) FindByOpportunityAndUser(ctx context.Context, opportunityID, userID primitive.ObjectID) (*models.TeamMember, error) {
	filter := bson.M{
		"opportunityId": opportunityID,
		"userId":        userID,
	}

	var member models.TeamMember
	err := r.collection.FindOne(ctx, filter).Decode(&member)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTeamMemberNotFound
		}
		return nil, err
	}

	return &member, nil
}

// Delete removes a team member.
func (r *teamMemberRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrTeamMemberNotFound
	}

	return nil
}
