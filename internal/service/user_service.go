package service

import (
	"context"
	"time"

	apperrors "opportunity-team/internal/errors"
	"opportunity-team/internal/models"
	"opportunity-team/internal/repository"
	"opportunity-team/internal/roster"
	"opportunity-team/internal/storage"
)

// UserService handles user directory lookups.
type UserService struct {
	repo        repository.UserRepository
	storage     storage.Storage
	photoExpiry time.Duration
	limit       int
}

// NewUserService creates a new UserService returning at most limit hits per search.
func NewUserService(repo repository.UserRepository, store storage.Storage, photoExpiry time.Duration, limit int) *UserService {
	return &UserService{
		repo:        repo,
		storage:     store,
		photoExpiry: photoExpiry,
		limit:       limit,
	}
}

// SearchUsers returns active users matching term by name or email.
func (s *UserService) SearchUsers(ctx context.Context, term string) (*models.UserSearchResponse, error) {
	if !roster.IsSearchable(term) {
		return nil, apperrors.ErrSearchTermTooShort
	}

	users, err := s.repo.Search(ctx, term, s.limit)
	if err != nil {
		return nil, err
	}

	items := make([]models.UserCandidate, 0, len(users))
	for _, u := range users {
		items = append(items, models.UserCandidate{
			ID:            u.ID.Hex(),
			Name:          u.Name,
			Email:         u.Email,
			Title:         u.Title,
			SmallPhotoURL: photoURL(ctx, s.storage, u.PhotoKey, s.photoExpiry),
		})
	}

	return &models.UserSearchResponse{Items: items}, nil
}
