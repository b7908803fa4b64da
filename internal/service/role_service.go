package service

import (
	"context"
	"time"

	"opportunity-team/internal/cache"
	"opportunity-team/internal/models"
	"opportunity-team/internal/repository"
)

const rolesCacheTTL = time.Hour

// RoleService serves the team role catalog.
type RoleService struct {
	repo  repository.TeamRoleRepository
	cache cache.Cache
}

// NewRoleService creates a new RoleService.
func NewRoleService(repo repository.TeamRoleRepository, cache cache.Cache) *RoleService {
	return &RoleService{
		repo:  repo,
		cache: cache,
	}
}

// ListRoles returns the active roles in display order (with caching).
func (s *RoleService) ListRoles(ctx context.Context) (*models.RoleListResponse, error) {
	var cached models.RoleListResponse
	found, err := s.cache.Get(ctx, cache.TeamRolesCacheKey, &cached)
	if err == nil && found {
		return &cached, nil
	}

	roles, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]models.Role, 0, len(roles))
	for _, r := range roles {
		items = append(items, models.Role{Label: r.Label, Value: r.Value})
	}

	resp := &models.RoleListResponse{Items: items}
	_ = s.cache.Set(ctx, cache.TeamRolesCacheKey, resp, rolesCacheTTL)

	return resp, nil
}
