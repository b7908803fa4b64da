package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"opportunity-team/internal/cache"
	apperrors "opportunity-team/internal/errors"
	"opportunity-team/internal/models"
	"opportunity-team/internal/queue"
	"opportunity-team/internal/repository"
	"opportunity-team/internal/roster"
	"opportunity-team/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const teamMembersCacheTTL = 5 * time.Minute

// TeamMemberService handles business logic for opportunity team operations.
type TeamMemberService struct {
	memberRepo  repository.TeamMemberRepository
	userRepo    repository.UserRepository
	oppRepo     repository.OpportunityRepository
	roleRepo    repository.TeamRoleRepository
	cache       cache.Cache
	storage     storage.Storage
	shares      queue.Queue
	photoExpiry time.Duration
	listTTL     time.Duration
}

// TeamMemberDeps groups the collaborators of a TeamMemberService.
type TeamMemberDeps struct {
	Members       repository.TeamMemberRepository
	Users         repository.UserRepository
	Opportunities repository.OpportunityRepository
	Roles         repository.TeamRoleRepository
	Cache         cache.Cache
	Storage       storage.Storage
	Shares        queue.Queue
	PhotoExpiry   time.Duration
}

// NewTeamMemberService creates a new TeamMemberService.
func NewTeamMemberService(deps TeamMemberDeps) *TeamMemberService {
	return &TeamMemberService{
		memberRepo:  deps.Members,
		userRepo:    deps.Users,
		oppRepo:     deps.Opportunities,
		roleRepo:    deps.Roles,
		cache:       deps.Cache,
		storage:     deps.Storage,
		shares:      deps.Shares,
		photoExpiry: deps.PhotoExpiry,
		listTTL:     rosterCacheTTL(deps.PhotoExpiry),
	}
}

// rosterCacheTTL bounds how long a roster stays cached so the presigned
// photo URLs inside it are still valid when served from cache.
func rosterCacheTTL(photoExpiry time.Duration) time.Duration {
	if photoExpiry <= 0 {
		return teamMembersCacheTTL
	}
	return min(teamMembersCacheTTL, photoExpiry/2)
}

// ListMembers returns the roster of an opportunity with user details expanded.
func (s *TeamMemberService) ListMembers(ctx context.Context, opportunityID primitive.ObjectID) (*models.TeamMemberListResponse, error) {
	cacheKey := cache.TeamMembersCacheKey(opportunityID.Hex())

	var cached models.TeamMemberListResponse
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err == nil && found {
		return &cached, nil
	}

	members, err := s.memberRepo.FindByOpportunityID(ctx, opportunityID)
	if err != nil {
		return nil, err
	}

	userIDs := make([]primitive.ObjectID, 0, len(members))
	for _, m := range members {
		userIDs = append(userIDs, m.UserID)
	}

	users, err := s.userRepo.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	items := make([]models.TeamMemberRecord, 0, len(members))
	for _, m := range members {
		items = append(items, s.toRecord(ctx, m, byID[m.UserID]))
	}

	resp := &models.TeamMemberListResponse{Items: items}

	// Store in cache (ignore errors - cache is best effort)
	_ = s.cache.Set(ctx, cacheKey, resp, s.listTTL)

	return resp, nil
}

// AddMember adds a user to an opportunity team.
func (s *TeamMemberService) AddMember(ctx context.Context, opportunityID, actorID primitive.ObjectID, req *models.AddTeamMemberRequest) (*models.TeamMemberRecord, error) {
	if _, err := s.oppRepo.FindByID(ctx, opportunityID); err != nil {
		return nil, err
	}

	accessLevel, err := roster.NormalizeAccessLevel(req.AccessLevel)
	if err != nil {
		return nil, err
	}

	if _, err := s.roleRepo.FindByValue(ctx, req.TeamRole); err != nil {
		return nil, err
	}

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrUserInactive
	}

	members, err := s.memberRepo.FindByOpportunityID(ctx, opportunityID)
	if err != nil {
		return nil, err
	}

	held := make([]string, 0, len(members))
	for _, m := range members {
		if m.UserID == userID {
			return nil, apperrors.ErrAlreadyTeamMember
		}
		held = append(held, m.TeamMemberRole)
	}

	if err := roster.CheckCapacity(len(members)); err != nil {
		return nil, err
	}
	if err := roster.CheckRoleAvailable(held, req.TeamRole); err != nil {
		return nil, err
	}

	member := &models.TeamMember{
		OpportunityID:  opportunityID,
		UserID:         userID,
		TeamMemberRole: req.TeamRole,
		AccessLevel:    accessLevel,
		CreatedBy:      actorID,
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	s.invalidate(ctx, opportunityID)
	s.enqueueShare(queue.ShareJob{
		OpportunityID: opportunityID,
		UserID:        userID,
		AccessLevel:   accessLevel,
		Op:            queue.OpGrant,
	})

	record := s.toRecord(ctx, *member, *user)
	return &record, nil
}

// RemoveMember removes a member from an opportunity team.
func (s *TeamMemberService) RemoveMember(ctx context.Context, opportunityID, memberID primitive.ObjectID) error {
	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return err
	}

	if member.OpportunityID != opportunityID {
		return apperrors.ErrTeamMemberNotFound
	}

	if err := s.memberRepo.Delete(ctx, memberID); err != nil {
		return err
	}

	s.invalidate(ctx, opportunityID)
	s.enqueueShare(queue.ShareJob{
		OpportunityID: opportunityID,
		UserID:        member.UserID,
		Op:            queue.OpRevoke,
	})

	return nil
}

func (s *TeamMemberService) toRecord(ctx context.Context, m models.TeamMember, u models.User) models.TeamMemberRecord {
	return models.TeamMemberRecord{
		ID: m.ID.Hex(),
		User: models.UserRef{
			ID:            m.UserID.Hex(),
			Name:          u.Name,
			SmallPhotoURL: photoURL(ctx, s.storage, u.PhotoKey, s.photoExpiry),
		},
		TeamMemberRole: m.TeamMemberRole,
		AccessLevel:    m.AccessLevel,
	}
}

func (s *TeamMemberService) invalidate(ctx context.Context, opportunityID primitive.ObjectID) {
	if err := s.cache.Delete(ctx, cache.TeamMembersCacheKey(opportunityID.Hex())); err != nil {
		log.Printf("Failed to invalidate roster cache for opportunity %s: %v", opportunityID.Hex(), err)
	}
}

// enqueueShare schedules a share change. The roster write has already
// succeeded, so a failure here is logged and not returned.
func (s *TeamMemberService) enqueueShare(job queue.ShareJob) {
	if s.shares == nil {
		return
	}

	if err := s.shares.Enqueue(job); err != nil {
		if errors.Is(err, queue.ErrQueueFull) {
			err = fmt.Errorf("%w: %v", apperrors.ErrShareQueueFull, err)
		}
		log.Printf("Share %s for user %s on opportunity %s not scheduled: %v",
			job.Op, job.UserID.Hex(), job.OpportunityID.Hex(), err)
	}
}
