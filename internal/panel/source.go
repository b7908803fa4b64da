package panel

import (
	"context"
	"slices"
	"sync"

	"opportunity-team/internal/models"
)

type rosterEntry struct {
	members []models.TeamMemberRecord
	loaded  bool
	stale   bool
	// issued and applied order concurrent fetches so an older response
	// never replaces a newer one.
	issued  uint64
	applied uint64
}

// Source caches roster snapshots per opportunity and the role catalog.
// A failed fetch never clears a snapshot, and no fetch is retried.
type Source struct {
	backend Backend

	mu          sync.Mutex
	rosters     map[string]*rosterEntry
	roles       []models.Role
	rolesLoaded bool
}

// NewSource creates a Source backed by backend.
func NewSource(backend Backend) *Source {
	return &Source{
		backend: backend,
		rosters: make(map[string]*rosterEntry),
	}
}

func (s *Source) entry(opportunityID string) *rosterEntry {
	e, ok := s.rosters[opportunityID]
	if !ok {
		e = &rosterEntry{}
		s.rosters[opportunityID] = e
	}
	return e
}

// Get returns the roster of an opportunity, fetching it when it was never
// loaded or has been invalidated. On a failed fetch the last-good snapshot
// is returned together with the error.
func (s *Source) Get(ctx context.Context, opportunityID string) ([]models.TeamMemberRecord, error) {
	s.mu.Lock()
	e := s.entry(opportunityID)
	if e.loaded && !e.stale {
		members := cloneMembers(e.members)
		s.mu.Unlock()
		return members, nil
	}
	s.mu.Unlock()

	return s.Refresh(ctx, opportunityID)
}

// Invalidate marks the roster stale. The snapshot stays visible until the
// next successful fetch.
func (s *Source) Invalidate(opportunityID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entry(opportunityID).stale = true
}

// Refresh re-fetches the roster and replaces the snapshot on success.
func (s *Source) Refresh(ctx context.Context, opportunityID string) ([]models.TeamMemberRecord, error) {
	s.mu.Lock()
	e := s.entry(opportunityID)
	e.issued++
	seq := e.issued
	s.mu.Unlock()

	members, err := s.backend.FetchTeamMembers(ctx, opportunityID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		return cloneMembers(e.members), err
	}
	if members == nil {
		members = []models.TeamMemberRecord{}
	}
	if seq > e.applied {
		e.members = members
		e.loaded = true
		e.stale = false
		e.applied = seq
	}
	return cloneMembers(e.members), nil
}

func cloneMembers(members []models.TeamMemberRecord) []models.TeamMemberRecord {
	if members == nil {
		return []models.TeamMemberRecord{}
	}
	return slices.Clone(members)
}

// Snapshot returns the cached roster without fetching. ok is false when the
// roster was never loaded.
func (s *Source) Snapshot(opportunityID string) (members []models.TeamMemberRecord, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, found := s.rosters[opportunityID]
	if !found || !e.loaded {
		return []models.TeamMemberRecord{}, false
	}
	return cloneMembers(e.members), true
}

// Roles returns the role catalog, fetching it on first use only.
func (s *Source) Roles(ctx context.Context) ([]models.Role, error) {
	s.mu.Lock()
	if s.rolesLoaded {
		roles := slices.Clone(s.roles)
		s.mu.Unlock()
		return roles, nil
	}
	s.mu.Unlock()

	roles, err := s.backend.FetchRoles(ctx)
	if err != nil {
		return []models.Role{}, err
	}
	if roles == nil {
		roles = []models.Role{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.roles = roles
	s.rolesLoaded = true
	return slices.Clone(roles), nil
}

// CachedRoles returns the role catalog without fetching.
func (s *Source) CachedRoles() []models.Role {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.rolesLoaded {
		return []models.Role{}
	}
	return slices.Clone(s.roles)
}
