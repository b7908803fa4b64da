package panel

import (
	"context"
	"errors"
	"log/slog"
	"maps"
	"slices"
	"sync"

	apperrors "opportunity-team/internal/errors"
	"opportunity-team/internal/models"
	"opportunity-team/internal/roster"
)

// Toast messages.
const (
	MessageMemberAdded   = "Team member added"
	MessageMemberRemoved = "Team member removed"
	MessageAddFailed     = "Error adding team member"
	MessageRemoveFailed  = "Error removing team member"
)

var (
	// ErrSearchSuperseded is returned when a newer search input, or a reset
	// of the dropdown, arrived while the search call was in flight. The
	// response was discarded.
	ErrSearchSuperseded = errors.New("search superseded by a newer input")
	// ErrAddInProgress is returned when a role is selected while another add
	// is still running.
	ErrAddInProgress = errors.New("an add is already in progress")
)

// Phase is the state of the add workflow.
type Phase int

// Add workflow phases.
const (
	PhaseIdle Phase = iota
	PhaseValidating
	PhaseWriting
	PhaseRefreshing
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseValidating:
		return "validating"
	case PhaseWriting:
		return "writing"
	case PhaseRefreshing:
		return "refreshing"
	default:
		return "unknown"
	}
}

// Candidate is a search hit together with its edit checkbox state.
type Candidate struct {
	models.UserCandidate
	HasEditAccess bool
}

// UIState is the local state of the search dropdown.
type UIState struct {
	SearchTerm   string
	DropdownOpen bool
	Candidates   []Candidate
	Phase        Phase
}

// Option configures a Panel.
type Option func(*Panel)

// WithLogger sets the logger remote failures are reported to.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Panel) {
		p.logger = logger
	}
}

// WithDefaultAccess sets the access level assumed for users without an
// explicit toggle. Unknown levels are ignored.
func WithDefaultAccess(level string) Option {
	return func(p *Panel) {
		if level == models.AccessEdit || level == models.AccessRead {
			p.defaultAccess = level
		}
	}
}

// WithSource shares a roster source between panels.
func WithSource(source *Source) Option {
	return func(p *Panel) {
		p.source = source
	}
}

// Panel is the roster panel of one opportunity.
type Panel struct {
	opportunityID string
	backend       Backend
	source        *Source
	notifier      Notifier
	logger        *slog.Logger
	defaultAccess string

	mu           sync.Mutex
	searchTerm   string
	dropdownOpen bool
	candidates   []Candidate
	access       map[string]string
	searchSeq    uint64
	phase        Phase
}

// New creates the panel of an opportunity.
func New(opportunityID string, backend Backend, notifier Notifier, opts ...Option) *Panel {
	p := &Panel{
		opportunityID: opportunityID,
		backend:       backend,
		notifier:      notifier,
		logger:        slog.Default(),
		defaultAccess: roster.DefaultAccessLevel,
		candidates:    []Candidate{},
		access:        make(map[string]string),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.source == nil {
		p.source = NewSource(backend)
	}
	return p
}

// Load fetches the roster and the role catalog. Both fetches are attempted
// and the first error is returned.
func (p *Panel) Load(ctx context.Context) error {
	_, membersErr := p.source.Get(ctx, p.opportunityID)
	if membersErr != nil {
		p.logger.Error("fetch team members failed",
			slog.String("opportunity_id", p.opportunityID),
			slog.Any("err", membersErr),
		)
	}

	_, rolesErr := p.source.Roles(ctx)
	if rolesErr != nil {
		p.logger.Error("fetch team roles failed", slog.Any("err", rolesErr))
	}

	return errors.Join(membersErr, rolesErr)
}

// Source returns the roster source of the panel.
func (p *Panel) Source() *Source {
	return p.source
}

// TeamMembers returns the cached roster, or an empty slice before the first load.
func (p *Panel) TeamMembers() []models.TeamMemberRecord {
	members, _ := p.source.Snapshot(p.opportunityID)
	return members
}

// Roles returns the cached role catalog, or an empty slice before it is loaded.
func (p *Panel) Roles() []models.Role {
	return p.source.CachedRoles()
}

// State returns a copy of the dropdown state.
func (p *Panel) State() UIState {
	p.mu.Lock()
	defer p.mu.Unlock()

	return UIState{
		SearchTerm:   p.searchTerm,
		DropdownOpen: p.dropdownOpen,
		Candidates:   slices.Clone(p.candidates),
		Phase:        p.phase,
	}
}

// AccessSelections returns a copy of the per-user access levels.
func (p *Panel) AccessSelections() map[string]string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return maps.Clone(p.access)
}

// OnSearchInput handles a change of the search box. Terms shorter than two
// characters after trimming close the dropdown without a remote call. A
// failed search clears the candidates but leaves the dropdown open.
func (p *Panel) OnSearchInput(ctx context.Context, text string) ([]Candidate, error) {
	p.mu.Lock()
	p.searchTerm = text
	p.searchSeq++
	seq := p.searchSeq

	if !roster.IsSearchable(text) {
		p.dropdownOpen = false
		p.candidates = []Candidate{}
		p.mu.Unlock()
		return []Candidate{}, nil
	}
	p.dropdownOpen = true
	p.mu.Unlock()

	users, err := p.backend.SearchUsers(ctx, text)

	p.mu.Lock()
	defer p.mu.Unlock()

	if seq != p.searchSeq {
		return nil, ErrSearchSuperseded
	}

	if err != nil {
		p.candidates = []Candidate{}
		p.logger.Error("search users failed",
			slog.String("term", text),
			slog.Any("err", err),
		)
		return nil, err
	}

	candidates := make([]Candidate, 0, len(users))
	for _, u := range users {
		level, ok := p.access[u.ID]
		if !ok {
			level = p.defaultAccess
			p.access[u.ID] = level
		}
		candidates = append(candidates, Candidate{UserCandidate: u, HasEditAccess: level == models.AccessEdit})
	}
	p.candidates = candidates

	return slices.Clone(candidates), nil
}

// OnAccessToggle records the edit checkbox state of a user.
func (p *Panel) OnAccessToggle(userID string, checked bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.access[userID] = roster.AccessFor(checked)

	candidates := make([]Candidate, len(p.candidates))
	for i, c := range p.candidates {
		if c.ID == userID {
			c.HasEditAccess = checked
		}
		candidates[i] = c
	}
	p.candidates = candidates
}

// OnRoleSelected adds a user to the team with the chosen role. The roster
// cap and role uniqueness are checked against the cached roster first, and
// a violation is reported without a remote call.
func (p *Panel) OnRoleSelected(ctx context.Context, userID, role string) error {
	p.mu.Lock()
	if p.phase != PhaseIdle {
		p.mu.Unlock()
		return ErrAddInProgress
	}
	p.phase = PhaseValidating
	level, ok := p.access[userID]
	if !ok {
		level = p.defaultAccess
	}
	p.mu.Unlock()

	defer p.setPhase(PhaseIdle)

	members, err := p.source.Get(ctx, p.opportunityID)
	if err != nil {
		p.logger.Warn("validating against cached roster",
			slog.String("opportunity_id", p.opportunityID),
			slog.Any("err", err),
		)
	}

	if err := roster.ValidateAddition(members, role); err != nil {
		p.notifier.Notify(errorToast(err.Error()))
		return err
	}

	p.setPhase(PhaseWriting)
	err = p.backend.AddTeamMember(ctx, AddRequest{
		OpportunityID: p.opportunityID,
		UserID:        userID,
		TeamRole:      role,
		AccessLevel:   level,
	})
	if err != nil {
		p.logger.Error("add team member failed",
			slog.String("opportunity_id", p.opportunityID),
			slog.String("user_id", userID),
			slog.String("role", role),
			slog.Any("err", err),
		)
		p.notifier.Notify(errorToast(messageOr(err, MessageAddFailed)))
		return err
	}

	p.setPhase(PhaseRefreshing)
	p.refresh(ctx)
	p.notifier.Notify(successToast(MessageMemberAdded))

	p.mu.Lock()
	p.resetSearch()
	p.access = make(map[string]string)
	p.mu.Unlock()

	return nil
}

// OnRemoveRequested removes a member from the team.
func (p *Panel) OnRemoveRequested(ctx context.Context, memberID string) error {
	if err := p.backend.RemoveTeamMember(ctx, p.opportunityID, memberID); err != nil {
		p.logger.Error("remove team member failed",
			slog.String("opportunity_id", p.opportunityID),
			slog.String("member_id", memberID),
			slog.Any("err", err),
		)
		p.notifier.Notify(errorToast(messageOr(err, MessageRemoveFailed)))
		return err
	}

	p.refresh(ctx)
	p.notifier.Notify(successToast(MessageMemberRemoved))
	return nil
}

// OnKeyDown closes the dropdown on Escape.
func (p *Panel) OnKeyDown(key string) {
	if key != "Escape" {
		return
	}
	p.closeDropdown()
}

// OnPointerDown closes the dropdown when the pointer lands outside the
// search box and its dropdown.
func (p *Panel) OnPointerDown(insideSearchRegion bool) {
	if insideSearchRegion {
		return
	}
	p.closeDropdown()
}

func (p *Panel) closeDropdown() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.resetSearch()
}

// resetSearch clears the dropdown and discards any search in flight.
// Callers hold p.mu.
func (p *Panel) resetSearch() {
	p.searchTerm = ""
	p.dropdownOpen = false
	p.candidates = []Candidate{}
	p.searchSeq++
}

// refresh re-fetches the roster. A failure keeps the previous snapshot.
func (p *Panel) refresh(ctx context.Context) {
	p.source.Invalidate(p.opportunityID)
	if _, err := p.source.Refresh(ctx, p.opportunityID); err != nil {
		p.logger.Error("refresh team members failed",
			slog.String("opportunity_id", p.opportunityID),
			slog.Any("err", err),
		)
	}
}

func (p *Panel) setPhase(phase Phase) {
	p.mu.Lock()
	p.phase = phase
	p.mu.Unlock()
}

func messageOr(err error, fallback string) string {
	if msg := apperrors.ServerMessage(err); msg != "" {
		return msg
	}
	return fallback
}
