//go:build api

package api

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"opportunity-team/internal/client"
	apperrors "opportunity-team/internal/errors"
	"opportunity-team/internal/models"
	"opportunity-team/internal/panel"
	"opportunity-team/test/api/testserver"
	"opportunity-team/test/fixtures"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPanelAgainstServer drives the roster panel through the HTTP client
// against the fully wired server.
func TestPanelAgainstServer(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	helper := testserver.NewRosterHelper(testServer)

	srv := httptest.NewServer(testServer.Router)
	defer srv.Close()

	s := helper.SeedScenario(t)
	alice := helper.SeedUser(t, fixtures.NewUser().WithName("Alice Anders").BuildPtr())
	albert := helper.SeedUser(t, fixtures.NewUser().WithName("Albert Ames").BuildPtr())
	alfred := helper.SeedUser(t, fixtures.NewUser().WithName("Alfred Alvarez").BuildPtr())

	var toasts []panel.Toast
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := client.New(client.Config{
		BaseURL: srv.URL + "/api/v1",
		Token:   s.OwnerToken,
		Logger:  logger,
	})
	p := panel.New(s.Opportunity.ID.Hex(), c,
		panel.NotifierFunc(func(t panel.Toast) { toasts = append(toasts, t) }),
		panel.WithLogger(logger),
	)

	ctx := context.Background()
	require.NoError(t, p.Load(ctx))
	assert.Empty(t, p.TeamMembers())
	assert.Len(t, p.Roles(), 3)

	candidates, err := p.OnSearchInput(ctx, "al")
	require.NoError(t, err)
	require.Len(t, candidates, 3)
	assert.True(t, p.State().DropdownOpen)

	p.OnAccessToggle(alice.ID.Hex(), false)
	require.NoError(t, p.OnRoleSelected(ctx, alice.ID.Hex(), "Sales Rep"))
	require.NoError(t, p.OnRoleSelected(ctx, albert.ID.Hex(), "Sponsor"))

	members := p.TeamMembers()
	require.Len(t, members, 2)
	assert.Equal(t, "Alice Anders", members[0].User.Name)
	assert.Equal(t, models.AccessRead, members[0].AccessLevel)
	assert.Equal(t, models.AccessEdit, members[1].AccessLevel)
	assert.False(t, p.State().DropdownOpen)

	// The cap is enforced from the cached roster without a write.
	err = p.OnRoleSelected(ctx, alfred.ID.Hex(), "Technical Sales")
	require.ErrorIs(t, err, apperrors.ErrMaxTeamMembers)
	assert.Len(t, p.TeamMembers(), 2)

	require.NoError(t, p.OnRemoveRequested(ctx, members[0].ID))
	assert.Len(t, p.TeamMembers(), 1)

	// A member added elsewhere fills the team; the server's rejection is shown.
	helper.SeedMember(t, fixtures.NewTeamMember().
		WithOpportunityID(s.Opportunity.ID).
		WithUserID(alice.ID).
		WithRole("Technical Sales").
		BuildPtr())
	err = p.OnRoleSelected(ctx, alfred.ID.Hex(), "Technical Sales")
	require.Error(t, err)

	var remote *apperrors.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, 409, remote.StatusCode)

	require.NotEmpty(t, toasts)
	last := toasts[len(toasts)-1]
	assert.Equal(t, panel.VariantError, last.Variant)
	assert.Equal(t, remote.Message, last.Message)
}
