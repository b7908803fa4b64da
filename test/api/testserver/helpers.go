//go:build api

package testserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"opportunity-team/internal/models"
	"opportunity-team/test/fixtures"
	"opportunity-team/test/testutil"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RosterHelper seeds directory data and drives the team member API.
type RosterHelper struct {
	server *TestServer
}

// NewRosterHelper creates a new roster helper.
func NewRosterHelper(server *TestServer) *RosterHelper {
	return &RosterHelper{server: server}
}

// SeedUser directly inserts a user into the database (bypasses API).
func (rh *RosterHelper) SeedUser(t *testing.T, user *models.User) *models.User {
	t.Helper()

	err := rh.server.UserRepo.Create(context.Background(), user)
	require.NoError(t, err, "failed to seed user")

	return user
}

// SeedOpportunity inserts an opportunity owned by ownerID.
func (rh *RosterHelper) SeedOpportunity(t *testing.T, ownerID primitive.ObjectID) *models.Opportunity {
	t.Helper()

	opp := fixtures.NewOpportunity().WithOwnerID(ownerID).BuildPtr()
	err := rh.server.OpportunityRepo.Create(context.Background(), opp)
	require.NoError(t, err, "failed to seed opportunity")

	return opp
}

// SeedRoles upserts the given role catalog.
func (rh *RosterHelper) SeedRoles(t *testing.T, roles []models.TeamRole) {
	t.Helper()

	for i := range roles {
		err := rh.server.TeamRoleRepo.Upsert(context.Background(), &roles[i])
		require.NoError(t, err, "failed to seed role %q", roles[i].Value)
	}
}

// SeedMember directly inserts a team member into the database.
func (rh *RosterHelper) SeedMember(t *testing.T, member *models.TeamMember) *models.TeamMember {
	t.Helper()

	err := rh.server.TeamMemberRepo.Create(context.Background(), member)
	require.NoError(t, err, "failed to seed team member")

	return member
}

// SeedPhoto uploads a placeholder photo under key.
func (rh *RosterHelper) SeedPhoto(t *testing.T, key string) {
	t.Helper()

	err := rh.server.Storage.PutObject(context.Background(), key, bytes.NewReader([]byte("png")), "image/png")
	require.NoError(t, err, "failed to seed photo")
}

// Token mints an access token for the user.
func (rh *RosterHelper) Token(t *testing.T, userID primitive.ObjectID) string {
	t.Helper()

	token, err := rh.server.JWTManager.GenerateToken(userID.Hex())
	require.NoError(t, err, "failed to generate token")

	return token
}

// Scenario is an opportunity with its owner and the default role catalog.
type Scenario struct {
	Owner       *models.User
	Opportunity *models.Opportunity
	OwnerToken  string
}

// MembersPath returns the team member collection path of the scenario.
func (s *Scenario) MembersPath() string {
	return "/api/v1/opportunities/" + s.Opportunity.ID.Hex() + "/team-members"
}

// SeedScenario seeds an owner, an opportunity and the default roles.
func (rh *RosterHelper) SeedScenario(t *testing.T) *Scenario {
	t.Helper()

	owner := rh.SeedUser(t, fixtures.NewUser().WithName("Olivia Owner").BuildPtr())
	opp := rh.SeedOpportunity(t, owner.ID)
	rh.SeedRoles(t, fixtures.DefaultRoles())

	return &Scenario{
		Owner:       owner,
		Opportunity: opp,
		OwnerToken:  rh.Token(t, owner.ID),
	}
}

// AddMember adds a member via the API and returns the created record.
func (rh *RosterHelper) AddMember(t *testing.T, s *Scenario, userID primitive.ObjectID, role, accessLevel string) models.TeamMemberRecord {
	t.Helper()

	req := models.AddTeamMemberRequest{
		UserID:      userID.Hex(),
		TeamRole:    role,
		AccessLevel: accessLevel,
	}

	w := testutil.MakeAuthRequest(t, rh.server.Router, http.MethodPost, s.MembersPath(), s.OwnerToken, req)
	require.Equal(t, http.StatusCreated, w.Code, "add member should return 201, got: %s", w.Body.String())

	resp := testutil.ParseAPIResponse(t, w)
	require.True(t, resp.Success, "add member response should be successful")

	return ParseResponseData[models.TeamMemberRecord](t, resp.Data)
}

// ParseResponseData is a generic helper to parse response data into a specific type.
func ParseResponseData[T any](t *testing.T, data map[string]interface{}) T {
	t.Helper()

	jsonBytes, err := json.Marshal(data)
	require.NoError(t, err, "failed to marshal response data")

	var result T
	err = json.Unmarshal(jsonBytes, &result)
	require.NoError(t, err, "failed to unmarshal response data")

	return result
}
