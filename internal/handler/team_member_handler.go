package handler

import (
	"opportunity-team/internal/middleware"
	"opportunity-team/internal/models"
	"opportunity-team/internal/service"
	"opportunity-team/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamMemberHandler handles HTTP requests for opportunity team operations.
type TeamMemberHandler struct {
	service service.TeamMemberServicer
}

// NewTeamMemberHandler creates a new TeamMemberHandler.
func NewTeamMemberHandler(service service.TeamMemberServicer) *TeamMemberHandler {
	return &TeamMemberHandler{service: service}
}

// ListMembers godoc
// @Summary      List team members
// @Description  Retrieve the team roster of an opportunity with user details
// @Tags         team-members
// @Accept       json
// @Produce      json
// @Param        opportunityId  path      string  true  "Opportunity ID"
// @Success      200            {object}  response.Response{data=models.TeamMemberListResponse}
// @Failure      400            {object}  response.Response
// @Failure      401            {object}  response.Response
// @Failure      403            {object}  response.Response
// @Failure      404            {object}  response.Response
// @Failure      500            {object}  response.Response
// @Security     BearerAuth
// @Router       /opportunities/{opportunityId}/team-members [get]
func (h *TeamMemberHandler) ListMembers(c *gin.Context) {
	opportunityID, exists := middleware.GetOpportunityID(c)
	if !exists {
		response.BadRequest(c, "opportunity id not found in context")
		return
	}

	result, err := h.service.ListMembers(c.Request.Context(), opportunityID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}

// AddMember godoc
// @Summary      Add team member
// @Description  Add a user to the opportunity team. At most two members, each with a distinct role.
// @Tags         team-members
// @Accept       json
// @Produce      json
// @Param        opportunityId  path      string                       true  "Opportunity ID"
// @Param        body           body      models.AddTeamMemberRequest  true  "Member to add"
// @Success      201            {object}  response.Response{data=models.TeamMemberRecord}
// @Failure      400            {object}  response.Response
// @Failure      401            {object}  response.Response
// @Failure      403            {object}  response.Response
// @Failure      404            {object}  response.Response
// @Failure      409            {object}  response.Response
// @Failure      500            {object}  response.Response
// @Security     BearerAuth
// @Router       /opportunities/{opportunityId}/team-members [post]
func (h *TeamMemberHandler) AddMember(c *gin.Context) {
	opportunityID, exists := middleware.GetOpportunityID(c)
	if !exists {
		response.BadRequest(c, "opportunity id not found in context")
		return
	}

	actorID, _ := primitive.ObjectIDFromHex(middleware.GetUserID(c))

	var req models.AddTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	record, err := h.service.AddMember(c.Request.Context(), opportunityID, actorID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, record)
}

// RemoveMember godoc
// @Summary      Remove team member
// @Description  Remove a member from the opportunity team
// @Tags         team-members
// @Accept       json
// @Produce      json
// @Param        opportunityId  path  string  true  "Opportunity ID"
// @Param        memberId       path  string  true  "Team member ID"
// @Success      204
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /opportunities/{opportunityId}/team-members/{memberId} [delete]
func (h *TeamMemberHandler) RemoveMember(c *gin.Context) {
	opportunityID, exists := middleware.GetOpportunityID(c)
	if !exists {
		response.BadRequest(c, "opportunity id not found in context")
		return
	}

	memberID, err := primitive.ObjectIDFromHex(c.Param("memberId"))
	if err != nil {
		response.BadRequest(c, "invalid member id format")
		return
	}

	if err := h.service.RemoveMember(c.Request.Context(), opportunityID, memberID); err != nil {
		respondError(c, err)
		return
	}

	response.NoContent(c)
}
