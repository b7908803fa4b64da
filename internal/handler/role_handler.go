package handler

import (
	"opportunity-team/internal/service"
	"opportunity-team/pkg/response"

	"github.com/gin-gonic/gin"
)

// RoleHandler serves the team role catalog.
type RoleHandler struct {
	service service.RoleServicer
}

// NewRoleHandler creates a new RoleHandler.
func NewRoleHandler(service service.RoleServicer) *RoleHandler {
	return &RoleHandler{service: service}
}

// ListRoles godoc
// @Summary      List team roles
// @Description  Retrieve the roles a team member can hold, in display order
// @Tags         team-roles
// @Produce      json
// @Success      200  {object}  response.Response{data=models.RoleListResponse}
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /team-roles [get]
func (h *RoleHandler) ListRoles(c *gin.Context) {
	result, err := h.service.ListRoles(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}
