// Package handler contains HTTP handlers for the API.
package handler

import (
	"opportunity-team/internal/service"
	"opportunity-team/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for user directory lookups.
type UserHandler struct {
	service service.UserServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service service.UserServicer) *UserHandler {
	return &UserHandler{service: service}
}

// SearchUsers godoc
// @Summary      Search users
// @Description  Find active users by name or email. The term must have at least 2 characters.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        q    query     string  true  "Search term"
// @Success      200  {object}  response.Response{data=models.UserSearchResponse}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /users/search [get]
func (h *UserHandler) SearchUsers(c *gin.Context) {
	result, err := h.service.SearchUsers(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}
