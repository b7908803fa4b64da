package handler

import (
	"errors"
	"log"
	"net/http"

	apperrors "opportunity-team/internal/errors"
	"opportunity-team/pkg/response"

	"github.com/gin-gonic/gin"
)

// respondError writes the response for a service error.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrMaxTeamMembers):
		response.Conflict(c, response.CodeTeamFull, err.Error())
	case errors.Is(err, apperrors.ErrRoleAlreadyAssigned):
		response.Conflict(c, response.CodeRoleTaken, err.Error())
	case errors.Is(err, apperrors.ErrAlreadyTeamMember):
		response.Conflict(c, response.CodeAlreadyMember, err.Error())
	case errors.Is(err, apperrors.ErrOpportunityNotFound),
		errors.Is(err, apperrors.ErrTeamMemberNotFound),
		errors.Is(err, apperrors.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, apperrors.ErrInvalidRole),
		errors.Is(err, apperrors.ErrInvalidAccessLevel),
		errors.Is(err, apperrors.ErrUserInactive):
		response.Error(c, http.StatusBadRequest, response.CodeInvalidReference, err.Error())
	case errors.Is(err, apperrors.ErrSearchTermTooShort):
		response.Error(c, http.StatusBadRequest, response.CodeSearchTooShort, err.Error())
	case errors.Is(err, apperrors.ErrInsufficientPermissions):
		response.Forbidden(c, err.Error())
	default:
		log.Printf("%s %s failed: %v", c.Request.Method, c.FullPath(), err)
		response.InternalError(c)
	}
}
