package middleware

import (
	"errors"

	"opportunity-team/internal/authz"
	apperrors "opportunity-team/internal/errors"
	"opportunity-team/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Context keys for storing opportunity data
const (
	OpportunityIDKey = "opportunityID"
	RelationKey      = "relation"
)

// OpportunityAuthz returns a middleware that checks the caller may perform
// action on the team of the opportunity named by the :opportunityId param.
func OpportunityAuthz(authorizer authz.Authorizer, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDStr := GetUserID(c)
		if userIDStr == "" {
			response.Unauthorized(c, "user not authenticated")
			c.Abort()
			return
		}

		userID, err := primitive.ObjectIDFromHex(userIDStr)
		if err != nil {
			response.Unauthorized(c, "invalid user id format")
			c.Abort()
			return
		}

		opportunityID, err := primitive.ObjectIDFromHex(c.Param("opportunityId"))
		if err != nil {
			response.BadRequest(c, "invalid opportunity id format")
			c.Abort()
			return
		}

		allowed, err := authorizer.CanPerform(c.Request.Context(), userID, opportunityID, action)
		if err != nil {
			if errors.Is(err, apperrors.ErrOpportunityNotFound) {
				response.NotFound(c, apperrors.ErrOpportunityNotFound.Error())
			} else {
				response.InternalError(c)
			}
			c.Abort()
			return
		}

		if !allowed {
			response.Forbidden(c, apperrors.ErrInsufficientPermissions.Error())
			c.Abort()
			return
		}

		relation, _ := authorizer.Relation(c.Request.Context(), userID, opportunityID)

		c.Set(OpportunityIDKey, opportunityID)
		c.Set(RelationKey, relation)

		c.Next()
	}
}

// GetOpportunityID retrieves the opportunity ID from the context.
func GetOpportunityID(c *gin.Context) (primitive.ObjectID, bool) {
	id, exists := c.Get(OpportunityIDKey)
	if !exists {
		return primitive.NilObjectID, false
	}
	return id.(primitive.ObjectID), true
}

// GetRelation retrieves the caller's relation to the opportunity from the context.
func GetRelation(c *gin.Context) string {
	return c.GetString(RelationKey)
}
