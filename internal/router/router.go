// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	_ "opportunity-team/swagger" // Import generated swagger docs

	"opportunity-team/internal/authz"
	"opportunity-team/internal/handler"
	"opportunity-team/internal/middleware"
	"opportunity-team/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	TeamMemberHandler *handler.TeamMemberHandler
	UserHandler       *handler.UserHandler
	RoleHandler       *handler.RoleHandler
	TokenManager      auth.TokenManager
	Authorizer        authz.Authorizer
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.Default()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1, every route is protected
	v1 := r.Group("/api/v1")
	v1.Use(middleware.Auth(cfg.TokenManager))
	{
		v1.GET("/team-roles", cfg.RoleHandler.ListRoles)
		v1.GET("/users/search", cfg.UserHandler.SearchUsers)

		// Opportunity team roster
		members := v1.Group("/opportunities/:opportunityId/team-members")
		{
			members.GET("", middleware.OpportunityAuthz(cfg.Authorizer, authz.ActionTeamView), cfg.TeamMemberHandler.ListMembers)
			members.POST("", middleware.OpportunityAuthz(cfg.Authorizer, authz.ActionTeamEdit), cfg.TeamMemberHandler.AddMember)
			members.DELETE("/:memberId", middleware.OpportunityAuthz(cfg.Authorizer, authz.ActionTeamEdit), cfg.TeamMemberHandler.RemoveMember)
		}
	}

	return r
}
