package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"opportunity-team/internal/authz"
	"opportunity-team/internal/cache"
	"opportunity-team/internal/config"
	"opportunity-team/internal/database"
	"opportunity-team/internal/handler"
	"opportunity-team/internal/queue"
	"opportunity-team/internal/repository"
	"opportunity-team/internal/router"
	"opportunity-team/internal/service"
	"opportunity-team/internal/storage"
	"opportunity-team/internal/validator"
	"opportunity-team/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title           Opportunity Team API
// @version         1.0
// @description     Manages the sales team roster of opportunities.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("Configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	indexCtx, indexCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureIndexes(indexCtx, mongoDB.Database); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}
	indexCancel()

	// Redis Cache
	redisCache := cache.NewRedis(cfg.RedisURI)
	defer redisCache.Close()

	// S3 Storage
	s3Client := storage.NewS3Client(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)

	// JWT Manager
	jwtManager := auth.NewJWTManager(cfg.AccessTokenSecret, cfg.AccessTokenExpiry)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	opportunityRepo := repository.NewOpportunityRepository(mongoDB.Database)
	teamMemberRepo := repository.NewTeamMemberRepository(mongoDB.Database)
	teamRoleRepo := repository.NewTeamRoleRepository(mongoDB.Database)
	shareRepo := repository.NewShareRepository(mongoDB.Database)

	// Authorization
	authorizer := authz.NewLocalAuthorizer(opportunityRepo, teamMemberRepo)

	// Share sync queue and processor
	shareQueue := queue.NewMemoryQueue(cfg.ShareQueueSize)
	shareProcessor := queue.NewProcessor(shareQueue, shareRepo, teamMemberRepo, cfg.ShareWorkers)

	// Service layer
	teamMemberService := service.NewTeamMemberService(service.TeamMemberDeps{
		Members:       teamMemberRepo,
		Users:         userRepo,
		Opportunities: opportunityRepo,
		Roles:         teamRoleRepo,
		Cache:         redisCache,
		Storage:       s3Client,
		Shares:        shareQueue,
		PhotoExpiry:   cfg.PhotoURLExpiry,
	})
	userService := service.NewUserService(userRepo, s3Client, cfg.PhotoURLExpiry, cfg.SearchLimit)
	roleService := service.NewRoleService(teamRoleRepo, redisCache)

	// Router
	r := router.Setup(&router.Config{
		TeamMemberHandler: handler.NewTeamMemberHandler(teamMemberService),
		UserHandler:       handler.NewUserHandler(userService),
		RoleHandler:       handler.NewRoleHandler(roleService),
		TokenManager:      jwtManager,
		Authorizer:        authorizer,
	})

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start share processor
	shareProcessor.Start(ctx)

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Shutdown HTTP server first (drain connections)
	log.Println("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	// Cancel context to signal processor shutdown
	cancel()

	// Stop share processor (waits for workers)
	log.Println("Stopping share processor...")
	shareProcessor.Stop()

	log.Println("Server shutdown complete")
}
