//go:build api

// Package testserver provides a fully wired test server for API integration tests.
package testserver

import (
	"context"
	"time"

	"opportunity-team/internal/authz"
	"opportunity-team/internal/cache"
	"opportunity-team/internal/handler"
	"opportunity-team/internal/queue"
	"opportunity-team/internal/repository"
	"opportunity-team/internal/router"
	"opportunity-team/internal/service"
	"opportunity-team/internal/storage"
	"opportunity-team/pkg/auth"
	"opportunity-team/test/api/testdb"

	"github.com/gin-gonic/gin"
)

const (
	// TestAccessTokenSecret is the JWT secret used in tests.
	TestAccessTokenSecret = "test-secret-key-for-api-tests"
	// TestAccessTokenExpiry is the access token expiry time used in tests.
	TestAccessTokenExpiry = 15 * time.Minute
	// TestPhotoURLExpiry is the lifetime of presigned photo URLs in tests.
	TestPhotoURLExpiry = 5 * time.Minute
	// TestSearchLimit caps user search results in tests.
	TestSearchLimit = 10
	// TestShareWorkers is the number of share sync workers in tests.
	TestShareWorkers = 2
	// TestDBName is the database name used in tests.
	TestDBName = "test_api"
)

// TestServer holds all dependencies for API integration tests.
type TestServer struct {
	// Router is the Gin engine for making HTTP requests.
	Router *gin.Engine

	// Containers
	MongoDB *testdb.MongoContainer
	Redis   *testdb.RedisContainer
	MinIO   *testdb.MinIOContainer

	// Repositories (for direct database access in tests)
	UserRepo        repository.UserRepository
	OpportunityRepo repository.OpportunityRepository
	TeamMemberRepo  repository.TeamMemberRepository
	TeamRoleRepo    repository.TeamRoleRepository
	ShareRepo       repository.ShareRepository

	// Services (for direct service access in tests)
	TeamMemberService service.TeamMemberServicer
	UserService       service.UserServicer
	RoleService       service.RoleServicer

	// Storage
	Storage *storage.S3Client

	// Auth
	JWTManager *auth.JWTManager

	// Queue
	ShareQueue     *queue.MemoryQueue
	ShareProcessor *queue.Processor
}

// New creates a new test server with all dependencies wired up.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)

	// Start containers
	mongoDB, err := testdb.SetupMongoDB(ctx, TestDBName)
	if err != nil {
		return nil, err
	}

	redisContainer, err := testdb.SetupRedis(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		return nil, err
	}

	minioContainer, err := testdb.SetupMinIO(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		return nil, err
	}

	// Create cache (uses real Redis)
	redisCache := cache.NewRedisFromClient(redisContainer.Client)

	// Create storage (uses real MinIO)
	s3Client := storage.NewS3Client(
		minioContainer.Endpoint,
		minioContainer.AccessKey,
		minioContainer.SecretKey,
		minioContainer.Bucket,
		false, // useSSL
	)

	// JWT Manager
	jwtManager := auth.NewJWTManager(TestAccessTokenSecret, TestAccessTokenExpiry)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	opportunityRepo := repository.NewOpportunityRepository(mongoDB.Database)
	teamMemberRepo := repository.NewTeamMemberRepository(mongoDB.Database)
	teamRoleRepo := repository.NewTeamRoleRepository(mongoDB.Database)
	shareRepo := repository.NewShareRepository(mongoDB.Database)

	// Authorization
	authorizer := authz.NewLocalAuthorizer(opportunityRepo, teamMemberRepo)

	// Share sync queue and processor
	shareQueue := queue.NewMemoryQueue(100)
	shareProcessor := queue.NewProcessor(shareQueue, shareRepo, teamMemberRepo, TestShareWorkers)

	// Service layer
	teamMemberService := service.NewTeamMemberService(service.TeamMemberDeps{
		Members:       teamMemberRepo,
		Users:         userRepo,
		Opportunities: opportunityRepo,
		Roles:         teamRoleRepo,
		Cache:         redisCache,
		Storage:       s3Client,
		Shares:        shareQueue,
		PhotoExpiry:   TestPhotoURLExpiry,
	})
	userService := service.NewUserService(userRepo, s3Client, TestPhotoURLExpiry, TestSearchLimit)
	roleService := service.NewRoleService(teamRoleRepo, redisCache)

	// Router
	r := router.Setup(&router.Config{
		TeamMemberHandler: handler.NewTeamMemberHandler(teamMemberService),
		UserHandler:       handler.NewUserHandler(userService),
		RoleHandler:       handler.NewRoleHandler(roleService),
		TokenManager:      jwtManager,
		Authorizer:        authorizer,
	})

	return &TestServer{
		Router:            r,
		MongoDB:           mongoDB,
		Redis:             redisContainer,
		MinIO:             minioContainer,
		UserRepo:          userRepo,
		OpportunityRepo:   opportunityRepo,
		TeamMemberRepo:    teamMemberRepo,
		TeamRoleRepo:      teamRoleRepo,
		ShareRepo:         shareRepo,
		TeamMemberService: teamMemberService,
		UserService:       userService,
		RoleService:       roleService,
		Storage:           s3Client,
		JWTManager:        jwtManager,
		ShareQueue:        shareQueue,
		ShareProcessor:    shareProcessor,
	}, nil
}

// Cleanup terminates all containers.
func (ts *TestServer) Cleanup(ctx context.Context) {
	if ts.MinIO != nil {
		_ = ts.MinIO.Cleanup(ctx)
	}
	if ts.Redis != nil {
		_ = ts.Redis.Cleanup(ctx)
	}
	if ts.MongoDB != nil {
		_ = ts.MongoDB.Cleanup(ctx)
	}
}

// StartShareProcessor starts the share sync processor.
func (ts *TestServer) StartShareProcessor(ctx context.Context) {
	ts.ShareProcessor.Start(ctx)
}

// StopShareProcessor stops the share processor and resets the queue so
// subsequent tests get a fresh processor.
func (ts *TestServer) StopShareProcessor() {
	ts.ShareProcessor.Stop()
	ts.ShareQueue.Reset()
	ts.ShareProcessor = queue.NewProcessor(ts.ShareQueue, ts.ShareRepo, ts.TeamMemberRepo, TestShareWorkers)
}
