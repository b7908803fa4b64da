package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"opportunity-team/internal/config"
	"opportunity-team/internal/database"
	"opportunity-team/internal/models"
	"opportunity-team/internal/storage"
	"opportunity-team/pkg/auth"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// seedRoles is the default team role catalog, in display order.
var seedRoles = []string{
	"Account Manager",
	"Channel Manager",
	"Executive Sponsor",
	"Lead Qualifier",
	"Pre-Sales Consultant",
	"Sales Manager",
	"Sales Rep",
	"Technical Sales",
}

func main() {
	log.Println("Starting seed...")

	// Load config
	cfg := config.Load()

	// Connect to MongoDB
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Connect to S3/MinIO
	s3Client := storage.NewS3Client(
		cfg.S3Endpoint,
		cfg.S3AccessKey,
		cfg.S3SecretKey,
		cfg.S3Bucket,
		cfg.S3UseSSL,
	)

	ctx := context.Background()

	if err := database.EnsureIndexes(ctx, mongoDB.Database); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	if err := s3Client.EnsureBucket(ctx); err != nil {
		log.Printf("Warning: Failed to ensure bucket %s: %v", cfg.S3Bucket, err)
	}

	clearCollections(ctx, mongoDB.Database)

	users := seedUsers(ctx, mongoDB.Database, s3Client)
	seedTeamRoles(ctx, mongoDB.Database)
	opportunityID := seedOpportunity(ctx, mongoDB.Database, users[0].ID)

	// Print a token for the opportunity owner so the API can be tried right away
	jwtManager := auth.NewJWTManager(cfg.AccessTokenSecret, 24*time.Hour)
	token, err := jwtManager.GenerateToken(users[0].ID.Hex())
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}

	log.Println("Seed completed successfully!")
	fmt.Printf("TEAMCTL_OPPORTUNITY=%s\n", opportunityID.Hex())
	fmt.Printf("TEAMCTL_TOKEN=%s\n", token)
}

func clearCollections(ctx context.Context, db *mongo.Database) {
	for _, name := range []string{
		database.UsersCollection,
		database.OpportunitiesCollection,
		database.TeamMembersCollection,
		database.TeamRolesCollection,
		database.SharesCollection,
	} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s: %v", name, err)
		}
	}
}

func seedUsers(ctx context.Context, db *mongo.Database, s3Client *storage.S3Client) []models.User {
	collection := db.Collection(database.UsersCollection)
	now := time.Now()

	users := []models.User{
		{Email: "alice@example.com", Name: "Alice Johnson", Title: "Account Executive", PhotoKey: "users/alice.png", IsActive: true},
		{Email: "bob@example.com", Name: "Bob Smith", Title: "Sales Engineer", PhotoKey: "users/bob.png", IsActive: true},
		{Email: "carol@example.com", Name: "Carol Diaz", Title: "Sales Manager", IsActive: true},
		{Email: "dave@example.com", Name: "Dave Okafor", Title: "Channel Partner", IsActive: true},
		{Email: "erin@example.com", Name: "Erin Walsh", Title: "Former Rep", IsActive: false},
	}

	docs := make([]interface{}, 0, len(users))
	for i := range users {
		users[i].ID = primitive.NewObjectID()
		users[i].CreatedAt = now
		users[i].UpdatedAt = now
		docs = append(docs, users[i])
	}

	result, err := collection.InsertMany(ctx, docs)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	log.Printf("Seeded %d users", len(result.InsertedIDs))

	for _, u := range users {
		if u.PhotoKey != "" {
			uploadPlaceholderPhoto(ctx, s3Client, u.PhotoKey)
		}
	}

	return users
}

func seedTeamRoles(ctx context.Context, db *mongo.Database) {
	collection := db.Collection(database.TeamRolesCollection)

	docs := make([]interface{}, 0, len(seedRoles))
	for i, label := range seedRoles {
		docs = append(docs, models.TeamRole{
			Label:     label,
			Value:     label,
			SortOrder: i,
			Active:    true,
		})
	}

	result, err := collection.InsertMany(ctx, docs)
	if err != nil {
		log.Fatalf("Failed to seed team roles: %v", err)
	}
	log.Printf("Seeded %d team roles", len(result.InsertedIDs))
}

func seedOpportunity(ctx context.Context, db *mongo.Database, ownerID primitive.ObjectID) primitive.ObjectID {
	now := time.Now()
	opp := models.Opportunity{
		ID:        primitive.NewObjectID(),
		Name:      "Acme Corp - 500 Widgets",
		Stage:     "Prospecting",
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := db.Collection(database.OpportunitiesCollection).InsertOne(ctx, opp); err != nil {
		log.Fatalf("Failed to seed opportunity: %v", err)
	}
	log.Printf("Seeded opportunity %s", opp.ID.Hex())

	return opp.ID
}

// pngHeader is enough of a PNG for image viewers to recognise the file.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}

// uploadPlaceholderPhoto uploads a placeholder profile photo to S3.
func uploadPlaceholderPhoto(ctx context.Context, s3Client *storage.S3Client, key string) {
	err := s3Client.PutObject(ctx, key, bytes.NewReader(pngHeader), "image/png")
	if err != nil {
		log.Printf("Warning: Failed to upload %s: %v", key, err)
		return
	}

	log.Printf("Uploaded placeholder photo: %s", key)
}
