package main

import (
	"context"
	"log"
	"time"

	"opportunity-team/internal/config"
	"opportunity-team/internal/database"

	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	log.Println("Starting migration...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	failed := createIndexes(ctx, mongoDB.Database)
	if failed > 0 {
		log.Fatalf("Migration finished with %d failed indexes", failed)
	}

	log.Println("Migration completed successfully!")
}

// createIndexes creates every index the service relies on and returns the
// number that failed.
func createIndexes(ctx context.Context, db *mongo.Database) int {
	failed := 0
	for _, spec := range database.Indexes() {
		name, err := db.Collection(spec.Collection).Indexes().CreateOne(ctx, spec.Model)
		if err != nil {
			log.Printf("Warning: Failed to create index on %s: %v", spec.Collection, err)
			failed++
			continue
		}
		log.Printf("Created index %s on %s", name, spec.Collection)
	}
	return failed
}
