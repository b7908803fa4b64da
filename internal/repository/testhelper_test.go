package repository

import (
	"context"
	"strings"
	"testing"

	"opportunity-team/internal/database"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TestDB is a throwaway MongoDB for one test function.
type TestDB struct {
	Container *mongodb.MongoDBContainer
	Client    *mongo.Client
	Database  *mongo.Database
}

// SetupTestDB starts a MongoDB container and opens a database named after
// the test.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7.0")
	require.NoError(t, err, "start mongo container")

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err, "mongo connection string")

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err, "connect to mongo")
	require.NoError(t, client.Ping(ctx, nil), "ping mongo")

	return &TestDB{
		Container: container,
		Client:    client,
		Database:  client.Database(dbNameFor(t)),
	}
}

// SetupIndexedTestDB is SetupTestDB plus the roster indexes, for tests that
// depend on unique constraints.
func SetupIndexedTestDB(t *testing.T) *TestDB {
	t.Helper()

	tdb := SetupTestDB(t)
	require.NoError(t, database.EnsureIndexes(context.Background(), tdb.Database), "ensure indexes")
	return tdb
}

// dbNameFor derives a valid database name from the test name.
func dbNameFor(t *testing.T) string {
	name := strings.NewReplacer("/", "_", " ", "_", ".", "_").Replace(t.Name())
	if len(name) > 48 {
		name = name[:48]
	}
	return "test_" + name
}

// Cleanup drops the database and stops the container.
func (tdb *TestDB) Cleanup(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	if tdb.Database != nil {
		_ = tdb.Database.Drop(ctx)
	}
	if tdb.Client != nil {
		_ = tdb.Client.Disconnect(ctx)
	}
	if tdb.Container != nil {
		_ = tdb.Container.Terminate(ctx)
	}
}

// ClearCollection removes all documents from a collection, keeping its indexes.
func (tdb *TestDB) ClearCollection(t *testing.T, collectionName string) {
	t.Helper()

	_, err := tdb.Database.Collection(collectionName).DeleteMany(context.Background(), bson.D{})
	require.NoError(t, err, "clear collection %s", collectionName)
}
