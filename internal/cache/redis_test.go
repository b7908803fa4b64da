package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func TestTeamMembersCacheKey(t *testing.T) {
	tests := []struct {
		name          string
		opportunityID string
		expected      string
	}{
		{"objectid format", "507f1f77bcf86cd799439011", "team-members:507f1f77bcf86cd799439011"},
		{"simple id", "123", "team-members:123"},
		{"empty string", "", "team-members:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TeamMembersCacheKey(tt.opportunityID))
		})
	}
}

func setupRedis(t *testing.T) *Redis {
	t.Helper()

	ctx := context.Background()
	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err, "Failed to start Redis container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	opt, err := redis.ParseURL(uri)
	require.NoError(t, err)

	r := NewRedisFromClient(redis.NewClient(opt))
	t.Cleanup(r.Close)
	return r
}

func TestRedis_SetGetDelete(t *testing.T) {
	r := setupRedis(t)
	ctx := context.Background()

	type payload struct {
		Name string `json:"name"`
	}

	t.Run("returns false on miss", func(t *testing.T) {
		var dest payload
		found, err := r.Get(ctx, "missing", &dest)

		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("round trips a value", func(t *testing.T) {
		require.NoError(t, r.Set(ctx, "k1", payload{Name: "Sponsor"}, time.Minute))

		var dest payload
		found, err := r.Get(ctx, "k1", &dest)

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "Sponsor", dest.Name)
	})

	t.Run("deletes multiple keys", func(t *testing.T) {
		require.NoError(t, r.Set(ctx, "k2", payload{Name: "a"}, time.Minute))
		require.NoError(t, r.Set(ctx, "k3", payload{Name: "b"}, time.Minute))

		require.NoError(t, r.Delete(ctx, "k2", "k3"))

		var dest payload
		found, err := r.Get(ctx, "k2", &dest)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("delete without keys is a no-op", func(t *testing.T) {
		assert.NoError(t, r.Delete(ctx))
	})
}
