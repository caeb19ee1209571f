package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/foodgram-backend/internal/logger"
	"github.com/sbilibin2017/foodgram-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestTagCacheRepository(t *testing.T) {
	require.NoError(t, logger.Initialize("debug"))
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewTagCacheRepository(rdb, 2*time.Second)
	tags := []models.Tag{
		{ID: 1, Name: "Breakfast", Slug: "breakfast"},
		{ID: 2, Name: "Lunch", Slug: "lunch"},
	}

	t.Run("Empty cache is a miss", func(t *testing.T) {
		_, err := repo.GetAll(ctx)
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("Set and Get", func(t *testing.T) {
		require.NoError(t, repo.SetAll(ctx, tags))

		got, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, tags, got)
	})

	t.Run("Invalidate", func(t *testing.T) {
		require.NoError(t, repo.SetAll(ctx, tags))
		require.NoError(t, repo.Invalidate(ctx))

		_, err := repo.GetAll(ctx)
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("Cached value expires", func(t *testing.T) {
		require.NoError(t, repo.SetAll(ctx, tags))

		time.Sleep(3 * time.Second)

		_, err := repo.GetAll(ctx)
		assert.ErrorIs(t, err, ErrCacheMiss)
	})
}
