package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/foodgram-backend/internal/logger"
	"github.com/sbilibin2017/foodgram-backend/internal/models"
)

const tagsCacheKey = "tags:all"

// ErrCacheMiss is returned when the requested key is not cached.
var ErrCacheMiss = errors.New("cache miss")

// TagCacheRepository caches the tag list in Redis.
type TagCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for the cached list
}

// NewTagCacheRepository creates a new repository instance with the given TTL
func NewTagCacheRepository(client *redis.Client, expiration time.Duration) *TagCacheRepository {
	return &TagCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetAll returns the cached tag list or ErrCacheMiss.
func (r *TagCacheRepository) GetAll(ctx context.Context) ([]models.Tag, error) {
	val, err := r.client.Get(ctx, tagsCacheKey).Bytes()
	if err != nil {
		logger.Log.Infow("cache get", "key", tagsCacheKey, "error", err)
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var tags []models.Tag
	if err := json.Unmarshal(val, &tags); err != nil {
		logger.Log.Errorw("cache decode", "key", tagsCacheKey, "error", err)
		return nil, err
	}

	logger.Log.Infow("cache get", "key", tagsCacheKey, "result", len(tags))
	return tags, nil
}

// SetAll caches the tag list with the repository TTL.
func (r *TagCacheRepository) SetAll(ctx context.Context, tags []models.Tag) error {
	data, err := json.Marshal(tags)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, tagsCacheKey, data, r.exp).Err()
	logger.Log.Infow("cache set", "key", tagsCacheKey, "result", len(tags), "error", err)
	return err
}

// Invalidate drops the cached tag list.
func (r *TagCacheRepository) Invalidate(ctx context.Context) error {
	err := r.client.Del(ctx, tagsCacheKey).Err()
	logger.Log.Infow("cache del", "key", tagsCacheKey, "error", err)
	return err
}
