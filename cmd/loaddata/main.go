package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/sbilibin2017/foodgram-backend/internal/logger"
	"github.com/sbilibin2017/foodgram-backend/internal/models"
	"github.com/sbilibin2017/foodgram-backend/internal/repositories"
)

//go:generate mockgen -source=main.go -destination=main_mock.go -package=main

// Fixture kinds.
const (
	kindTags        = "tags"
	kindIngredients = "ingredients"
)

var errUnknownKind = errors.New("unknown fixture kind")

// TagLoader bulk-inserts tags.
type TagLoader interface {
	BulkInsert(ctx context.Context, tags []models.Tag) (int64, error)
}

// IngredientLoader bulk-inserts ingredients.
type IngredientLoader interface {
	BulkInsert(ctx context.Context, ingredients []models.Ingredient) (int64, error)
}

// CacheInvalidator drops cached tag lists.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

func main() {
	configPath := flag.String("c", "config.env", "Path to configuration file")
	kind := flag.String("kind", "", "Fixture kind: tags or ingredients")
	file := flag.String("file", "", "Path to JSON fixture")
	flag.Parse()

	if *file == "" {
		log.Fatal("-file is required")
	}

	_ = godotenv.Load(*configPath)
	if err := logger.Initialize(getEnv("APP_LOG_LEVEL", "info")); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	db, err := sqlx.ConnectContext(ctx, "pgx", fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("POSTGRES_USER", "user"), getEnv("POSTGRES_PASSWORD", "password"),
		getEnv("POSTGRES_HOST", "localhost"), getEnv("POSTGRES_PORT", "5432"),
		getEnv("POSTGRES_DB", "foodgram")))
	if err != nil {
		log.Fatalf("PostgreSQL connection error: %v", err)
	}
	defer db.Close()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		log.Fatalf("REDIS_DB: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_HOST", "localhost") + ":" + getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       redisDB,
	})
	defer rdb.Close()

	f, err := os.Open(*file)
	if err != nil {
		log.Fatalf("failed to open fixture: %v", err)
	}
	defer f.Close()

	added, err := loadFixture(ctx, *kind, f,
		repositories.NewTagRepository(db),
		repositories.NewIngredientRepository(db),
		repositories.NewTagCacheRepository(rdb, 0),
	)
	if err != nil {
		log.Fatalf("failed to load %s from %q: %v", *kind, *file, err)
	}
	fmt.Printf("%s loaded, %d added\n", *kind, added)
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

// decodeFixture accepts either a bare JSON array or an object holding the
// array under the kind's key.
func decodeFixture[T any](r io.Reader, kind string) ([]T, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err == nil {
		return items, nil
	}

	var wrapped map[string][]T
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return wrapped[kind], nil
}

// loadFixture inserts the fixture rows, skipping ones that already exist, and
// returns the number of rows added.
func loadFixture(ctx context.Context, kind string, r io.Reader, tags TagLoader, ingredients IngredientLoader, cache CacheInvalidator) (int64, error) {
	switch kind {
	case kindTags:
		items, err := decodeFixture[models.Tag](r, kind)
		if err != nil {
			return 0, err
		}
		added, err := tags.BulkInsert(ctx, items)
		if err != nil {
			return 0, err
		}
		if err := cache.Invalidate(ctx); err != nil {
			logger.Log.Errorw("failed to invalidate tag cache", "error", err)
		}
		return added, nil
	case kindIngredients:
		items, err := decodeFixture[models.Ingredient](r, kind)
		if err != nil {
			return 0, err
		}
		return ingredients.BulkInsert(ctx, items)
	default:
		return 0, fmt.Errorf("%w: %q", errUnknownKind, kind)
	}
}
