package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/foodgram-backend/internal/logger"
	"github.com/sbilibin2017/foodgram-backend/internal/models"
	"github.com/sbilibin2017/foodgram-backend/internal/repositories"
)

//go:generate mockgen -source=reference.go -destination=reference_mock.go -package=services

// TagReader reads tags from the database.
type TagReader interface {
	List(ctx context.Context) ([]models.Tag, error)
	GetByID(ctx context.Context, id int64) (*models.Tag, error)
}

// TagCache caches the full tag list.
type TagCache interface {
	GetAll(ctx context.Context) ([]models.Tag, error)
	SetAll(ctx context.Context, tags []models.Tag) error
}

// IngredientReader reads ingredients from the database.
type IngredientReader interface {
	List(ctx context.Context, namePrefix string) ([]models.Ingredient, error)
	GetByID(ctx context.Context, id int64) (*models.Ingredient, error)
}

// TagService serves tags, reading through the cache.
type TagService struct {
	repo  TagReader
	cache TagCache
}

// NewTagService creates a TagService. cache may be nil.
func NewTagService(repo TagReader, cache TagCache) *TagService {
	return &TagService{repo: repo, cache: cache}
}

// List returns all tags. Cache failures fall back to the database.
func (s *TagService) List(ctx context.Context) ([]models.Tag, error) {
	if s.cache != nil {
		tags, err := s.cache.GetAll(ctx)
		if err == nil {
			return tags, nil
		}
		if !errors.Is(err, repositories.ErrCacheMiss) {
			logger.Log.Warnw("tag cache unavailable", "error", err)
		}
	}

	tags, err := s.repo.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list tags", "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetAll(ctx, tags); err != nil {
			logger.Log.Warnw("failed to cache tags", "error", err)
		}
	}
	return tags, nil
}

// Get returns a single tag.
func (s *TagService) Get(ctx context.Context, id int64) (*models.Tag, error) {
	tag, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get tag", "id", id, "error", err)
		return nil, err
	}
	if tag == nil {
		return nil, ErrTagNotFound
	}
	return tag, nil
}

// IngredientService serves ingredients.
type IngredientService struct {
	repo IngredientReader
}

func NewIngredientService(repo IngredientReader) *IngredientService {
	return &IngredientService{repo: repo}
}

// List returns ingredients whose name starts with namePrefix; an empty
// prefix returns all of them.
func (s *IngredientService) List(ctx context.Context, namePrefix string) ([]models.Ingredient, error) {
	ingredients, err := s.repo.List(ctx, namePrefix)
	if err != nil {
		logger.Log.Errorw("failed to list ingredients", "name", namePrefix, "error", err)
		return nil, err
	}
	return ingredients, nil
}

// Get returns a single ingredient.
func (s *IngredientService) Get(ctx context.Context, id int64) (*models.Ingredient, error) {
	ingredient, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get ingredient", "id", id, "error", err)
		return nil, err
	}
	if ingredient == nil {
		return nil, ErrIngredientNotFound
	}
	return ingredient, nil
}
