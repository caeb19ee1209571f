package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/foodgram-backend/internal/logger"
	"github.com/sbilibin2017/foodgram-backend/internal/models"
	"github.com/sbilibin2017/foodgram-backend/internal/repositories"
)

//go:generate mockgen -source=user_recipe.go -destination=user_recipe_mock.go -package=services

// UserRecipeStore stores membership-only (user, recipe) pairs.
type UserRecipeStore interface {
	Add(ctx context.Context, userID uuid.UUID, recipeID int64) (bool, error)
	Remove(ctx context.Context, userID uuid.UUID, recipeID int64) (bool, error)
}

// RecipeGetter loads a recipe by id.
type RecipeGetter interface {
	GetByID(ctx context.Context, recipeID int64) (*models.Recipe, error)
}

// UserRecipeService adds recipes to and removes them from a per-user list.
// Favorites and the shopping cart are two instances of it.
type UserRecipeService struct {
	recipes     RecipeGetter
	store       UserRecipeStore
	list        string
	errExists   error
	errNotFound error
}

// NewFavoriteService returns the favorites list service.
func NewFavoriteService(recipes RecipeGetter, store UserRecipeStore) *UserRecipeService {
	return &UserRecipeService{
		recipes:     recipes,
		store:       store,
		list:        "favorites",
		errExists:   ErrAlreadyInFavorites,
		errNotFound: ErrNotInFavorites,
	}
}

// NewShoppingCartService returns the shopping cart service.
func NewShoppingCartService(recipes RecipeGetter, store UserRecipeStore) *UserRecipeService {
	return &UserRecipeService{
		recipes:     recipes,
		store:       store,
		list:        "shopping_cart",
		errExists:   ErrAlreadyInShoppingCart,
		errNotFound: ErrNotInShoppingCart,
	}
}

// Add puts the recipe into the user's list and returns its short form.
func (s *UserRecipeService) Add(ctx context.Context, userID uuid.UUID, recipeID int64) (*models.RecipeShort, error) {
	recipe, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		logger.Log.Errorw("failed to get recipe", "recipe", recipeID, "error", err)
		return nil, err
	}
	if recipe == nil {
		return nil, ErrRecipeNotFound
	}

	created, err := s.store.Add(ctx, userID, recipeID)
	if errors.Is(err, repositories.ErrReferenceNotFound) {
		return nil, ErrRecipeNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to add recipe", "list", s.list, "userID", userID, "recipe", recipeID, "error", err)
		return nil, err
	}
	if !created {
		return nil, s.errExists
	}

	logger.Log.Infow("recipe added", "list", s.list, "userID", userID, "recipe", recipeID)
	return &models.RecipeShort{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Image:       recipe.Image,
		CookingTime: recipe.CookingTime,
	}, nil
}

// Remove takes the recipe out of the user's list.
func (s *UserRecipeService) Remove(ctx context.Context, userID uuid.UUID, recipeID int64) error {
	removed, err := s.store.Remove(ctx, userID, recipeID)
	if err != nil {
		logger.Log.Errorw("failed to remove recipe", "list", s.list, "userID", userID, "recipe", recipeID, "error", err)
		return err
	}
	if !removed {
		return s.errNotFound
	}

	logger.Log.Infow("recipe removed", "list", s.list, "userID", userID, "recipe", recipeID)
	return nil
}
