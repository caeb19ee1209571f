package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/foodgram-backend/internal/models"
)

//go:generate mockgen -source=user_recipes.go -destination=user_recipes_mock.go -package=handlers

// RecipeCollection adds recipes to and removes them from a per-user list.
type RecipeCollection interface {
	Add(ctx context.Context, userID uuid.UUID, recipeID int64) (*models.RecipeShort, error)
	Remove(ctx context.Context, userID uuid.UUID, recipeID int64) error
}

// ShoppingListDownloader renders the current user's shopping list.
type ShoppingListDownloader interface {
	Download(ctx context.Context, userID uuid.UUID) (string, []byte, error)
}

// NewAddToCollectionHandler adds a recipe to the current user's favorites or cart.
// @Summary Add recipe to favorites or shopping cart
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 201 {object} models.RecipeShort
// @Failure 400 {object} handlers.ErrorResponse "Already added"
// @Failure 404 {object} handlers.ErrorResponse "Unknown recipe"
// @Router /recipes/{id}/favorite/ [post]
// @Router /recipes/{id}/shopping_cart/ [post]
func NewAddToCollectionHandler(svc RecipeCollection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		recipeID, ok := int64Param(w, r, "id")
		if !ok {
			return
		}

		recipe, err := svc.Add(r.Context(), userID, recipeID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, recipe)
	}
}

// NewRemoveFromCollectionHandler removes a recipe from the current user's favorites or cart.
// @Summary Remove recipe from favorites or shopping cart
// @Tags recipes
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 204
// @Failure 404 {object} handlers.ErrorResponse "Not added"
// @Router /recipes/{id}/favorite/ [delete]
// @Router /recipes/{id}/shopping_cart/ [delete]
func NewRemoveFromCollectionHandler(svc RecipeCollection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		recipeID, ok := int64Param(w, r, "id")
		if !ok {
			return
		}

		if err := svc.Remove(r.Context(), userID, recipeID); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// NewDownloadShoppingCartHandler returns the aggregated shopping list as a text attachment.
// @Summary Download shopping list
// @Tags recipes
// @Produce plain
// @Security BearerAuth
// @Success 200 {string} string "Shopping list"
// @Failure 400 {object} handlers.ErrorResponse "Cart is empty"
// @Router /recipes/download_shopping_cart/ [get]
func NewDownloadShoppingCartHandler(svc ShoppingListDownloader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		filename, body, err := svc.Download(r.Context(), userID)
		if err != nil {
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	}
}
