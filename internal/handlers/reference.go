package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/foodgram-backend/internal/models"
)

//go:generate mockgen -source=reference.go -destination=reference_mock.go -package=handlers

// TagGetter reads tags.
type TagGetter interface {
	List(ctx context.Context) ([]models.Tag, error)
	Get(ctx context.Context, id int64) (*models.Tag, error)
}

// IngredientGetter reads ingredients.
type IngredientGetter interface {
	List(ctx context.Context, namePrefix string) ([]models.Ingredient, error)
	Get(ctx context.Context, id int64) (*models.Ingredient, error)
}

// NewTagListHandler lists all tags.
// @Summary List tags
// @Tags tags
// @Produce json
// @Success 200 {array} models.Tag
// @Router /tags/ [get]
func NewTagListHandler(svc TagGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tags, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		if tags == nil {
			tags = []models.Tag{}
		}
		writeJSON(w, http.StatusOK, tags)
	}
}

// NewTagHandler returns one tag.
// @Summary Get tag
// @Tags tags
// @Produce json
// @Param id path int true "Tag ID"
// @Success 200 {object} models.Tag
// @Failure 404 {object} handlers.ErrorResponse
// @Router /tags/{id}/ [get]
func NewTagHandler(svc TagGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := int64Param(w, r, "id")
		if !ok {
			return
		}

		tag, err := svc.Get(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, tag)
	}
}

// NewIngredientListHandler lists ingredients, optionally by name prefix.
// @Summary List ingredients
// @Tags ingredients
// @Produce json
// @Param name query string false "Name prefix"
// @Success 200 {array} models.Ingredient
// @Router /ingredients/ [get]
func NewIngredientListHandler(svc IngredientGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), r.URL.Query().Get("name"))
		if err != nil {
			writeError(w, err)
			return
		}
		if items == nil {
			items = []models.Ingredient{}
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// NewIngredientHandler returns one ingredient.
// @Summary Get ingredient
// @Tags ingredients
// @Produce json
// @Param id path int true "Ingredient ID"
// @Success 200 {object} models.Ingredient
// @Failure 404 {object} handlers.ErrorResponse
// @Router /ingredients/{id}/ [get]
func NewIngredientHandler(svc IngredientGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := int64Param(w, r, "id")
		if !ok {
			return
		}

		item, err := svc.Get(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, item)
	}
}
