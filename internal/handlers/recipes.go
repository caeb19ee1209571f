package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/foodgram-backend/internal/middlewares"
	"github.com/sbilibin2017/foodgram-backend/internal/models"
)

//go:generate mockgen -source=recipes.go -destination=recipes_mock.go -package=handlers

// RecipeReader reads recipes on behalf of a possibly anonymous viewer.
type RecipeReader interface {
	Get(ctx context.Context, viewer *uuid.UUID, recipeID int64) (*models.RecipeDetail, error)
	List(ctx context.Context, viewer *uuid.UUID, filter models.RecipeFilter) ([]models.RecipeDetail, int, error)
}

// RecipeWriter creates, updates and deletes recipes.
type RecipeWriter interface {
	Create(ctx context.Context, subject *uuid.UUID, in models.RecipeInput) (*models.RecipeDetail, error)
	Update(ctx context.Context, subject *uuid.UUID, recipeID int64, upd models.RecipeUpdate) (*models.RecipeDetail, error)
	Delete(ctx context.Context, subject *uuid.UUID, recipeID int64) error
}

// RecipeRequest represents the JSON body of a recipe create call
// swagger:model RecipeRequest
type RecipeRequest struct {
	// Ingredient lines
	// required: true
	Ingredients []models.IngredientAmount `json:"ingredients"`

	// Tag ids
	// required: true
	Tags []int64 `json:"tags"`

	// Image as a base64 data URI
	// required: true
	Image string `json:"image"`

	// Dish name
	// required: true
	Name string `json:"name"`

	// Description
	// required: true
	Text string `json:"text"`

	// Cooking time in minutes
	// required: true
	// default: 1
	CookingTime int `json:"cooking_time"`
}

// RecipePatchRequest represents the JSON body of a recipe update.
// Omitted scalars keep their stored values; tags and ingredients are always replaced.
// swagger:model RecipePatchRequest
type RecipePatchRequest struct {
	Ingredients []models.IngredientAmount `json:"ingredients"`
	Tags        []int64                   `json:"tags"`
	Image       *string                   `json:"image"`
	Name        *string                   `json:"name"`
	Text        *string                   `json:"text"`
	CookingTime *int                      `json:"cooking_time"`
}

// ShortLinkResponse carries a short link to a recipe
// swagger:model ShortLinkResponse
type ShortLinkResponse struct {
	ShortLink string `json:"short-link"`
}

// recipeFilter builds a listing filter from query parameters.
func recipeFilter(r *http.Request, p pagination) (models.RecipeFilter, bool) {
	q := r.URL.Query()
	filter := models.RecipeFilter{
		Viewer:         middlewares.UserIDFromContext(r.Context()),
		TagSlugs:       q["tags"],
		Favorited:      flagParam(q.Get("is_favorited")),
		InShoppingCart: flagParam(q.Get("is_in_shopping_cart")),
		Limit:          p.limit,
		Offset:         p.offset(),
	}
	if author := q.Get("author"); author != "" {
		id, err := uuid.Parse(author)
		if err != nil {
			return filter, false
		}
		filter.Author = &id
	}
	return filter, true
}

// flagParam parses "1"/"0" (and true/false); anything else disables the filter.
func flagParam(v string) *bool {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil
	}
	return &b
}

// NewRecipeListHandler lists recipes, newest first.
// @Summary List recipes
// @Tags recipes
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param author query string false "Author ID"
// @Param tags query []string false "Tag slugs" collectionFormat(multi)
// @Param is_favorited query int false "Only favorites (1) or non-favorites (0)"
// @Param is_in_shopping_cart query int false "Only recipes in the cart (1) or not (0)"
// @Success 200 {object} handlers.Page[models.RecipeDetail]
// @Failure 400 {object} handlers.ValidationErrorResponse "Malformed author"
// @Router /recipes/ [get]
func NewRecipeListHandler(svc RecipeReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := readPagination(r, DefaultPageSize)
		filter, ok := recipeFilter(r, p)
		if !ok {
			writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Errors: map[string][]string{"author": {"Enter a valid UUID."}},
			})
			return
		}

		recipes, total, err := svc.List(r.Context(), filter.Viewer, filter)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, newPage(r, p, total, recipes))
	}
}

// NewRecipeHandler returns one recipe.
// @Summary Get recipe
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} models.RecipeDetail
// @Failure 404 {object} handlers.ErrorResponse
// @Router /recipes/{id}/ [get]
func NewRecipeHandler(svc RecipeReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := int64Param(w, r, "id")
		if !ok {
			return
		}

		recipe, err := svc.Get(r.Context(), middlewares.UserIDFromContext(r.Context()), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, recipe)
	}
}

// NewCreateRecipeHandler creates a recipe authored by the current user.
// @Summary Create recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param recipeRequest body handlers.RecipeRequest true "Recipe"
// @Success 201 {object} models.RecipeDetail
// @Failure 400 {object} handlers.ValidationErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Router /recipes/ [post]
func NewCreateRecipeHandler(svc RecipeWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RecipeRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		recipe, err := svc.Create(r.Context(), middlewares.UserIDFromContext(r.Context()), models.RecipeInput{
			Name:        req.Name,
			Text:        req.Text,
			Image:       req.Image,
			CookingTime: req.CookingTime,
			Tags:        req.Tags,
			Ingredients: req.Ingredients,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, recipe)
	}
}

// NewUpdateRecipeHandler patches a recipe owned by the current user.
// @Summary Update recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Param recipePatchRequest body handlers.RecipePatchRequest true "Recipe patch"
// @Success 200 {object} models.RecipeDetail
// @Failure 400 {object} handlers.ValidationErrorResponse
// @Failure 403 {object} handlers.ErrorResponse "Not the author"
// @Failure 404 {object} handlers.ErrorResponse
// @Router /recipes/{id}/ [patch]
func NewUpdateRecipeHandler(svc RecipeWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := int64Param(w, r, "id")
		if !ok {
			return
		}

		var req RecipePatchRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		recipe, err := svc.Update(r.Context(), middlewares.UserIDFromContext(r.Context()), id, models.RecipeUpdate{
			Name:        req.Name,
			Text:        req.Text,
			Image:       req.Image,
			CookingTime: req.CookingTime,
			Tags:        req.Tags,
			Ingredients: req.Ingredients,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, recipe)
	}
}

// NewDeleteRecipeHandler deletes a recipe owned by the current user.
// @Summary Delete recipe
// @Tags recipes
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 204
// @Failure 403 {object} handlers.ErrorResponse "Not the author"
// @Failure 404 {object} handlers.ErrorResponse
// @Router /recipes/{id}/ [delete]
func NewDeleteRecipeHandler(svc RecipeWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := int64Param(w, r, "id")
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), middlewares.UserIDFromContext(r.Context()), id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// NewShortLinkHandler returns a short link to an existing recipe.
// @Summary Recipe short link
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} handlers.ShortLinkResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /recipes/{id}/get-link/ [get]
func NewShortLinkHandler(svc RecipeReader, baseURL string) http.HandlerFunc {
	baseURL = strings.TrimRight(baseURL, "/")
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := int64Param(w, r, "id")
		if !ok {
			return
		}

		if _, err := svc.Get(r.Context(), middlewares.UserIDFromContext(r.Context()), id); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ShortLinkResponse{
			ShortLink: fmt.Sprintf("%s/s/%d/", baseURL, id),
		})
	}
}

// NewShortLinkRedirectHandler resolves a short link to the recipe page.
func NewShortLinkRedirectHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := int64Param(w, r, "id")
		if !ok {
			return
		}
		http.Redirect(w, r, fmt.Sprintf("/recipes/%d/", id), http.StatusFound)
	}
}
