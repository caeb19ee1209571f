package models

import (
	"time"

	"github.com/google/uuid"
)

// Recipe represents a recipe row in the database
type Recipe struct {
	ID          int64     `json:"id" db:"id"`                     // Primary key
	AuthorID    uuid.UUID `json:"author_id" db:"author_id"`       // Owner of the recipe
	Name        string    `json:"name" db:"name"`                 // Dish name
	Text        string    `json:"text" db:"text"`                 // Description
	Image       string    `json:"image" db:"image"`               // Image URL returned by the media store
	CookingTime int       `json:"cooking_time" db:"cooking_time"` // Minutes, at least 1
	CreatedAt   time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
}

// RecipeInput carries the fields of a recipe create call.
type RecipeInput struct {
	Name        string
	Text        string
	Image       string
	CookingTime int
	Tags        []int64
	Ingredients []IngredientAmount
}

// RecipeUpdate carries a recipe patch. Nil scalars keep their stored value;
// tags and ingredients always replace the stored sets.
type RecipeUpdate struct {
	Name        *string
	Text        *string
	Image       *string
	CookingTime *int
	Tags        []int64
	Ingredients []IngredientAmount
}

// RecipeDetail is the full read representation of a recipe.
type RecipeDetail struct {
	ID               int64              `json:"id"`
	Tags             []Tag              `json:"tags"`
	Author           UserProfile        `json:"author"`
	Ingredients      []RecipeIngredient `json:"ingredients"`
	IsFavorited      bool               `json:"is_favorited"`
	IsInShoppingCart bool               `json:"is_in_shopping_cart"`
	Name             string             `json:"name"`
	Image            string             `json:"image"`
	Text             string             `json:"text"`
	CookingTime      int                `json:"cooking_time"`
}

// RecipeShort is the compact representation used in favorites, cart and subscriptions.
type RecipeShort struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Image       string `json:"image" db:"image"`
	CookingTime int    `json:"cooking_time" db:"cooking_time"`
}

// RecipeFilter narrows a recipe listing. Favorited and InShoppingCart are
// only honoured when Viewer is set.
type RecipeFilter struct {
	Author         *uuid.UUID
	TagSlugs       []string
	Viewer         *uuid.UUID
	Favorited      *bool
	InShoppingCart *bool
	Limit          int
	Offset         int
}
