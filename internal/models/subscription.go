package models

// Subscription is an author followed by the current user together with a
// preview of the author's recipes.
type Subscription struct {
	UserProfile
	Recipes      []RecipeShort `json:"recipes"`
	RecipesCount int           `json:"recipes_count"`
}
