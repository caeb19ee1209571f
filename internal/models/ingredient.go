package models

// Ingredient is a product with its measurement unit. The (name, unit) pair is unique.
type Ingredient struct {
	ID              int64  `json:"id" db:"id"`
	Name            string `json:"name" db:"name"`
	MeasurementUnit string `json:"measurement_unit" db:"measurement_unit"`
}

// IngredientAmount is one requested ingredient line of a recipe write.
type IngredientAmount struct {
	ID     int64 `json:"id"`
	Amount int   `json:"amount"`
}

// RecipeIngredient is an ingredient line of a stored recipe.
type RecipeIngredient struct {
	ID              int64  `json:"id" db:"ingredient_id"`
	Name            string `json:"name" db:"name"`
	MeasurementUnit string `json:"measurement_unit" db:"measurement_unit"`
	Amount          int    `json:"amount" db:"amount"`
}
