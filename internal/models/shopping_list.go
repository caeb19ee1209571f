package models

// ShoppingLine is a single ingredient line of a recipe in a user's cart.
type ShoppingLine struct {
	Name            string `db:"name"`
	MeasurementUnit string `db:"measurement_unit"`
	Amount          int    `db:"amount"`
}

// ShoppingItem is an aggregated line of the shopping list.
type ShoppingItem struct {
	Name            string
	MeasurementUnit string
	Total           int
}
