package models

// Recipe event operations.
const (
	RecipeCreated = "recipe.created"
	RecipeUpdated = "recipe.updated"
	RecipeDeleted = "recipe.deleted"
)

// RecipeEvent is published to Kafka after a recipe write commits.
type RecipeEvent struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier of the event.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix time (seconds) of the write.
	RecipeID  int64  `json:"recipe_id"` // RecipeID is the recipe that changed.
	AuthorID  string `json:"author_id"` // AuthorID is the user who performed the write.
	Operation string `json:"operation"` // Operation is one of recipe.created, recipe.updated, recipe.deleted.
}
