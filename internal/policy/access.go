// Package policy decides who may do what with a recipe.
package policy

import (
	"github.com/google/uuid"
	"github.com/sbilibin2017/foodgram-backend/internal/models"
)

// Action is an operation on a recipe.
type Action string

const (
	Read   Action = "read"
	Create Action = "create"
	Update Action = "update"
	Delete Action = "delete"
)

// Allowed reports whether subject may perform action on recipe. A nil
// subject is an anonymous caller; recipe is ignored for Read and Create.
func Allowed(action Action, subject *uuid.UUID, recipe *models.Recipe) bool {
	switch action {
	case Read:
		return true
	case Create:
		return subject != nil
	case Update, Delete:
		return subject != nil && recipe != nil && recipe.AuthorID == *subject
	default:
		return false
	}
}
