package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Not found errors.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrRecipeNotFound       = errors.New("recipe not found")
	ErrTagNotFound          = errors.New("tag not found")
	ErrIngredientNotFound   = errors.New("ingredient not found")
	ErrSubscriptionNotFound = errors.New("no such subscription")
	ErrNotInFavorites       = errors.New("recipe is not in favorites")
	ErrNotInShoppingCart    = errors.New("recipe is not in shopping cart")
)

// State conflict errors. The stored state is left untouched.
var (
	ErrSelfSubscription      = errors.New("cannot subscribe to self")
	ErrAlreadySubscribed     = errors.New("already subscribed")
	ErrAlreadyInFavorites    = errors.New("recipe is already in favorites")
	ErrAlreadyInShoppingCart = errors.New("recipe is already in shopping cart")
	ErrShoppingCartEmpty     = errors.New("shopping cart is empty")
)

// Access errors.
var (
	ErrAuthenticationRequired = errors.New("authentication credentials were not provided")
	ErrForbidden              = errors.New("you do not have permission to perform this action")
)

// ValidationError reports malformed input, keyed by field name.
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError returns a ValidationError with a single field message.
func NewValidationError(field, message string) *ValidationError {
	e := &ValidationError{Fields: map[string][]string{}}
	e.Add(field, message)
	return e
}

// Add appends a message for field.
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = map[string][]string{}
	}
	e.Fields[field] = append(e.Fields[field], message)
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], ", ")))
	}
	return strings.Join(parts, "; ")
}
