package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/sbilibin2017/foodgram-backend/internal/logger"
	"github.com/sbilibin2017/foodgram-backend/internal/models"
)

//go:generate mockgen -source=shopping_list.go -destination=shopping_list_mock.go -package=services

// ShoppingCartReader reads the contents of a user's shopping cart.
type ShoppingCartReader interface {
	ShoppingLines(ctx context.Context, userID uuid.UUID) ([]models.ShoppingLine, error)
	ListInCart(ctx context.Context, userID uuid.UUID) ([]models.RecipeShort, error)
}

// ShoppingListService builds the downloadable shopping list report.
type ShoppingListService struct {
	users UserGetter
	cart  ShoppingCartReader
	now   func() time.Time
}

// NewShoppingListService creates a ShoppingListService using the wall clock.
func NewShoppingListService(users UserGetter, cart ShoppingCartReader) *ShoppingListService {
	return &ShoppingListService{
		users: users,
		cart:  cart,
		now:   time.Now,
	}
}

// WithClock replaces the clock used for report dates.
func (s *ShoppingListService) WithClock(now func() time.Time) *ShoppingListService {
	s.now = now
	return s
}

// Download returns the report file name and content for the user's cart.
func (s *ShoppingListService) Download(ctx context.Context, userID uuid.UUID) (string, []byte, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "error", err)
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrUserNotFound
	}

	recipes, err := s.cart.ListInCart(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list shopping cart", "userID", userID, "error", err)
		return "", nil, err
	}
	if len(recipes) == 0 {
		return "", nil, ErrShoppingCartEmpty
	}

	lines, err := s.cart.ShoppingLines(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get shopping lines", "userID", userID, "error", err)
		return "", nil, err
	}

	names := make([]string, 0, len(recipes))
	for _, r := range recipes {
		names = append(names, r.Name)
	}

	report := RenderShoppingList(user.DisplayName(), s.now(), AggregateShoppingLines(lines), names)
	logger.Log.Infow("shopping list built", "userID", userID, "recipes", len(recipes), "lines", len(lines))
	return user.Username + "_shopping_list.txt", []byte(report), nil
}

// AggregateShoppingLines sums amounts per (name, unit) and orders the result
// by name, then unit. Names are compared case-insensitively; merged lines keep
// the first spelling seen.
func AggregateShoppingLines(lines []models.ShoppingLine) []models.ShoppingItem {
	type key struct{ name, unit string }
	index := map[key]int{}
	items := make([]models.ShoppingItem, 0, len(lines))
	for _, l := range lines {
		k := key{strings.ToLower(l.Name), l.MeasurementUnit}
		i, ok := index[k]
		if !ok {
			i = len(items)
			index[k] = i
			items = append(items, models.ShoppingItem{Name: l.Name, MeasurementUnit: l.MeasurementUnit})
		}
		items[i].Total += l.Amount
	}

	sort.Slice(items, func(i, j int) bool {
		a, b := strings.ToLower(items[i].Name), strings.ToLower(items[j].Name)
		if a != b {
			return a < b
		}
		return items[i].MeasurementUnit < items[j].MeasurementUnit
	})
	return items
}

// RenderShoppingList formats the plain-text report.
func RenderShoppingList(displayName string, now time.Time, items []models.ShoppingItem, recipes []string) string {
	header := fmt.Sprintf("Shopping list for: %s\n\nDate: %s\n\n", displayName, now.Format("2006-01-02"))

	products := make([]string, 0, len(items))
	for i, item := range items {
		products = append(products, fmt.Sprintf("%d. %s (%s) - %d", i+1, capitalize(item.Name), item.MeasurementUnit, item.Total))
	}

	return strings.Join([]string{
		header,
		"Products:",
		strings.Join(products, "\n"),
		"Recipes:",
		strings.Join(recipes, "\n"),
		fmt.Sprintf("\n\nFoodgram (%d)", now.Year()),
	}, "\n")
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	r := []rune(strings.ToLower(s))
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
