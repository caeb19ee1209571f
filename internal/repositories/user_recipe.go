package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// UserRecipeRepository stores membership-only (user, recipe) pairs. The same
// type backs favorites and the shopping cart; only the table differs.
type UserRecipeRepository struct {
	db    *sqlx.DB
	table string
}

// NewFavoriteRepository returns a repository over the favorites table.
func NewFavoriteRepository(db *sqlx.DB) *UserRecipeRepository {
	return &UserRecipeRepository{db: db, table: "favorites"}
}

// NewShoppingCartRepository returns a repository over the shopping_carts table.
func NewShoppingCartRepository(db *sqlx.DB) *UserRecipeRepository {
	return &UserRecipeRepository{db: db, table: "shopping_carts"}
}

// Add stores the pair. created is false when it already existed.
func (r *UserRecipeRepository) Add(ctx context.Context, userID uuid.UUID, recipeID int64) (bool, error) {
	query := `
		INSERT INTO ` + r.table + ` (user_id, recipe_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, recipe_id) DO NOTHING
		RETURNING id
	`

	var id int64
	err := sqlx.GetContext(ctx, conn(ctx, r.db), &id, query, userID, recipeID)
	logQuery(query, []any{userID, recipeID}, id, err)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("insert into %s: %w", r.table, mapWriteError(err))
	}
	return true, nil
}

// Remove deletes the pair and reports whether it existed.
func (r *UserRecipeRepository) Remove(ctx context.Context, userID uuid.UUID, recipeID int64) (bool, error) {
	query := `DELETE FROM ` + r.table + ` WHERE user_id = $1 AND recipe_id = $2`
	return execDelete(ctx, conn(ctx, r.db), query, userID, recipeID)
}

// ContainsAny returns which of recipeIDs the user has in this list.
func (r *UserRecipeRepository) ContainsAny(ctx context.Context, userID uuid.UUID, recipeIDs []int64) (map[int64]bool, error) {
	result := make(map[int64]bool, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return result, nil
	}

	query, args, err := psql.Select("recipe_id").
		From(r.table).
		Where(sq.Eq{"user_id": userID.String()}).
		Where(sq.Eq{"recipe_id": recipeIDs}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var ids []int64
	err = sqlx.SelectContext(ctx, conn(ctx, r.db), &ids, query, args...)
	logQuery(query, args, ids, err)
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		result[id] = true
	}
	return result, nil
}
