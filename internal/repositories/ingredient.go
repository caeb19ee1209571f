package repositories

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/foodgram-backend/internal/models"
)

// IngredientRepository reads and loads ingredients.
type IngredientRepository struct {
	db *sqlx.DB
}

func NewIngredientRepository(db *sqlx.DB) *IngredientRepository {
	return &IngredientRepository{db: db}
}

// List returns ingredients ordered by name, optionally only those whose
// name starts with namePrefix.
func (r *IngredientRepository) List(ctx context.Context, namePrefix string) ([]models.Ingredient, error) {
	builder := psql.Select("id", "name", "measurement_unit").From("ingredients").OrderBy("name")
	if namePrefix != "" {
		builder = builder.Where(sq.Like{"name": escapeLike(namePrefix) + "%"})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	ingredients := []models.Ingredient{}
	err = sqlx.SelectContext(ctx, conn(ctx, r.db), &ingredients, query, args...)
	logQuery(query, args, len(ingredients), err)
	return ingredients, err
}

// GetByID returns the ingredient or nil when it does not exist.
func (r *IngredientRepository) GetByID(ctx context.Context, id int64) (*models.Ingredient, error) {
	const query = `SELECT id, name, measurement_unit FROM ingredients WHERE id = $1`

	var ingredient models.Ingredient
	err := sqlx.GetContext(ctx, conn(ctx, r.db), &ingredient, query, id)
	logQuery(query, []any{id}, ingredient, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// ExistingIDs returns the subset of ids present in the ingredients table.
func (r *IngredientRepository) ExistingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	return existingIDs(ctx, conn(ctx, r.db), "ingredients", ids)
}

// BulkInsert inserts ingredients, skipping existing (name, unit) pairs.
// It returns the number of inserted rows.
func (r *IngredientRepository) BulkInsert(ctx context.Context, ingredients []models.Ingredient) (int64, error) {
	if len(ingredients) == 0 {
		return 0, nil
	}

	builder := psql.Insert("ingredients").Columns("name", "measurement_unit").Suffix("ON CONFLICT DO NOTHING")
	for _, i := range ingredients {
		builder = builder.Values(i.Name, i.MeasurementUnit)
	}
	return execInsert(ctx, conn(ctx, r.db), builder)
}

func escapeLike(s string) string {
	r := []rune{}
	for _, c := range s {
		if c == '%' || c == '_' || c == '\\' {
			r = append(r, '\\')
		}
		r = append(r, c)
	}
	return string(r)
}
