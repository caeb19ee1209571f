package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/foodgram-backend/internal/models"
)

// RecipeWriteRepository handles recipe write operations. Every method runs in
// the transaction carried by ctx when there is one.
type RecipeWriteRepository struct {
	db *sqlx.DB
}

func NewRecipeWriteRepository(db *sqlx.DB) *RecipeWriteRepository {
	return &RecipeWriteRepository{db: db}
}

// Create inserts the recipe row and returns its id.
func (r *RecipeWriteRepository) Create(ctx context.Context, recipe *models.Recipe) (int64, error) {
	const query = `
		INSERT INTO recipes (author_id, name, text, image, cooking_time, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id
	`
	args := []any{recipe.AuthorID, recipe.Name, recipe.Text, recipe.Image, recipe.CookingTime}

	var id int64
	err := sqlx.GetContext(ctx, conn(ctx, r.db), &id, query, args...)
	logQuery(query, args, id, err)

	if err != nil {
		return 0, fmt.Errorf("insert recipe: %w", mapWriteError(err))
	}
	return id, nil
}

// Update overwrites the scalar fields of the recipe.
func (r *RecipeWriteRepository) Update(ctx context.Context, recipe *models.Recipe) error {
	const query = `
		UPDATE recipes
		SET name = $2, text = $3, image = $4, cooking_time = $5
		WHERE id = $1
	`
	args := []any{recipe.ID, recipe.Name, recipe.Text, recipe.Image, recipe.CookingTime}

	res, err := conn(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return fmt.Errorf("update recipe: %w", err)
	}
	return nil
}

// Delete removes the recipe; ingredient lines, tags, favorites and cart
// entries go with it through ON DELETE CASCADE.
func (r *RecipeWriteRepository) Delete(ctx context.Context, recipeID int64) (bool, error) {
	const query = `DELETE FROM recipes WHERE id = $1`
	return execDelete(ctx, conn(ctx, r.db), query, recipeID)
}

// SetTags replaces the tag associations of the recipe.
func (r *RecipeWriteRepository) SetTags(ctx context.Context, recipeID int64, tagIDs []int64) error {
	const query = `DELETE FROM recipe_tags WHERE recipe_id = $1`
	if _, err := execDelete(ctx, conn(ctx, r.db), query, recipeID); err != nil {
		return fmt.Errorf("clear recipe tags: %w", err)
	}
	if len(tagIDs) == 0 {
		return nil
	}

	builder := psql.Insert("recipe_tags").Columns("recipe_id", "tag_id")
	for _, id := range tagIDs {
		builder = builder.Values(recipeID, id)
	}
	_, err := execInsert(ctx, conn(ctx, r.db), builder)
	return err
}

// DeleteIngredients removes every ingredient line of the recipe.
func (r *RecipeWriteRepository) DeleteIngredients(ctx context.Context, recipeID int64) error {
	const query = `DELETE FROM recipe_ingredients WHERE recipe_id = $1`
	if _, err := execDelete(ctx, conn(ctx, r.db), query, recipeID); err != nil {
		return fmt.Errorf("clear recipe ingredients: %w", err)
	}
	return nil
}

// AddIngredients bulk-inserts ingredient lines for the recipe.
func (r *RecipeWriteRepository) AddIngredients(ctx context.Context, recipeID int64, items []models.IngredientAmount) error {
	if len(items) == 0 {
		return nil
	}

	builder := psql.Insert("recipe_ingredients").Columns("recipe_id", "ingredient_id", "amount")
	for _, item := range items {
		builder = builder.Values(recipeID, item.ID, item.Amount)
	}
	_, err := execInsert(ctx, conn(ctx, r.db), builder)
	return err
}

// RecipeReadRepository handles recipe read operations
type RecipeReadRepository struct {
	db *sqlx.DB
}

func NewRecipeReadRepository(db *sqlx.DB) *RecipeReadRepository {
	return &RecipeReadRepository{db: db}
}

var recipeColumns = []string{
	"r.id", "r.author_id", "r.name", "r.text", "r.image", "r.cooking_time", "r.created_at",
}

// GetByID returns the recipe or nil when it does not exist.
func (r *RecipeReadRepository) GetByID(ctx context.Context, recipeID int64) (*models.Recipe, error) {
	query, args, err := psql.Select(recipeColumns...).From("recipes r").Where(sq.Eq{"r.id": recipeID}).ToSql()
	if err != nil {
		return nil, err
	}

	var recipe models.Recipe
	err = sqlx.GetContext(ctx, conn(ctx, r.db), &recipe, query, args...)
	logQuery(query, args, recipe.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// List returns one page of recipes matching the filter, newest first,
// together with the total number of matches.
func (r *RecipeReadRepository) List(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, int, error) {
	countQuery, countArgs, err := applyRecipeFilter(psql.Select("COUNT(*)").From("recipes r"), filter).ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total int
	err = sqlx.GetContext(ctx, conn(ctx, r.db), &total, countQuery, countArgs...)
	logQuery(countQuery, countArgs, total, err)
	if err != nil {
		return nil, 0, err
	}

	builder := applyRecipeFilter(psql.Select(recipeColumns...).From("recipes r"), filter).
		OrderBy("r.created_at DESC", "r.id DESC")
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	recipes := []models.Recipe{}
	err = sqlx.SelectContext(ctx, conn(ctx, r.db), &recipes, query, args...)
	logQuery(query, args, len(recipes), err)
	if err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

func applyRecipeFilter(b sq.SelectBuilder, f models.RecipeFilter) sq.SelectBuilder {
	if f.Author != nil {
		b = b.Where(sq.Eq{"r.author_id": f.Author.String()})
	}
	if len(f.TagSlugs) > 0 {
		sub, args, _ := sq.Select("rt.recipe_id").
			From("recipe_tags rt").
			Join("tags t ON t.id = rt.tag_id").
			Where(sq.Eq{"t.slug": f.TagSlugs}).
			ToSql()
		b = b.Where(sq.Expr("r.id IN ("+sub+")", args...))
	}
	if f.Viewer != nil {
		b = applyMembership(b, "favorites", *f.Viewer, f.Favorited)
		b = applyMembership(b, "shopping_carts", *f.Viewer, f.InShoppingCart)
	}
	return b
}

func applyMembership(b sq.SelectBuilder, table string, userID uuid.UUID, want *bool) sq.SelectBuilder {
	if want == nil {
		return b
	}
	op := "IN"
	if !*want {
		op = "NOT IN"
	}
	return b.Where(sq.Expr("r.id "+op+" (SELECT recipe_id FROM "+table+" WHERE user_id = ?)", userID))
}

// IngredientsByRecipeIDs returns the ingredient lines of every given recipe
// keyed by recipe id.
func (r *RecipeReadRepository) IngredientsByRecipeIDs(ctx context.Context, recipeIDs []int64) (map[int64][]models.RecipeIngredient, error) {
	result := make(map[int64][]models.RecipeIngredient, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return result, nil
	}

	query, args, err := psql.
		Select("ri.recipe_id", "ri.ingredient_id", "i.name", "i.measurement_unit", "ri.amount").
		From("recipe_ingredients ri").
		Join("ingredients i ON i.id = ri.ingredient_id").
		Where(sq.Eq{"ri.recipe_id": recipeIDs}).
		OrderBy("ri.id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []struct {
		RecipeID int64 `db:"recipe_id"`
		models.RecipeIngredient
	}
	err = sqlx.SelectContext(ctx, conn(ctx, r.db), &rows, query, args...)
	logQuery(query, args, len(rows), err)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.RecipeID] = append(result[row.RecipeID], row.RecipeIngredient)
	}
	return result, nil
}

// ListShortByAuthor returns up to limit of the author's newest recipes; a
// non-positive limit returns all of them.
func (r *RecipeReadRepository) ListShortByAuthor(ctx context.Context, authorID uuid.UUID, limit int) ([]models.RecipeShort, error) {
	builder := psql.Select("r.id", "r.name", "r.image", "r.cooking_time").
		From("recipes r").
		Where(sq.Eq{"r.author_id": authorID.String()}).
		OrderBy("r.created_at DESC", "r.id DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	recipes := []models.RecipeShort{}
	err = sqlx.SelectContext(ctx, conn(ctx, r.db), &recipes, query, args...)
	logQuery(query, args, len(recipes), err)
	return recipes, err
}

// CountByAuthor returns how many recipes the author has published.
func (r *RecipeReadRepository) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	const query = `SELECT COUNT(*) FROM recipes WHERE author_id = $1`

	var count int
	err := sqlx.GetContext(ctx, conn(ctx, r.db), &count, query, authorID)
	logQuery(query, []any{authorID}, count, err)
	return count, err
}

// ShoppingLines returns every ingredient line of every recipe in the user's cart.
func (r *RecipeReadRepository) ShoppingLines(ctx context.Context, userID uuid.UUID) ([]models.ShoppingLine, error) {
	const query = `
		SELECT i.name, i.measurement_unit, ri.amount
		FROM shopping_carts sc
		JOIN recipe_ingredients ri ON ri.recipe_id = sc.recipe_id
		JOIN ingredients i ON i.id = ri.ingredient_id
		WHERE sc.user_id = $1
	`

	lines := []models.ShoppingLine{}
	err := sqlx.SelectContext(ctx, conn(ctx, r.db), &lines, query, userID)
	logQuery(query, []any{userID}, len(lines), err)
	return lines, err
}

// ListInCart returns the recipes in the user's shopping cart ordered by name.
func (r *RecipeReadRepository) ListInCart(ctx context.Context, userID uuid.UUID) ([]models.RecipeShort, error) {
	const query = `
		SELECT r.id, r.name, r.image, r.cooking_time
		FROM shopping_carts sc
		JOIN recipes r ON r.id = sc.recipe_id
		WHERE sc.user_id = $1
		ORDER BY r.name
	`

	recipes := []models.RecipeShort{}
	err := sqlx.SelectContext(ctx, conn(ctx, r.db), &recipes, query, userID)
	logQuery(query, []any{userID}, len(recipes), err)
	return recipes, err
}

// execDelete runs a delete statement and reports whether any row was removed.
func execDelete(ctx context.Context, ext sqlx.ExtContext, query string, args ...any) (bool, error) {
	res, err := ext.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
