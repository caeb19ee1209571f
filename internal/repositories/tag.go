package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/foodgram-backend/internal/models"
)

// TagRepository reads and loads tags.
type TagRepository struct {
	db *sqlx.DB
}

func NewTagRepository(db *sqlx.DB) *TagRepository {
	return &TagRepository{db: db}
}

// List returns all tags ordered by name.
func (r *TagRepository) List(ctx context.Context) ([]models.Tag, error) {
	const query = `SELECT id, name, slug FROM tags ORDER BY name`

	tags := []models.Tag{}
	err := sqlx.SelectContext(ctx, conn(ctx, r.db), &tags, query)
	logQuery(query, nil, len(tags), err)
	return tags, err
}

// GetByID returns the tag or nil when it does not exist.
func (r *TagRepository) GetByID(ctx context.Context, id int64) (*models.Tag, error) {
	const query = `SELECT id, name, slug FROM tags WHERE id = $1`

	var tag models.Tag
	err := sqlx.GetContext(ctx, conn(ctx, r.db), &tag, query, id)
	logQuery(query, []any{id}, tag, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// ExistingIDs returns the subset of ids present in the tags table.
func (r *TagRepository) ExistingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	return existingIDs(ctx, conn(ctx, r.db), "tags", ids)
}

// ListByRecipeIDs returns the tags of every given recipe keyed by recipe id.
func (r *TagRepository) ListByRecipeIDs(ctx context.Context, recipeIDs []int64) (map[int64][]models.Tag, error) {
	result := make(map[int64][]models.Tag, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return result, nil
	}

	query, args, err := psql.
		Select("rt.recipe_id", "t.id", "t.name", "t.slug").
		From("recipe_tags rt").
		Join("tags t ON t.id = rt.tag_id").
		Where(sq.Eq{"rt.recipe_id": recipeIDs}).
		OrderBy("t.name").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []struct {
		RecipeID int64 `db:"recipe_id"`
		models.Tag
	}
	err = sqlx.SelectContext(ctx, conn(ctx, r.db), &rows, query, args...)
	logQuery(query, args, len(rows), err)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.RecipeID] = append(result[row.RecipeID], row.Tag)
	}
	return result, nil
}

// BulkInsert inserts tags, skipping those whose name or slug already exists.
// It returns the number of inserted rows.
func (r *TagRepository) BulkInsert(ctx context.Context, tags []models.Tag) (int64, error) {
	if len(tags) == 0 {
		return 0, nil
	}

	builder := psql.Insert("tags").Columns("name", "slug").Suffix("ON CONFLICT DO NOTHING")
	for _, t := range tags {
		builder = builder.Values(t.Name, t.Slug)
	}
	return execInsert(ctx, conn(ctx, r.db), builder)
}

// existingIDs selects which of ids exist in table.
func existingIDs(ctx context.Context, ext sqlx.ExtContext, table string, ids []int64) ([]int64, error) {
	found := []int64{}
	if len(ids) == 0 {
		return found, nil
	}

	query, args, err := psql.Select("id").From(table).Where(sq.Eq{"id": ids}).ToSql()
	if err != nil {
		return nil, err
	}

	err = sqlx.SelectContext(ctx, ext, &found, query, args...)
	logQuery(query, args, found, err)
	return found, err
}

// execInsert runs an insert builder and returns the affected row count.
func execInsert(ctx context.Context, ext sqlx.ExtContext, builder sq.InsertBuilder) (int64, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, err
	}

	res, err := ext.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return 0, fmt.Errorf("insert: %w", mapWriteError(err))
	}
	return rowsAffected, nil
}
