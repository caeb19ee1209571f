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

// SubscriptionRepository stores (author, subscriber) follow pairs.
type SubscriptionRepository struct {
	db *sqlx.DB
}

func NewSubscriptionRepository(db *sqlx.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Exists reports whether subscriber follows author.
func (r *SubscriptionRepository) Exists(ctx context.Context, authorID, subscriberID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM subscriptions WHERE author_id = $1 AND subscriber_id = $2)`

	var exists bool
	err := sqlx.GetContext(ctx, conn(ctx, r.db), &exists, query, authorID, subscriberID)
	logQuery(query, []any{authorID, subscriberID}, exists, err)
	return exists, err
}

// Create stores the pair. created is false when it already existed.
func (r *SubscriptionRepository) Create(ctx context.Context, authorID, subscriberID uuid.UUID) (bool, error) {
	const query = `
		INSERT INTO subscriptions (author_id, subscriber_id)
		VALUES ($1, $2)
		ON CONFLICT (author_id, subscriber_id) DO NOTHING
		RETURNING id
	`

	var id int64
	err := sqlx.GetContext(ctx, conn(ctx, r.db), &id, query, authorID, subscriberID)
	logQuery(query, []any{authorID, subscriberID}, id, err)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("insert subscription: %w", mapWriteError(err))
	}
	return true, nil
}

// Delete removes the pair and reports whether it existed.
func (r *SubscriptionRepository) Delete(ctx context.Context, authorID, subscriberID uuid.UUID) (bool, error) {
	const query = `DELETE FROM subscriptions WHERE author_id = $1 AND subscriber_id = $2`
	return execDelete(ctx, conn(ctx, r.db), query, authorID, subscriberID)
}

// ListAuthors returns one page of the authors followed by subscriber,
// ordered by username, and the total number of followed authors.
func (r *SubscriptionRepository) ListAuthors(ctx context.Context, subscriberID uuid.UUID, limit, offset int) ([]models.UserDB, int, error) {
	const countQuery = `SELECT COUNT(*) FROM subscriptions WHERE subscriber_id = $1`

	var total int
	err := sqlx.GetContext(ctx, conn(ctx, r.db), &total, countQuery, subscriberID)
	logQuery(countQuery, []any{subscriberID}, total, err)
	if err != nil {
		return nil, 0, err
	}

	builder := psql.Select(
		"u.user_id", "u.username", "u.email", "u.first_name", "u.last_name",
		"u.password_hash", "u.avatar", "u.created_at", "u.updated_at",
	).
		From("subscriptions s").
		Join("users u ON u.user_id = s.author_id").
		Where(sq.Eq{"s.subscriber_id": subscriberID.String()}).
		OrderBy("u.username")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}
	if offset > 0 {
		builder = builder.Offset(uint64(offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	authors := []models.UserDB{}
	err = sqlx.SelectContext(ctx, conn(ctx, r.db), &authors, query, args...)
	logQuery(query, args, len(authors), err)
	if err != nil {
		return nil, 0, err
	}
	return authors, total, nil
}

// SubscribedAmong returns which of authorIDs subscriber follows.
func (r *SubscriptionRepository) SubscribedAmong(ctx context.Context, subscriberID uuid.UUID, authorIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	result := make(map[uuid.UUID]bool, len(authorIDs))
	if len(authorIDs) == 0 {
		return result, nil
	}

	ids := make([]string, 0, len(authorIDs))
	for _, id := range authorIDs {
		ids = append(ids, id.String())
	}

	query, args, err := psql.Select("author_id").
		From("subscriptions").
		Where(sq.Eq{"subscriber_id": subscriberID.String()}).
		Where(sq.Eq{"author_id": ids}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var found []uuid.UUID
	err = sqlx.SelectContext(ctx, conn(ctx, r.db), &found, query, args...)
	logQuery(query, args, found, err)
	if err != nil {
		return nil, err
	}

	for _, id := range found {
		result[id] = true
	}
	return result, nil
}
