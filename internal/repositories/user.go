package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/foodgram-backend/internal/models"
)

const userColumns = `user_id, username, email, first_name, last_name, password_hash, avatar, created_at, updated_at`

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns the user or nil when no such user exists.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	return r.getOne(ctx, query, userID)
}

// GetByEmail returns the user or nil when no such user exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.getOne(ctx, query, email)
}

// ExistsByUsernameOrEmail reports whether either identifier is already taken.
func (r *UserReadRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 OR email = $2)`

	var exists bool
	err := sqlx.GetContext(ctx, conn(ctx, r.db), &exists, query, username, email)
	logQuery(query, []any{username, email}, exists, err)
	return exists, err
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := sqlx.GetContext(ctx, conn(ctx, r.db), &user, query, arg)
	logQuery(query, []any{arg}, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a user. created is false when the username or email is already taken.
func (r *UserWriteRepository) Save(ctx context.Context, user models.NewUser) (userID uuid.UUID, created bool, err error) {
	const query = `
		INSERT INTO users (username, email, first_name, last_name, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT DO NOTHING
		RETURNING user_id
	`
	args := []any{user.Username, user.Email, user.FirstName, user.LastName, user.PasswordHash}

	err = sqlx.GetContext(ctx, conn(ctx, r.db), &userID, query, args...)
	logQuery(query, []any{user.Username, user.Email}, userID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("insert user: %w", err)
	}
	return userID, true, nil
}

// UpdateAvatar sets the avatar URL; nil clears it.
func (r *UserWriteRepository) UpdateAvatar(ctx context.Context, userID uuid.UUID, avatar *string) error {
	const query = `UPDATE users SET avatar = $2, updated_at = NOW() WHERE user_id = $1`

	res, err := conn(ctx, r.db).ExecContext(ctx, query, userID, avatar)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{userID, avatar}, rowsAffected, err)

	if err != nil {
		return fmt.Errorf("update avatar: %w", err)
	}
	return nil
}
