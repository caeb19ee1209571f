package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/foodgram-backend/internal/logger"
)

// psql builds PostgreSQL flavoured statements.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ErrReferenceNotFound is returned when a write points at a tag, ingredient,
// user or recipe row that does not exist.
var ErrReferenceNotFound = errors.New("referenced row does not exist")

const foreignKeyViolation = "23503"

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// Transactor runs a unit of work inside a single database transaction.
type Transactor struct {
	db *sqlx.DB
}

// NewTransactor creates a Transactor on top of db.
func NewTransactor(db *sqlx.DB) *Transactor {
	return &Transactor{db: db}
}

// WithinTx begins a transaction, stores it in the context passed to fn and
// commits when fn returns nil. Any error or panic rolls the transaction back.
// A context that already carries a transaction joins it instead of nesting.
func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if GetTxFromContext(ctx) != nil {
		return fn(ctx)
	}

	tx, err := t.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to begin transaction", "error", err)
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if rec := recover(); rec != nil {
			_ = tx.Rollback()
			panic(rec)
		}
	}()

	if err := fn(setTxToContext(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Log.Errorw("failed to roll back transaction", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		logger.Log.Errorw("failed to commit transaction", "error", err)
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

// conn returns the transaction carried by ctx, or db when there is none.
func conn(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}

// logQuery logs a statement on a single line together with its outcome.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow(
		"query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

// mapWriteError turns a foreign key violation into ErrReferenceNotFound.
func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return fmt.Errorf("%w: %s", ErrReferenceNotFound, pgErr.ConstraintName)
	}
	return err
}
