package repositories

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/foodgram-backend/internal/logger"
	"github.com/sbilibin2017/foodgram-backend/internal/models"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const schemaPath = "../../migrations/0001_init.up.sql"

// --- Setup Postgres ---
func setupPostgres(t *testing.T) *sqlx.DB {
	t.Helper()
	require.NoError(t, logger.Initialize("debug"))
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	schema, err := os.ReadFile(schemaPath)
	require.NoError(t, err)
	_, err = db.Exec(string(schema))
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
		container.Terminate(ctx)
	})
	return db
}

// --- Fixtures ---
func insertUser(t *testing.T, db *sqlx.DB, username string) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := db.Get(&id, `
		INSERT INTO users (username, email, first_name, last_name, password_hash)
		VALUES ($1, $2, $3, $4, 'hash')
		RETURNING user_id`,
		username, username+"@example.com", "First", "Last")
	require.NoError(t, err)
	return id
}

func insertTag(t *testing.T, db *sqlx.DB, name, slug string) int64 {
	t.Helper()
	var id int64
	require.NoError(t, db.Get(&id, `INSERT INTO tags (name, slug) VALUES ($1, $2) RETURNING id`, name, slug))
	return id
}

func insertIngredient(t *testing.T, db *sqlx.DB, name, unit string) int64 {
	t.Helper()
	var id int64
	require.NoError(t, db.Get(&id,
		`INSERT INTO ingredients (name, measurement_unit) VALUES ($1, $2) RETURNING id`, name, unit))
	return id
}

func insertRecipe(t *testing.T, db *sqlx.DB, author uuid.UUID, name string, tagIDs []int64, items []models.IngredientAmount) int64 {
	t.Helper()
	ctx := context.Background()
	repo := NewRecipeWriteRepository(db)

	id, err := repo.Create(ctx, &models.Recipe{AuthorID: author, Name: name, Text: "text", CookingTime: 10})
	require.NoError(t, err)
	require.NoError(t, repo.SetTags(ctx, id, tagIDs))
	require.NoError(t, repo.AddIngredients(ctx, id, items))
	return id
}
