package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionRepository(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	reader := insertUser(t, db, "reader")
	zed := insertUser(t, db, "zed")
	amy := insertUser(t, db, "amy")
	stranger := insertUser(t, db, "stranger")

	repo := NewSubscriptionRepository(db)

	t.Run("Create and Exists", func(t *testing.T) {
		created, err := repo.Create(ctx, zed, reader)
		require.NoError(t, err)
		assert.True(t, created)

		created, err = repo.Create(ctx, zed, reader)
		require.NoError(t, err)
		assert.False(t, created)

		_, err = repo.Create(ctx, amy, reader)
		require.NoError(t, err)

		exists, err := repo.Exists(ctx, zed, reader)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.Exists(ctx, reader, zed)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("ListAuthors ordered by username", func(t *testing.T) {
		authors, total, err := repo.ListAuthors(ctx, reader, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, authors, 2)
		assert.Equal(t, "amy", authors[0].Username)
		assert.Equal(t, "zed", authors[1].Username)

		page, total, err := repo.ListAuthors(ctx, reader, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, page, 1)
		assert.Equal(t, "zed", page[0].Username)
	})

	t.Run("SubscribedAmong", func(t *testing.T) {
		found, err := repo.SubscribedAmong(ctx, reader, []uuid.UUID{zed, stranger})
		require.NoError(t, err)
		assert.True(t, found[zed])
		assert.False(t, found[stranger])
	})

	t.Run("Delete", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, zed, reader)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(ctx, zed, reader)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
