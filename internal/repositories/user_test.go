package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sbilibin2017/foodgram-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserWriteRepository_Save(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	repo := NewUserWriteRepository(db)

	id, created, err := repo.Save(ctx, models.NewUser{
		Username:     "alice",
		Email:        "alice@example.com",
		FirstName:    "Alice",
		LastName:     "Smith",
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, uuid.Nil, id)

	var user struct {
		Username     string `db:"username"`
		Email        string `db:"email"`
		PasswordHash string `db:"password_hash"`
	}
	err = db.Get(&user, "SELECT username, email, password_hash FROM users WHERE user_id=$1", id)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "hash", user.PasswordHash)

	t.Run("duplicate username is not created", func(t *testing.T) {
		_, created, err := repo.Save(ctx, models.NewUser{
			Username:     "alice",
			Email:        "other@example.com",
			PasswordHash: "hash",
		})
		assert.NoError(t, err)
		assert.False(t, created)
	})
}

func TestUserReadRepository(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	id := insertUser(t, db, "charlie")
	readRepo := NewUserReadRepository(db)

	t.Run("GetByID", func(t *testing.T) {
		user, err := readRepo.GetByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "charlie", user.Username)
		assert.Equal(t, "First Last", user.DisplayName())
	})

	t.Run("GetByEmail", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "charlie@example.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, id, user.UserID)
	})

	t.Run("NotFound", func(t *testing.T) {
		user, err := readRepo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("ExistsByUsernameOrEmail", func(t *testing.T) {
		exists, err := readRepo.ExistsByUsernameOrEmail(ctx, "charlie", "nobody@example.com")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = readRepo.ExistsByUsernameOrEmail(ctx, "nobody", "nobody@example.com")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestUserWriteRepository_UpdateAvatar(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	id := insertUser(t, db, "dave")
	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)

	avatar := "/media/users/a.png"
	require.NoError(t, writeRepo.UpdateAvatar(ctx, id, &avatar))

	user, err := readRepo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, user.Avatar)
	assert.Equal(t, avatar, *user.Avatar)

	require.NoError(t, writeRepo.UpdateAvatar(ctx, id, nil))
	user, err = readRepo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, user.Avatar)
}
