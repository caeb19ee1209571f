package repositories

import (
	"context"
	"testing"

	"github.com/sbilibin2017/foodgram-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngredientRepository(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()
	repo := NewIngredientRepository(db)

	n, err := repo.BulkInsert(ctx, []models.Ingredient{
		{Name: "flour", MeasurementUnit: "g"},
		{Name: "flour", MeasurementUnit: "kg"},
		{Name: "sugar", MeasurementUnit: "g"},
		{Name: "50%_cream", MeasurementUnit: "ml"},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 4, n)

	t.Run("BulkInsert skips existing name and unit pairs", func(t *testing.T) {
		n, err := repo.BulkInsert(ctx, []models.Ingredient{{Name: "flour", MeasurementUnit: "g"}})
		require.NoError(t, err)
		assert.EqualValues(t, 0, n)
	})

	t.Run("List all", func(t *testing.T) {
		all, err := repo.List(ctx, "")
		require.NoError(t, err)
		assert.Len(t, all, 4)
	})

	t.Run("List by name prefix", func(t *testing.T) {
		found, err := repo.List(ctx, "fl")
		require.NoError(t, err)
		require.Len(t, found, 2)
		for _, i := range found {
			assert.Equal(t, "flour", i.Name)
		}

		found, err = repo.List(ctx, "our")
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("Prefix wildcards are literal", func(t *testing.T) {
		found, err := repo.List(ctx, "50%")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "50%_cream", found[0].Name)

		found, err = repo.List(ctx, "%")
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("GetByID and ExistingIDs", func(t *testing.T) {
		found, err := repo.List(ctx, "sugar")
		require.NoError(t, err)
		require.Len(t, found, 1)

		ingredient, err := repo.GetByID(ctx, found[0].ID)
		require.NoError(t, err)
		require.NotNil(t, ingredient)
		assert.Equal(t, "g", ingredient.MeasurementUnit)

		missing, err := repo.GetByID(ctx, 999999)
		assert.NoError(t, err)
		assert.Nil(t, missing)

		ids, err := repo.ExistingIDs(ctx, []int64{found[0].ID, 999999})
		require.NoError(t, err)
		assert.Equal(t, []int64{found[0].ID}, ids)
	})
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `a\%b\_c\\`, escapeLike(`a%b_c\`))
	assert.Equal(t, "plain", escapeLike("plain"))
}
