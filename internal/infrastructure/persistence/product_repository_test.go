package persistence

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pickleworks/backend/internal/domain/catalog"
	"github.com/pickleworks/backend/internal/domain/shared"
)

func TestStaticProductRepository(t *testing.T) {
	repo := NewDefaultProductRepository()
	ctx := context.Background()

	t.Run("finds a product by id", func(t *testing.T) {
		product, err := repo.FindByID(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, "Mango Pickle", product.Name)
		assert.True(t, product.Price.Equal(decimal.NewFromInt(280)))
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, 9999)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("lists the full catalog in display order", func(t *testing.T) {
		products, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, products, len(catalog.DefaultProducts()))
		assert.Equal(t, catalog.DefaultProducts()[0].ID, products[0].ID)
	})

	t.Run("list is a copy", func(t *testing.T) {
		first, err := repo.FindAll(ctx)
		require.NoError(t, err)
		first[0] = nil

		again, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.NotNil(t, again[0])
	})
}

func TestStaticProductRepositoryDeduplicates(t *testing.T) {
	price := decimal.NewFromInt(100)
	repo := NewStaticProductRepository([]*catalog.Product{
		{ID: 1, Name: "First", Price: price},
		{ID: 1, Name: "Duplicate", Price: price},
		{ID: 2, Name: "Second", Price: price},
	})

	product, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "First", product.Name)
	assert.Equal(t, []int{1, 2}, repo.IDs())
}
