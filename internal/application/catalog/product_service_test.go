package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pickleworks/backend/internal/domain/catalog"
	"github.com/pickleworks/backend/internal/domain/shared"
)

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id int) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]*catalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Product), args.Error(1)
}

func TestProductServiceList(t *testing.T) {
	ctx := context.Background()

	t.Run("returns all products", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("FindAll", ctx).Return([]*catalog.Product{
			{ID: 1, Name: "Mixed Pickle", Price: decimal.NewFromInt(220)},
			{ID: 5, Name: "Mango Pickle", Price: decimal.NewFromInt(280)},
		}, nil)

		svc := NewProductService(repo)
		products, err := svc.List(ctx)

		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "Mango Pickle", products[1].Name)
	})
}

func TestProductServiceGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("returns product by id", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("FindByID", ctx, 5).Return(&catalog.Product{ID: 5, Name: "Mango Pickle", Price: decimal.NewFromInt(280)}, nil)

		svc := NewProductService(repo)
		product, err := svc.GetByID(ctx, 5)

		require.NoError(t, err)
		assert.Equal(t, 5, product.ID)
		assert.True(t, product.Price.Equal(decimal.NewFromInt(280)))
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("FindByID", ctx, 99).Return(nil, shared.ErrNotFound)

		svc := NewProductService(repo)
		_, err := svc.GetByID(ctx, 99)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestProductServiceLookup(t *testing.T) {
	ctx := context.Background()

	repo := new(MockProductRepository)
	repo.On("FindByID", ctx, 5).Return(&catalog.Product{ID: 5, Name: "Mango Pickle", Price: decimal.NewFromInt(280)}, nil)
	repo.On("FindByID", ctx, 99).Return(nil, shared.ErrNotFound)

	lookup := NewProductService(repo).Lookup(ctx)

	t.Run("resolves known id", func(t *testing.T) {
		product, ok := lookup("5")
		require.True(t, ok)
		assert.Equal(t, "Mango Pickle", product.Name)
	})

	t.Run("misses unknown id", func(t *testing.T) {
		_, ok := lookup("99")
		assert.False(t, ok)
	})

	t.Run("misses malformed id without error", func(t *testing.T) {
		_, ok := lookup("not-a-number")
		assert.False(t, ok)
	})
}
