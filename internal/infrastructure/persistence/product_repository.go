package persistence

import (
	"context"
	"sort"

	"github.com/pickleworks/backend/internal/domain/catalog"
	"github.com/pickleworks/backend/internal/domain/shared"
)

// StaticProductRepository serves the catalog from memory. The product
// list is fixed at construction; there is no admin surface to change it.
type StaticProductRepository struct {
	byID  map[int]*catalog.Product
	order []*catalog.Product
}

// NewStaticProductRepository creates a repository over the given products,
// preserving their order for listing.
func NewStaticProductRepository(products []*catalog.Product) *StaticProductRepository {
	byID := make(map[int]*catalog.Product, len(products))
	order := make([]*catalog.Product, 0, len(products))
	for _, p := range products {
		if _, exists := byID[p.ID]; exists {
			continue
		}
		byID[p.ID] = p
		order = append(order, p)
	}
	return &StaticProductRepository{byID: byID, order: order}
}

// NewDefaultProductRepository creates a repository over the built-in catalog
func NewDefaultProductRepository() *StaticProductRepository {
	return NewStaticProductRepository(catalog.DefaultProducts())
}

// FindByID finds a product by its numeric ID
func (r *StaticProductRepository) FindByID(_ context.Context, id int) (*catalog.Product, error) {
	product, ok := r.byID[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return product, nil
}

// FindAll returns all products in display order
func (r *StaticProductRepository) FindAll(_ context.Context) ([]*catalog.Product, error) {
	result := make([]*catalog.Product, len(r.order))
	copy(result, r.order)
	return result, nil
}

// IDs returns the sorted product IDs, useful for seeding and diagnostics
func (r *StaticProductRepository) IDs() []int {
	ids := make([]int, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

var _ catalog.ProductRepository = (*StaticProductRepository)(nil)
