package catalog

import "context"

// ProductRepository provides read access to the product catalog
type ProductRepository interface {
	// FindByID finds a product by its numeric ID
	// Returns shared.ErrNotFound when the product does not exist
	FindByID(ctx context.Context, id int) (*Product, error)
	// FindAll returns all products in display order
	FindAll(ctx context.Context) ([]*Product, error)
}

// Lookup resolves a string-encoded product ID to a product.
// It is the read capability the cart and checkout code depend on;
// a false return means the ID no longer resolves in the catalog.
type Lookup func(productID string) (*Product, bool)
