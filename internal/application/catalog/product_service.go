package catalog

import (
	"context"
	"strconv"

	"github.com/pickleworks/backend/internal/domain/catalog"
)

// ProductService exposes read access to the product catalog
type ProductService struct {
	productRepo catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// List returns all products in display order
func (s *ProductService) List(ctx context.Context) ([]*ProductResponse, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, toProductResponse(product))
	}
	return responses, nil
}

// GetByID returns a single product.
// Returns shared.ErrNotFound when the ID does not exist.
func (s *ProductService) GetByID(ctx context.Context, id int) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Lookup returns the string-keyed resolver the cart and checkout code
// use to price cart lines. Missing and malformed IDs both resolve to
// false rather than an error.
func (s *ProductService) Lookup(ctx context.Context) catalog.Lookup {
	return func(productID string) (*catalog.Product, bool) {
		id, err := strconv.Atoi(productID)
		if err != nil {
			return nil, false
		}
		product, err := s.productRepo.FindByID(ctx, id)
		if err != nil {
			return nil, false
		}
		return product, true
	}
}

func toProductResponse(product *catalog.Product) *ProductResponse {
	return &ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Price:       product.Price,
		Image:       product.Image,
		Description: product.Description,
	}
}
