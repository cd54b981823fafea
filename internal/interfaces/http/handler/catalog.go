package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	catalogapp "github.com/pickleworks/backend/internal/application/catalog"
)

// CatalogHandler serves the read-only product catalog
type CatalogHandler struct {
	BaseHandler
	products *catalogapp.ProductService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(products *catalogapp.ProductService) *CatalogHandler {
	return &CatalogHandler{products: products}
}

// List returns all products in display order
func (h *CatalogHandler) List(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, products)
}

// GetByID returns a single product
func (h *CatalogHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.products.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}
