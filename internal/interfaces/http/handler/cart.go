package handler

import (
	"github.com/gin-gonic/gin"

	shoppingapp "github.com/pickleworks/backend/internal/application/shopping"
	"github.com/pickleworks/backend/internal/interfaces/http/middleware"
)

// CartHandler serves the session cart
type CartHandler struct {
	BaseHandler
	carts *shoppingapp.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(carts *shoppingapp.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

// AddItemRequest adds one unit of a product to the cart
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// ChangeQuantityRequest bumps a cart line by exactly +1 or -1
type ChangeQuantityRequest struct {
	Delta int `json:"delta" binding:"required,oneof=-1 1"`
}

// Get returns the priced cart for the current session
func (h *CartHandler) Get(c *gin.Context) {
	cart, err := h.carts.GetCart(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}

// AddItem adds one unit of a product to the session cart
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	sessionID := middleware.GetSessionID(c)
	if err := h.carts.AddItem(c.Request.Context(), sessionID, req.ProductID); err != nil {
		h.HandleError(c, err)
		return
	}

	cart, err := h.carts.GetCart(c.Request.Context(), sessionID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}

// ChangeQuantity adjusts a cart line by the given delta. Reducing the
// last unit removes the line; unknown products are a no-op.
func (h *CartHandler) ChangeQuantity(c *gin.Context) {
	var req ChangeQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	sessionID := middleware.GetSessionID(c)
	productID := c.Param("id")
	if err := h.carts.ChangeQuantity(c.Request.Context(), sessionID, productID, req.Delta); err != nil {
		h.HandleError(c, err)
		return
	}

	cart, err := h.carts.GetCart(c.Request.Context(), sessionID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}

// RemoveItem drops a cart line regardless of its quantity
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if err := h.carts.RemoveItem(c.Request.Context(), sessionID, c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}

	cart, err := h.carts.GetCart(c.Request.Context(), sessionID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}
