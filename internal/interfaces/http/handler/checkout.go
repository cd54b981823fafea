package handler

import (
	"github.com/gin-gonic/gin"

	shoppingapp "github.com/pickleworks/backend/internal/application/shopping"
	"github.com/pickleworks/backend/internal/interfaces/http/middleware"
)

// CheckoutHandler serves the order preview and placement endpoints
type CheckoutHandler struct {
	BaseHandler
	checkout *shoppingapp.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkout *shoppingapp.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// PlaceOrderRequest is the checkout contact form
type PlaceOrderRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Address string `json:"address" binding:"required,max=500"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone" binding:"omitempty,max=20"`
}

// Review returns the priced order preview for the session cart
func (h *CheckoutHandler) Review(c *gin.Context) {
	preview, err := h.checkout.Review(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, preview)
}

// PlaceOrder turns the session cart into an order. The cart is cleared
// the moment the order is accepted; there is no way back.
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.checkout.PlaceOrder(c.Request.Context(), middleware.GetSessionID(c), shoppingapp.PlaceOrderInput{
		Name:    req.Name,
		Address: req.Address,
		Email:   req.Email,
		Phone:   req.Phone,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}
