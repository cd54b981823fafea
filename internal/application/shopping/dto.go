package shopping

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pickleworks/backend/internal/domain/shopping"
)

// CartLineView is one priced cart line as shown on the cart page
type CartLineView struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Image     string          `json:"image,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// CartView is the priced cart with totals. Lines whose product no
// longer resolves in the catalog are omitted from the view but stay in
// the stored cart.
type CartView struct {
	Lines    []CartLineView  `json:"lines"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}

// CheckoutView is the priced order preview shown before placement
type CheckoutView struct {
	Lines    []CartLineView  `json:"lines"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}

// PlaceOrderInput is the checkout contact submitted with an order
type PlaceOrderInput struct {
	Name    string
	Address string
	Email   string
	Phone   string
}

// OrderResult is returned after an order has been placed
type OrderResult struct {
	OrderID  uuid.UUID       `json:"order_id"`
	Total    decimal.Decimal `json:"total"`
	PlacedAt time.Time       `json:"placed_at"`
}

func toCartLineViews(lines []shopping.OrderLine) []CartLineView {
	views := make([]CartLineView, 0, len(lines))
	for _, line := range lines {
		views = append(views, CartLineView{
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			LineTotal: line.LineTotal,
		})
	}
	return views
}
