package shopping

import (
	"time"

	"github.com/pickleworks/backend/internal/domain/catalog"
	"github.com/pickleworks/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DefaultShippingFee is the flat shipping fee charged on any non-empty order
var DefaultShippingFee = decimal.NewFromInt(50)

// OrderLine is a priced cart line resolved against the catalog
type OrderLine struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// OrderSnapshot is the priced view of a cart at checkout time.
// It is ephemeral and derived; recomputing it never mutates the cart.
type OrderSnapshot struct {
	Lines    []OrderLine     `json:"lines"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}

// IsEmpty reports whether the snapshot has no resolvable lines
func (s OrderSnapshot) IsEmpty() bool {
	return len(s.Lines) == 0
}

// ComputeSnapshot prices a cart against the catalog. Cart entries whose
// product no longer resolves are skipped, not an error: the catalog can
// change independently of sessions, and stale lines stay in the cart.
// Shipping is a flat fee applied iff the subtotal is positive.
func ComputeSnapshot(cart Cart, lookup catalog.Lookup, shippingFee decimal.Decimal) OrderSnapshot {
	snapshot := OrderSnapshot{
		Lines:    make([]OrderLine, 0, len(cart.Lines)),
		Subtotal: decimal.Zero,
		Shipping: decimal.Zero,
	}

	for _, line := range cart.Lines {
		product, ok := lookup(line.ProductID)
		if !ok {
			continue
		}
		lineTotal := product.LineTotal(line.Quantity)
		snapshot.Lines = append(snapshot.Lines, OrderLine{
			ProductID: line.ProductID,
			Name:      product.Name,
			Quantity:  line.Quantity,
			UnitPrice: product.Price,
			LineTotal: lineTotal,
		})
		snapshot.Subtotal = snapshot.Subtotal.Add(lineTotal)
	}

	if snapshot.Subtotal.IsPositive() {
		snapshot.Shipping = shippingFee
	}
	snapshot.Total = snapshot.Subtotal.Add(snapshot.Shipping)

	return snapshot
}

// CustomerContact is the delivery contact collected at checkout
type CustomerContact struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// Order is a placed order: the snapshot frozen at placement time plus
// the checkout contact details. Placement is one-way — once an order
// exists the originating cart has already been cleared, and there is
// no cancellation or rollback.
type Order struct {
	shared.BaseAggregateRoot
	Identity string
	Contact  CustomerContact
	Lines    []OrderLine
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
	PlacedAt time.Time
}

// NewOrder creates a placed order from a checkout snapshot.
// An empty snapshot is allowed: placing an order with an empty cart
// still proceeds, producing a zero-line order.
func NewOrder(identity string, contact CustomerContact, snapshot OrderSnapshot) *Order {
	order := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Identity:          identity,
		Contact:           contact,
		Lines:             snapshot.Lines,
		Subtotal:          snapshot.Subtotal,
		Shipping:          snapshot.Shipping,
		Total:             snapshot.Total,
		PlacedAt:          time.Now(),
	}

	order.AddDomainEvent(NewOrderPlacedEvent(order))

	return order
}

// Summary renders a short human-readable order summary used in the
// confirmation email body.
func (o *Order) Summary() string {
	summary := "Order " + o.ID.String() + "\n"
	for _, line := range o.Lines {
		summary += line.Name + " x" + decimal.NewFromInt(int64(line.Quantity)).String() +
			" = " + line.LineTotal.String() + "\n"
	}
	summary += "Subtotal: " + o.Subtotal.String() + "\n"
	summary += "Shipping: " + o.Shipping.String() + "\n"
	summary += "Total: " + o.Total.String() + "\n"
	return summary
}
