package shopping

import "github.com/pickleworks/backend/internal/domain/shared"

// Event types for the order aggregate
const (
	EventTypeOrderPlaced = "shopping.order.placed"
)

// OrderPlacedEvent is published after a cart has been converted into an
// order and cleared from its session. Handlers persist the order and
// send notifications; both are best-effort and never feed back into the
// placement itself.
type OrderPlacedEvent struct {
	shared.BaseDomainEvent
	Order *Order `json:"order"`
}

// NewOrderPlacedEvent creates a new OrderPlacedEvent
func NewOrderPlacedEvent(order *Order) *OrderPlacedEvent {
	return &OrderPlacedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderPlaced, order.ID, "Order"),
		Order:           order,
	}
}
