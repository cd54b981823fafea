package shopping

import "context"

// OrderRepository is the write-once durable log for placed orders.
// Save is called from the order-placed handler after the cart is
// already cleared; a failed save is logged and never retried.
type OrderRepository interface {
	Save(ctx context.Context, order *Order) error
}
