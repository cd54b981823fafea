package shopping

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/pickleworks/backend/internal/domain/shared"
	"github.com/pickleworks/backend/internal/domain/shopping"
)

// CheckoutService prices the order preview and runs order placement.
type CheckoutService struct {
	sessions    shopping.SessionStore
	catalog     LookupProvider
	eventBus    shared.EventPublisher
	shippingFee decimal.Decimal
	logger      *zap.Logger
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	sessions shopping.SessionStore,
	catalogSvc LookupProvider,
	eventBus shared.EventPublisher,
	shippingFee decimal.Decimal,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		sessions:    sessions,
		catalog:     catalogSvc,
		eventBus:    eventBus,
		shippingFee: shippingFee,
		logger:      logger,
	}
}

// Review prices the current cart for the checkout page. It never
// mutates the cart; refreshing the checkout page any number of times
// yields the same preview.
func (s *CheckoutService) Review(ctx context.Context, sessionID string) (*CheckoutView, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		s.logger.Error("Failed to load session", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load cart")
	}

	snapshot := shopping.ComputeSnapshot(session.Cart, s.catalog.Lookup(ctx), s.shippingFee)
	return &CheckoutView{
		Lines:    toCartLineViews(snapshot.Lines),
		Subtotal: snapshot.Subtotal,
		Shipping: snapshot.Shipping,
		Total:    snapshot.Total,
	}, nil
}

// PlaceOrder converts the session cart into an order. The steps run in
// a fixed sequence: price the cart, clear it, then announce the order.
// The cart clear is unconditional and is the point of no return —
// everything after it is best-effort and a failure there never undoes
// the placement or restores the cart. Placing an order with an empty
// cart proceeds and yields a zero-line order.
func (s *CheckoutService) PlaceOrder(ctx context.Context, sessionID string, input PlaceOrderInput) (*OrderResult, error) {
	contact := shopping.CustomerContact{
		Name:    strings.TrimSpace(input.Name),
		Address: strings.TrimSpace(input.Address),
		Email:   strings.TrimSpace(input.Email),
		Phone:   strings.TrimSpace(input.Phone),
	}

	var (
		snapshot shopping.OrderSnapshot
		identity string
	)
	lookup := s.catalog.Lookup(ctx)

	_, err := s.sessions.Update(ctx, sessionID, func(session *shopping.Session) error {
		snapshot = shopping.ComputeSnapshot(session.Cart, lookup, s.shippingFee)
		identity = session.Identity
		session.Cart.Clear()
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to clear cart during order placement", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to place order")
	}

	order := shopping.NewOrder(identity, contact, snapshot)

	s.publishEvents(ctx, order)

	s.logger.Info("Order placed",
		zap.String("order_id", order.ID.String()),
		zap.String("total", order.Total.String()),
		zap.Int("lines", len(order.Lines)))

	return &OrderResult{
		OrderID:  order.ID,
		Total:    order.Total,
		PlacedAt: order.PlacedAt,
	}, nil
}

// publishEvents announces the placed order. Publication is best-effort:
// the cart is already cleared, so a publish failure is logged and the
// placement still succeeds.
func (s *CheckoutService) publishEvents(ctx context.Context, order *shopping.Order) {
	if s.eventBus == nil {
		return
	}
	for _, event := range order.GetDomainEvents() {
		if err := s.eventBus.Publish(ctx, event); err != nil {
			s.logger.Error("Failed to publish order event",
				zap.String("event_type", event.EventType()),
				zap.String("order_id", order.ID.String()),
				zap.Error(err))
		}
	}
	order.ClearDomainEvents()
}
