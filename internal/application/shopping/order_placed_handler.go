package shopping

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/pickleworks/backend/internal/domain/shared"
	"github.com/pickleworks/backend/internal/domain/shopping"
)

// dependencyTimeout bounds each downstream call made for a placed
// order so a slow dependency cannot stall the handler chain.
const dependencyTimeout = 5 * time.Second

// OrderPlacedHandler reacts to placed orders: it persists the order
// and sends the confirmation notifications. Every step is best-effort;
// by the time this handler runs the cart is already cleared, so each
// failure is logged and swallowed rather than surfaced to the shopper.
type OrderPlacedHandler struct {
	orders   shopping.OrderRepository
	mailer   Mailer
	notifier Notifier
	logger   *zap.Logger
}

// NewOrderPlacedHandler creates a new order placed handler
func NewOrderPlacedHandler(
	orders shopping.OrderRepository,
	mailer Mailer,
	notifier Notifier,
	logger *zap.Logger,
) *OrderPlacedHandler {
	return &OrderPlacedHandler{
		orders:   orders,
		mailer:   mailer,
		notifier: notifier,
		logger:   logger,
	}
}

// EventTypes returns the event types this handler subscribes to
func (h *OrderPlacedHandler) EventTypes() []string {
	return []string{shopping.EventTypeOrderPlaced}
}

// Handle persists the order and fans out notifications. It always
// returns nil: there is nothing upstream that could act on an error.
func (h *OrderPlacedHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	placed, ok := event.(*shopping.OrderPlacedEvent)
	if !ok {
		return nil
	}
	order := placed.Order

	h.saveOrder(ctx, order)
	h.sendConfirmation(ctx, order)
	h.announce(ctx, order)

	return nil
}

func (h *OrderPlacedHandler) saveOrder(ctx context.Context, order *shopping.Order) {
	if h.orders == nil {
		return
	}
	saveCtx, cancel := context.WithTimeout(ctx, dependencyTimeout)
	defer cancel()

	if err := h.orders.Save(saveCtx, order); err != nil {
		h.logger.Error("Failed to persist order",
			zap.String("order_id", order.ID.String()),
			zap.Error(err))
	}
}

func (h *OrderPlacedHandler) sendConfirmation(ctx context.Context, order *shopping.Order) {
	if h.mailer == nil || order.Contact.Email == "" {
		return
	}
	mailCtx, cancel := context.WithTimeout(ctx, dependencyTimeout)
	defer cancel()

	if err := h.mailer.Send(mailCtx, order.Contact.Email, "Your order confirmation", order.Summary()); err != nil {
		h.logger.Error("Failed to send order confirmation email",
			zap.String("order_id", order.ID.String()),
			zap.Error(err))
	}
}

func (h *OrderPlacedHandler) announce(ctx context.Context, order *shopping.Order) {
	if h.notifier == nil {
		return
	}
	message := "New order " + order.ID.String() + " for " + order.Total.String()

	if order.Contact.Phone != "" {
		smsCtx, cancel := context.WithTimeout(ctx, dependencyTimeout)
		if err := h.notifier.PublishPhone(smsCtx, order.Contact.Phone, message); err != nil {
			h.logger.Error("Failed to send order SMS",
				zap.String("order_id", order.ID.String()),
				zap.Error(err))
		}
		cancel()
	}

	topicCtx, cancel := context.WithTimeout(ctx, dependencyTimeout)
	defer cancel()
	if err := h.notifier.PublishTopic(topicCtx, message); err != nil {
		h.logger.Error("Failed to publish order notification",
			zap.String("order_id", order.ID.String()),
			zap.Error(err))
	}
}
