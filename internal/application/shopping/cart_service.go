package shopping

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/pickleworks/backend/internal/domain/catalog"
	"github.com/pickleworks/backend/internal/domain/shared"
	"github.com/pickleworks/backend/internal/domain/shopping"
)

// LookupProvider yields the catalog resolver used to price carts
type LookupProvider interface {
	Lookup(ctx context.Context) catalog.Lookup
}

// CartService handles cart mutations and the priced cart view.
// All mutations go through SessionStore.Update so concurrent requests
// for the same session cannot lose each other's writes.
type CartService struct {
	sessions    shopping.SessionStore
	catalog     LookupProvider
	shippingFee decimal.Decimal
	logger      *zap.Logger
}

// NewCartService creates a new cart service
func NewCartService(
	sessions shopping.SessionStore,
	catalogSvc LookupProvider,
	shippingFee decimal.Decimal,
	logger *zap.Logger,
) *CartService {
	return &CartService{
		sessions:    sessions,
		catalog:     catalogSvc,
		shippingFee: shippingFee,
		logger:      logger,
	}
}

// GetCart returns the priced cart for the session. Stale lines are
// omitted from the view, never from the stored cart.
func (s *CartService) GetCart(ctx context.Context, sessionID string) (*CartView, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		s.logger.Error("Failed to load session", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load cart")
	}

	snapshot := shopping.ComputeSnapshot(session.Cart, s.catalog.Lookup(ctx), s.shippingFee)
	return &CartView{
		Lines:    toCartLineViews(snapshot.Lines),
		Subtotal: snapshot.Subtotal,
		Shipping: snapshot.Shipping,
		Total:    snapshot.Total,
	}, nil
}

// AddItem adds one unit of the product to the session cart.
// The product must exist in the catalog at add time.
func (s *CartService) AddItem(ctx context.Context, sessionID, productID string) error {
	if _, ok := s.catalog.Lookup(ctx)(productID); !ok {
		return shared.NewDomainError("NOT_FOUND", "Product not found")
	}

	_, err := s.sessions.Update(ctx, sessionID, func(session *shopping.Session) error {
		session.Cart.Add(productID)
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to add cart item",
			zap.String("product_id", productID),
			zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to update cart")
	}
	return nil
}

// ChangeQuantity applies a +1 or -1 delta to a cart line. Deltas for
// products not in the cart are silent no-ops; any other delta value is
// rejected without touching the cart.
func (s *CartService) ChangeQuantity(ctx context.Context, sessionID, productID string, delta int) error {
	_, err := s.sessions.Update(ctx, sessionID, func(session *shopping.Session) error {
		return session.Cart.ChangeQuantity(productID, delta)
	})
	if err != nil {
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) {
			return err
		}
		s.logger.Error("Failed to change cart quantity",
			zap.String("product_id", productID),
			zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to update cart")
	}
	return nil
}

// RemoveItem deletes the cart line for the product. Removing a product
// that is not in the cart succeeds.
func (s *CartService) RemoveItem(ctx context.Context, sessionID, productID string) error {
	_, err := s.sessions.Update(ctx, sessionID, func(session *shopping.Session) error {
		session.Cart.Remove(productID)
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to remove cart item",
			zap.String("product_id", productID),
			zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to update cart")
	}
	return nil
}
