package shopping

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pickleworks/backend/internal/domain/catalog"
	"github.com/pickleworks/backend/internal/domain/shared"
	"github.com/pickleworks/backend/internal/domain/shopping"
)

// stubSessionStore is an in-memory SessionStore for service tests
type stubSessionStore struct {
	sessions map[string]*shopping.Session
	failWith error
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]*shopping.Session)}
}

func (s *stubSessionStore) Get(_ context.Context, id string) (*shopping.Session, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	if session, ok := s.sessions[id]; ok {
		clone := *session
		clone.Cart = session.Cart.Clone()
		return &clone, nil
	}
	return shopping.NewSession(id), nil
}

func (s *stubSessionStore) SetCart(_ context.Context, id string, cart shopping.Cart) error {
	session := s.mustSession(id)
	session.Cart = cart
	return nil
}

func (s *stubSessionStore) SetIdentity(_ context.Context, id string, username string) error {
	s.mustSession(id).Identity = username
	return nil
}

func (s *stubSessionStore) Clear(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

func (s *stubSessionStore) Update(ctx context.Context, id string, fn func(*shopping.Session) error) (*shopping.Session, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	session := s.mustSession(id)
	if err := fn(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *stubSessionStore) mustSession(id string) *shopping.Session {
	if session, ok := s.sessions[id]; ok {
		return session
	}
	session := shopping.NewSession(id)
	s.sessions[id] = session
	return session
}

// stubCatalog resolves a fixed set of products
type stubCatalog struct {
	products map[string]*catalog.Product
}

func newStubCatalog() *stubCatalog {
	return &stubCatalog{products: map[string]*catalog.Product{
		"5": {ID: 5, Name: "Mango Pickle", Price: decimal.NewFromInt(280)},
		"7": {ID: 7, Name: "Lemon Pickle", Price: decimal.NewFromInt(150)},
	}}
}

func (c *stubCatalog) Lookup(context.Context) catalog.Lookup {
	return func(productID string) (*catalog.Product, bool) {
		p, ok := c.products[productID]
		return p, ok
	}
}

func newTestCartService(store shopping.SessionStore) *CartService {
	return NewCartService(store, newStubCatalog(), shopping.DefaultShippingFee, zap.NewNop())
}

func TestCartServiceAddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("adds a catalog product", func(t *testing.T) {
		store := newStubSessionStore()
		svc := newTestCartService(store)

		require.NoError(t, svc.AddItem(ctx, "sess-1", "5"))
		require.NoError(t, svc.AddItem(ctx, "sess-1", "5"))

		session, _ := store.Get(ctx, "sess-1")
		assert.Equal(t, 2, session.Cart.Quantity("5"))
	})

	t.Run("rejects unknown product", func(t *testing.T) {
		store := newStubSessionStore()
		svc := newTestCartService(store)

		err := svc.AddItem(ctx, "sess-1", "99")

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "NOT_FOUND", domainErr.Code)

		session, _ := store.Get(ctx, "sess-1")
		assert.True(t, session.Cart.IsEmpty())
	})

	t.Run("carts are isolated per session", func(t *testing.T) {
		store := newStubSessionStore()
		svc := newTestCartService(store)

		require.NoError(t, svc.AddItem(ctx, "sess-a", "5"))
		require.NoError(t, svc.AddItem(ctx, "sess-b", "7"))

		a, _ := store.Get(ctx, "sess-a")
		b, _ := store.Get(ctx, "sess-b")
		assert.Equal(t, 1, a.Cart.Quantity("5"))
		assert.Equal(t, 0, a.Cart.Quantity("7"))
		assert.Equal(t, 1, b.Cart.Quantity("7"))
	})
}

func TestCartServiceChangeQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("applies unit deltas", func(t *testing.T) {
		store := newStubSessionStore()
		svc := newTestCartService(store)
		require.NoError(t, svc.AddItem(ctx, "sess-1", "5"))

		require.NoError(t, svc.ChangeQuantity(ctx, "sess-1", "5", 1))
		require.NoError(t, svc.ChangeQuantity(ctx, "sess-1", "5", -1))

		session, _ := store.Get(ctx, "sess-1")
		assert.Equal(t, 1, session.Cart.Quantity("5"))
	})

	t.Run("rejects non-unit delta and keeps the cart unchanged", func(t *testing.T) {
		store := newStubSessionStore()
		svc := newTestCartService(store)
		require.NoError(t, svc.AddItem(ctx, "sess-1", "5"))

		err := svc.ChangeQuantity(ctx, "sess-1", "5", 3)

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "INVALID_INPUT", domainErr.Code)

		session, _ := store.Get(ctx, "sess-1")
		assert.Equal(t, 1, session.Cart.Quantity("5"))
	})

	t.Run("decrement to zero removes the line", func(t *testing.T) {
		store := newStubSessionStore()
		svc := newTestCartService(store)
		require.NoError(t, svc.AddItem(ctx, "sess-1", "5"))

		require.NoError(t, svc.ChangeQuantity(ctx, "sess-1", "5", -1))

		session, _ := store.Get(ctx, "sess-1")
		assert.True(t, session.Cart.IsEmpty())
	})

	t.Run("delta for a product not in the cart is a no-op", func(t *testing.T) {
		store := newStubSessionStore()
		svc := newTestCartService(store)

		require.NoError(t, svc.ChangeQuantity(ctx, "sess-1", "5", 1))

		session, _ := store.Get(ctx, "sess-1")
		assert.True(t, session.Cart.IsEmpty())
	})
}

func TestCartServiceRemoveItem(t *testing.T) {
	ctx := context.Background()

	t.Run("removes a line regardless of quantity", func(t *testing.T) {
		store := newStubSessionStore()
		svc := newTestCartService(store)
		require.NoError(t, svc.AddItem(ctx, "sess-1", "5"))
		require.NoError(t, svc.AddItem(ctx, "sess-1", "5"))

		require.NoError(t, svc.RemoveItem(ctx, "sess-1", "5"))

		session, _ := store.Get(ctx, "sess-1")
		assert.True(t, session.Cart.IsEmpty())
	})

	t.Run("removing an absent product succeeds", func(t *testing.T) {
		store := newStubSessionStore()
		svc := newTestCartService(store)

		assert.NoError(t, svc.RemoveItem(ctx, "sess-1", "99"))
	})
}

func TestCartServiceGetCart(t *testing.T) {
	ctx := context.Background()

	t.Run("prices the cart with flat shipping", func(t *testing.T) {
		store := newStubSessionStore()
		svc := newTestCartService(store)
		require.NoError(t, svc.AddItem(ctx, "sess-1", "5"))
		require.NoError(t, svc.AddItem(ctx, "sess-1", "5"))

		view, err := svc.GetCart(ctx, "sess-1")

		require.NoError(t, err)
		require.Len(t, view.Lines, 1)
		assert.True(t, view.Subtotal.Equal(decimal.NewFromInt(560)))
		assert.True(t, view.Shipping.Equal(decimal.NewFromInt(50)))
		assert.True(t, view.Total.Equal(decimal.NewFromInt(610)))
	})

	t.Run("empty cart has zero totals", func(t *testing.T) {
		svc := newTestCartService(newStubSessionStore())

		view, err := svc.GetCart(ctx, "sess-1")

		require.NoError(t, err)
		assert.Empty(t, view.Lines)
		assert.True(t, view.Shipping.IsZero())
		assert.True(t, view.Total.IsZero())
	})

	t.Run("omits stale lines from the view but keeps them stored", func(t *testing.T) {
		store := newStubSessionStore()
		svc := newTestCartService(store)
		// line added directly to the store for a product the catalog no
		// longer resolves
		_, err := store.Update(ctx, "sess-1", func(session *shopping.Session) error {
			session.Cart.Add("99")
			session.Cart.Add("5")
			return nil
		})
		require.NoError(t, err)

		view, err := svc.GetCart(ctx, "sess-1")

		require.NoError(t, err)
		require.Len(t, view.Lines, 1)
		assert.Equal(t, "5", view.Lines[0].ProductID)

		session, _ := store.Get(ctx, "sess-1")
		assert.Equal(t, 1, session.Cart.Quantity("99"))
	})

	t.Run("wraps store failures as internal errors", func(t *testing.T) {
		store := newStubSessionStore()
		store.failWith = errors.New("redis down")
		svc := newTestCartService(store)

		_, err := svc.GetCart(ctx, "sess-1")

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "INTERNAL_ERROR", domainErr.Code)
	})
}
