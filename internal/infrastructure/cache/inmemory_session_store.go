package cache

import (
	"context"
	"sync"

	"github.com/pickleworks/backend/internal/domain/shopping"
)

// InMemorySessionStore implements shopping.SessionStore with a mutex-guarded
// map. It is suitable for single-instance deployments and tests; distributed
// deployments use RedisSessionStore.
type InMemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]*shopping.Session
}

// NewInMemorySessionStore creates a new in-memory session store
func NewInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{
		sessions: make(map[string]*shopping.Session),
	}
}

// Get loads the session, returning a fresh empty one when absent
func (s *InMemorySessionStore) Get(_ context.Context, id string) (*shopping.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[id]; ok {
		return cloneSession(session), nil
	}
	return shopping.NewSession(id), nil
}

// SetCart replaces the cart stored for the session
func (s *InMemorySessionStore) SetCart(ctx context.Context, id string, cart shopping.Cart) error {
	_, err := s.Update(ctx, id, func(session *shopping.Session) error {
		session.Cart = cart
		return nil
	})
	return err
}

// SetIdentity binds an authenticated identity to the session
func (s *InMemorySessionStore) SetIdentity(ctx context.Context, id string, username string) error {
	_, err := s.Update(ctx, id, func(session *shopping.Session) error {
		session.Identity = username
		return nil
	})
	return err
}

// Clear removes the session entirely
func (s *InMemorySessionStore) Clear(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Update applies fn to the session while holding the store lock, so
// concurrent updates for the same session serialize instead of racing.
// The session is only persisted when fn succeeds.
func (s *InMemorySessionStore) Update(_ context.Context, id string, fn func(*shopping.Session) error) (*shopping.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	working := shopping.NewSession(id)
	if stored, ok := s.sessions[id]; ok {
		working = cloneSession(stored)
	}

	if err := fn(working); err != nil {
		return nil, err
	}

	s.sessions[id] = cloneSession(working)
	return working, nil
}

func cloneSession(session *shopping.Session) *shopping.Session {
	clone := *session
	clone.Cart = session.Cart.Clone()
	return &clone
}

// Ensure InMemorySessionStore implements SessionStore
var _ shopping.SessionStore = (*InMemorySessionStore)(nil)
