package shopping

import "context"

// Session is the per-browser-session state: an optional authenticated
// identity and the cart. The session owns its cart exclusively; cart
// state is always read from and written back to the session.
type Session struct {
	ID       string `json:"id"`
	Identity string `json:"identity,omitempty"`
	Cart     Cart   `json:"cart"`
}

// NewSession creates a fresh, unauthenticated session with an empty cart
func NewSession(id string) *Session {
	return &Session{ID: id, Cart: NewCart()}
}

// IsAuthenticated reports whether an identity is bound to the session
func (s *Session) IsAuthenticated() bool {
	return s.Identity != ""
}

// SessionStore is the key-value backed store for sessions.
// Get never fails on a missing session: it returns a fresh empty one,
// so a session exists implicitly from the first interaction.
type SessionStore interface {
	// Get loads the session, creating an empty one when absent
	Get(ctx context.Context, id string) (*Session, error)
	// SetCart replaces the cart stored for the session
	SetCart(ctx context.Context, id string, cart Cart) error
	// SetIdentity binds an authenticated identity to the session
	SetIdentity(ctx context.Context, id string, username string) error
	// Clear removes the session entirely (identity and cart); the next
	// Get for the same id starts a fresh empty session
	Clear(ctx context.Context, id string) error
	// Update applies fn to the session under a per-session write guard
	// and persists the result, so concurrent requests for the same
	// session id cannot lose updates
	Update(ctx context.Context, id string, fn func(*Session) error) (*Session, error)
}
