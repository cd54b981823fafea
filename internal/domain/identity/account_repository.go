package identity

import "context"

// AccountRepository defines the persistence contract for accounts
type AccountRepository interface {
	// Create persists a new account
	Create(ctx context.Context, account *Account) error
	// FindByUsername finds an account by username
	// Returns shared.ErrNotFound when no account matches
	FindByUsername(ctx context.Context, username string) (*Account, error)
	// ExistsByUsername reports whether an account with the username exists
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
