package identity

import (
	"strings"

	"github.com/pickleworks/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

const maxUsernameLength = 50

// Account represents a registered shopper credential.
// It is the aggregate root for the account directory; accounts are
// never deleted and there is no password reset in this design.
type Account struct {
	shared.BaseAggregateRoot
	Username     string
	PasswordHash string
}

// NewAccount creates a new account with a hashed password.
// Username and password are trimmed first; either being empty after
// trimming is an input error.
func NewAccount(username, password string) (*Account, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Password cannot be empty")
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to hash password")
	}

	account := &Account{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Username:          username,
		PasswordHash:      passwordHash,
	}

	account.AddDomainEvent(NewAccountRegisteredEvent(account))

	return account, nil
}

// VerifyPassword verifies if the provided password matches the stored hash
func (a *Account) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(strings.TrimSpace(password)))
	return err == nil
}

// validateUsername validates the username
func validateUsername(username string) error {
	if username == "" {
		return shared.NewDomainError("INVALID_INPUT", "Username cannot be empty")
	}
	if len(username) > maxUsernameLength {
		return shared.NewDomainError("INVALID_INPUT", "Username cannot exceed 50 characters")
	}
	return nil
}

// hashPassword hashes a password using bcrypt
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
