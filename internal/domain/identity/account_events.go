package identity

import "github.com/pickleworks/backend/internal/domain/shared"

// Event types for the account aggregate
const (
	EventTypeAccountRegistered = "identity.account.registered"
)

// AccountRegisteredEvent is published when a new account is registered
type AccountRegisteredEvent struct {
	shared.BaseDomainEvent
	Username string `json:"username"`
}

// NewAccountRegisteredEvent creates a new AccountRegisteredEvent
func NewAccountRegisteredEvent(account *Account) *AccountRegisteredEvent {
	return &AccountRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAccountRegistered, account.ID, "Account"),
		Username:        account.Username,
	}
}
