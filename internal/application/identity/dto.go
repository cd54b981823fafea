package identity

import (
	"time"

	"github.com/google/uuid"
)

// RegisterInput contains the input for account registration
type RegisterInput struct {
	Username string
	Password string
}

// LoginInput contains the input for shopper login
type LoginInput struct {
	Username string
	Password string
}

// AccountInfo contains the account fields exposed outside the service
type AccountInfo struct {
	ID        uuid.UUID
	Username  string
	CreatedAt time.Time
}
