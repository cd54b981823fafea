package engagement

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pickleworks/backend/internal/domain/shared"
)

// ContactMessage is a message sent through the contact form.
type ContactMessage struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// NewContactMessage creates a contact message. Name and message are
// required; email is optional since not every visitor wants a reply.
func NewContactMessage(name, email, message string) (*ContactMessage, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)

	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Name cannot be empty")
	}
	if message == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Message cannot be empty")
	}

	return &ContactMessage{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: time.Now(),
	}, nil
}

// ContactRepository is the append-only store for contact messages.
type ContactRepository interface {
	Append(ctx context.Context, message *ContactMessage) error
	List(ctx context.Context) ([]*ContactMessage, error)
}
