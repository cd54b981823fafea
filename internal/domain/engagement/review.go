package engagement

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pickleworks/backend/internal/domain/shared"
)

// GuestAuthor is the author recorded for reviews left without a
// signed-in identity.
const GuestAuthor = "Guest"

// Review is a free-form product review left by a visitor. Reviews are
// append-only; there is no editing or moderation workflow.
type Review struct {
	ID        uuid.UUID `json:"id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// NewReview creates a review. An empty author falls back to GuestAuthor;
// an empty body is an input error.
func NewReview(author, body string) (*Review, error) {
	author = strings.TrimSpace(author)
	body = strings.TrimSpace(body)

	if body == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Review body cannot be empty")
	}
	if author == "" {
		author = GuestAuthor
	}

	return &Review{
		ID:        uuid.New(),
		Author:    author,
		Body:      body,
		CreatedAt: time.Now(),
	}, nil
}

// ReviewRepository is the append-only store for reviews. Append must
// succeed for the submission to be acknowledged; List is best-effort
// read access for the reviews page.
type ReviewRepository interface {
	Append(ctx context.Context, review *Review) error
	List(ctx context.Context) ([]*Review, error)
}
