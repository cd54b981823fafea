package engagement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReview(t *testing.T) {
	t.Run("creates review with author and body", func(t *testing.T) {
		review, err := NewReview("asha", "Great pickles, fast delivery.")
		require.NoError(t, err)
		assert.Equal(t, "asha", review.Author)
		assert.Equal(t, "Great pickles, fast delivery.", review.Body)
		assert.NotEqual(t, "", review.ID.String())
		assert.False(t, review.CreatedAt.IsZero())
	})

	t.Run("defaults empty author to Guest", func(t *testing.T) {
		review, err := NewReview("", "Loved the mango pickle")
		require.NoError(t, err)
		assert.Equal(t, GuestAuthor, review.Author)
	})

	t.Run("whitespace-only author is Guest", func(t *testing.T) {
		review, err := NewReview("   ", "Loved the mango pickle")
		require.NoError(t, err)
		assert.Equal(t, GuestAuthor, review.Author)
	})

	t.Run("rejects empty body", func(t *testing.T) {
		review, err := NewReview("asha", "   ")
		require.Error(t, err)
		assert.Nil(t, review)
		assert.Contains(t, err.Error(), "empty")
	})
}

func TestNewContactMessage(t *testing.T) {
	t.Run("creates message with trimmed fields", func(t *testing.T) {
		msg, err := NewContactMessage("  Asha ", " asha@example.com ", " Where is my order? ")
		require.NoError(t, err)
		assert.Equal(t, "Asha", msg.Name)
		assert.Equal(t, "asha@example.com", msg.Email)
		assert.Equal(t, "Where is my order?", msg.Message)
	})

	t.Run("email is optional", func(t *testing.T) {
		msg, err := NewContactMessage("Asha", "", "Do you deliver on weekends?")
		require.NoError(t, err)
		assert.Empty(t, msg.Email)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewContactMessage("", "a@b.com", "hello")
		require.Error(t, err)
	})

	t.Run("rejects empty message", func(t *testing.T) {
		_, err := NewContactMessage("Asha", "a@b.com", "  ")
		require.Error(t, err)
	})
}
