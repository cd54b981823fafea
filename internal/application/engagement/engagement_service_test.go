package engagement

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pickleworks/backend/internal/domain/engagement"
	"github.com/pickleworks/backend/internal/domain/shared"
)

// MockReviewRepository is a mock implementation of engagement.ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Append(ctx context.Context, review *engagement.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) List(ctx context.Context) ([]*engagement.Review, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*engagement.Review), args.Error(1)
}

// MockContactRepository is a mock implementation of engagement.ContactRepository
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Append(ctx context.Context, message *engagement.ContactMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockContactRepository) List(ctx context.Context) ([]*engagement.ContactMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*engagement.ContactMessage), args.Error(1)
}

func TestEngagementServiceSubmitReview(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a review", func(t *testing.T) {
		reviews := new(MockReviewRepository)
		reviews.On("Append", ctx, mock.AnythingOfType("*engagement.Review")).Return(nil)

		svc := NewEngagementService(reviews, nil, zap.NewNop())
		resp, err := svc.SubmitReview(ctx, SubmitReviewInput{Author: "asha", Body: "Great pickles"})

		require.NoError(t, err)
		assert.Equal(t, "asha", resp.Author)
		reviews.AssertExpectations(t)
	})

	t.Run("anonymous review is attributed to Guest", func(t *testing.T) {
		reviews := new(MockReviewRepository)
		reviews.On("Append", ctx, mock.AnythingOfType("*engagement.Review")).Return(nil)

		svc := NewEngagementService(reviews, nil, zap.NewNop())
		resp, err := svc.SubmitReview(ctx, SubmitReviewInput{Body: "Great pickles"})

		require.NoError(t, err)
		assert.Equal(t, engagement.GuestAuthor, resp.Author)
	})

	t.Run("empty body is rejected before the repository", func(t *testing.T) {
		reviews := new(MockReviewRepository)

		svc := NewEngagementService(reviews, nil, zap.NewNop())
		_, err := svc.SubmitReview(ctx, SubmitReviewInput{Author: "asha"})

		require.Error(t, err)
		reviews.AssertNotCalled(t, "Append")
	})

	t.Run("store failure surfaces as dependency error", func(t *testing.T) {
		reviews := new(MockReviewRepository)
		reviews.On("Append", ctx, mock.Anything).Return(errors.New("dynamo down"))

		svc := NewEngagementService(reviews, nil, zap.NewNop())
		_, err := svc.SubmitReview(ctx, SubmitReviewInput{Author: "asha", Body: "Great"})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "DEPENDENCY_FAILED", domainErr.Code)
	})
}

func TestEngagementServiceListReviews(t *testing.T) {
	ctx := context.Background()

	t.Run("returns stored reviews", func(t *testing.T) {
		stored, err := engagement.NewReview("asha", "Great pickles")
		require.NoError(t, err)

		reviews := new(MockReviewRepository)
		reviews.On("List", ctx).Return([]*engagement.Review{stored}, nil)

		svc := NewEngagementService(reviews, nil, zap.NewNop())
		resp := svc.ListReviews(ctx)

		require.Len(t, resp, 1)
		assert.Equal(t, "asha", resp[0].Author)
	})

	t.Run("degrades to empty list on read failure", func(t *testing.T) {
		reviews := new(MockReviewRepository)
		reviews.On("List", ctx).Return(nil, errors.New("dynamo down"))

		svc := NewEngagementService(reviews, nil, zap.NewNop())
		resp := svc.ListReviews(ctx)

		assert.NotNil(t, resp)
		assert.Empty(t, resp)
	})
}

func TestEngagementServiceSubmitContact(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a contact message", func(t *testing.T) {
		contacts := new(MockContactRepository)
		contacts.On("Append", ctx, mock.AnythingOfType("*engagement.ContactMessage")).Return(nil)

		svc := NewEngagementService(nil, contacts, zap.NewNop())
		err := svc.SubmitContact(ctx, SubmitContactInput{Name: "Asha", Email: "a@b.com", Message: "Hi"})

		require.NoError(t, err)
		contacts.AssertExpectations(t)
	})

	t.Run("rejects empty message", func(t *testing.T) {
		contacts := new(MockContactRepository)

		svc := NewEngagementService(nil, contacts, zap.NewNop())
		err := svc.SubmitContact(ctx, SubmitContactInput{Name: "Asha"})

		require.Error(t, err)
		contacts.AssertNotCalled(t, "Append")
	})
}
