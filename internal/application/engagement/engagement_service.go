package engagement

import (
	"context"

	"go.uber.org/zap"

	"github.com/pickleworks/backend/internal/domain/engagement"
	"github.com/pickleworks/backend/internal/domain/shared"
)

// EngagementService handles reviews and contact-form submissions
type EngagementService struct {
	reviews  engagement.ReviewRepository
	contacts engagement.ContactRepository
	logger   *zap.Logger
}

// NewEngagementService creates a new engagement service
func NewEngagementService(
	reviews engagement.ReviewRepository,
	contacts engagement.ContactRepository,
	logger *zap.Logger,
) *EngagementService {
	return &EngagementService{
		reviews:  reviews,
		contacts: contacts,
		logger:   logger,
	}
}

// SubmitReview stores a review. Unlike order persistence this append
// must succeed for the submission to be acknowledged.
func (s *EngagementService) SubmitReview(ctx context.Context, input SubmitReviewInput) (*ReviewResponse, error) {
	review, err := engagement.NewReview(input.Author, input.Body)
	if err != nil {
		return nil, err
	}

	if err := s.reviews.Append(ctx, review); err != nil {
		s.logger.Error("Failed to store review", zap.Error(err))
		return nil, shared.NewDomainError("DEPENDENCY_FAILED", "Failed to store review")
	}

	return toReviewResponse(review), nil
}

// ListReviews returns stored reviews for the reviews page. A read
// failure degrades to an empty list rather than an error page.
func (s *EngagementService) ListReviews(ctx context.Context) []*ReviewResponse {
	reviews, err := s.reviews.List(ctx)
	if err != nil {
		s.logger.Warn("Failed to list reviews, serving empty page", zap.Error(err))
		return []*ReviewResponse{}
	}

	responses := make([]*ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, toReviewResponse(review))
	}
	return responses
}

// SubmitContact stores a contact-form message
func (s *EngagementService) SubmitContact(ctx context.Context, input SubmitContactInput) error {
	message, err := engagement.NewContactMessage(input.Name, input.Email, input.Message)
	if err != nil {
		return err
	}

	if err := s.contacts.Append(ctx, message); err != nil {
		s.logger.Error("Failed to store contact message", zap.Error(err))
		return shared.NewDomainError("DEPENDENCY_FAILED", "Failed to store message")
	}

	return nil
}

// ListContacts returns stored contact messages. Like ListReviews, a
// read failure degrades to an empty list.
func (s *EngagementService) ListContacts(ctx context.Context) []*ContactResponse {
	messages, err := s.contacts.List(ctx)
	if err != nil {
		s.logger.Warn("Failed to list contact messages, serving empty list", zap.Error(err))
		return []*ContactResponse{}
	}

	responses := make([]*ContactResponse, 0, len(messages))
	for _, message := range messages {
		responses = append(responses, toContactResponse(message))
	}
	return responses
}

func toContactResponse(message *engagement.ContactMessage) *ContactResponse {
	return &ContactResponse{
		ID:        message.ID.String(),
		Name:      message.Name,
		Email:     message.Email,
		Message:   message.Message,
		CreatedAt: message.CreatedAt,
	}
}

func toReviewResponse(review *engagement.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:        review.ID.String(),
		Author:    review.Author,
		Body:      review.Body,
		CreatedAt: review.CreatedAt,
	}
}
