package storage

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"

	"github.com/pickleworks/backend/internal/domain/engagement"
)

type reviewRecord struct {
	ReviewID  string `dynamodbav:"review_id"`
	Author    string `dynamodbav:"author"`
	Body      string `dynamodbav:"body"`
	CreatedAt string `dynamodbav:"created_at"`
}

// DynamoReviewStore implements engagement.ReviewRepository on DynamoDB.
// The reviews table is small enough that List does a full Scan and
// sorts newest-first in memory.
type DynamoReviewStore struct {
	client DynamoAPI
	table  string
}

// NewDynamoReviewStore creates a new review store
func NewDynamoReviewStore(client DynamoAPI, table string) *DynamoReviewStore {
	return &DynamoReviewStore{client: client, table: table}
}

// Append stores a review keyed by its ID
func (s *DynamoReviewStore) Append(ctx context.Context, review *engagement.Review) error {
	item, err := attributevalue.MarshalMap(reviewRecord{
		ReviewID:  review.ID.String(),
		Author:    review.Author,
		Body:      review.Body,
		CreatedAt: review.CreatedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to encode review: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to store review: %w", err)
	}
	return nil
}

// List returns all reviews, newest first
func (s *DynamoReviewStore) List(ctx context.Context) ([]*engagement.Review, error) {
	out, err := s.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.table),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	var records []reviewRecord
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &records); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}

	reviews := make([]*engagement.Review, 0, len(records))
	for _, record := range records {
		id, err := uuid.Parse(record.ReviewID)
		if err != nil {
			continue
		}
		createdAt, err := time.Parse(time.RFC3339, record.CreatedAt)
		if err != nil {
			continue
		}
		reviews = append(reviews, &engagement.Review{
			ID:        id,
			Author:    record.Author,
			Body:      record.Body,
			CreatedAt: createdAt,
		})
	}

	sort.Slice(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
	return reviews, nil
}

// Ensure DynamoReviewStore implements ReviewRepository
var _ engagement.ReviewRepository = (*DynamoReviewStore)(nil)
