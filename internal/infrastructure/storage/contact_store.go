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

type contactRecord struct {
	MessageID string `dynamodbav:"message_id"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email,omitempty"`
	Message   string `dynamodbav:"message"`
	CreatedAt string `dynamodbav:"created_at"`
}

// DynamoContactStore implements engagement.ContactRepository on DynamoDB
type DynamoContactStore struct {
	client DynamoAPI
	table  string
}

// NewDynamoContactStore creates a new contact message store
func NewDynamoContactStore(client DynamoAPI, table string) *DynamoContactStore {
	return &DynamoContactStore{client: client, table: table}
}

// Append stores a contact message keyed by its ID
func (s *DynamoContactStore) Append(ctx context.Context, message *engagement.ContactMessage) error {
	item, err := attributevalue.MarshalMap(contactRecord{
		MessageID: message.ID.String(),
		Name:      message.Name,
		Email:     message.Email,
		Message:   message.Message,
		CreatedAt: message.CreatedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to encode contact message: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to store contact message: %w", err)
	}
	return nil
}

// List returns all contact messages, newest first
func (s *DynamoContactStore) List(ctx context.Context) ([]*engagement.ContactMessage, error) {
	out, err := s.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.table),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}

	var records []contactRecord
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &records); err != nil {
		return nil, fmt.Errorf("failed to decode contact messages: %w", err)
	}

	messages := make([]*engagement.ContactMessage, 0, len(records))
	for _, record := range records {
		id, err := uuid.Parse(record.MessageID)
		if err != nil {
			continue
		}
		createdAt, err := time.Parse(time.RFC3339, record.CreatedAt)
		if err != nil {
			continue
		}
		messages = append(messages, &engagement.ContactMessage{
			ID:        id,
			Name:      record.Name,
			Email:     record.Email,
			Message:   record.Message,
			CreatedAt: createdAt,
		})
	}

	sort.Slice(messages, func(i, j int) bool {
		return messages[i].CreatedAt.After(messages[j].CreatedAt)
	})
	return messages, nil
}

// Ensure DynamoContactStore implements ContactRepository
var _ engagement.ContactRepository = (*DynamoContactStore)(nil)
