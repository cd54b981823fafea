package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/pickleworks/backend/internal/domain/shopping"
)

// orderRecord is the DynamoDB item shape for a placed order.
// Money fields are stored as decimal strings to avoid float drift.
type orderRecord struct {
	OrderID  string            `dynamodbav:"order_id"`
	Identity string            `dynamodbav:"identity,omitempty"`
	Name     string            `dynamodbav:"name,omitempty"`
	Address  string            `dynamodbav:"address,omitempty"`
	Email    string            `dynamodbav:"email,omitempty"`
	Phone    string            `dynamodbav:"phone,omitempty"`
	Lines    []orderLineRecord `dynamodbav:"lines"`
	Subtotal string            `dynamodbav:"subtotal"`
	Shipping string            `dynamodbav:"shipping"`
	Total    string            `dynamodbav:"total"`
	PlacedAt string            `dynamodbav:"placed_at"`
}

type orderLineRecord struct {
	ProductID string `dynamodbav:"product_id"`
	Name      string `dynamodbav:"name"`
	Quantity  int    `dynamodbav:"quantity"`
	UnitPrice string `dynamodbav:"unit_price"`
	LineTotal string `dynamodbav:"line_total"`
}

// DynamoOrderStore implements shopping.OrderRepository on DynamoDB
type DynamoOrderStore struct {
	client DynamoAPI
	table  string
}

// NewDynamoOrderStore creates a new order store writing to the given table
func NewDynamoOrderStore(client DynamoAPI, table string) *DynamoOrderStore {
	return &DynamoOrderStore{client: client, table: table}
}

// Save writes the placed order as a single item keyed by order ID
func (s *DynamoOrderStore) Save(ctx context.Context, order *shopping.Order) error {
	record := orderRecord{
		OrderID:  order.ID.String(),
		Identity: order.Identity,
		Name:     order.Contact.Name,
		Address:  order.Contact.Address,
		Email:    order.Contact.Email,
		Phone:    order.Contact.Phone,
		Lines:    make([]orderLineRecord, 0, len(order.Lines)),
		Subtotal: order.Subtotal.String(),
		Shipping: order.Shipping.String(),
		Total:    order.Total.String(),
		PlacedAt: order.PlacedAt.UTC().Format(time.RFC3339),
	}
	for _, line := range order.Lines {
		record.Lines = append(record.Lines, orderLineRecord{
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice.String(),
			LineTotal: line.LineTotal.String(),
		})
	}

	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return fmt.Errorf("failed to encode order: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to store order: %w", err)
	}
	return nil
}

// Ensure DynamoOrderStore implements OrderRepository
var _ shopping.OrderRepository = (*DynamoOrderStore)(nil)
