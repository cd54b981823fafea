package notification

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"go.uber.org/zap"

	appshopping "github.com/pickleworks/backend/internal/application/shopping"
)

// SNSAPI is the slice of the SNS client the notifier depends on
type SNSAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSNotifier publishes order notifications through Amazon SNS:
// direct SMS to the shopper's phone and a fan-out topic for the
// store operators.
type SNSNotifier struct {
	client   SNSAPI
	topicARN string
}

// NewSNSNotifier creates a notifier with its own SNS client
func NewSNSNotifier(ctx context.Context, region, topicARN string) (*SNSNotifier, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}
	return NewSNSNotifierWithClient(sns.NewFromConfig(awsCfg), topicARN), nil
}

// NewSNSNotifierWithClient creates a notifier with an existing SNS client
func NewSNSNotifierWithClient(client SNSAPI, topicARN string) *SNSNotifier {
	return &SNSNotifier{client: client, topicARN: topicARN}
}

// PublishPhone sends an SMS directly to a phone number
func (n *SNSNotifier) PublishPhone(ctx context.Context, phone, message string) error {
	_, err := n.client.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(phone),
		Message:     aws.String(message),
	})
	if err != nil {
		return fmt.Errorf("failed to publish SMS: %w", err)
	}
	return nil
}

// PublishTopic publishes to the configured operator topic.
// A notifier without a topic silently skips the publish.
func (n *SNSNotifier) PublishTopic(ctx context.Context, message string) error {
	if n.topicARN == "" {
		return nil
	}
	_, err := n.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.topicARN),
		Message:  aws.String(message),
	})
	if err != nil {
		return fmt.Errorf("failed to publish to topic: %w", err)
	}
	return nil
}

// NopNotifier discards all notifications. Used when SMS is disabled.
type NopNotifier struct {
	logger *zap.Logger
}

// NewNopNotifier creates a notifier that only logs
func NewNopNotifier(logger *zap.Logger) *NopNotifier {
	return &NopNotifier{logger: logger}
}

// PublishPhone logs the SMS instead of sending it
func (n *NopNotifier) PublishPhone(_ context.Context, phone, _ string) error {
	n.logger.Debug("SMS disabled, dropping message", zap.String("phone", phone))
	return nil
}

// PublishTopic logs the notification instead of publishing it
func (n *NopNotifier) PublishTopic(_ context.Context, _ string) error {
	n.logger.Debug("SMS disabled, dropping topic publish")
	return nil
}

// Ensure both notifiers satisfy the application contract
var (
	_ appshopping.Notifier = (*SNSNotifier)(nil)
	_ appshopping.Notifier = (*NopNotifier)(nil)
)
