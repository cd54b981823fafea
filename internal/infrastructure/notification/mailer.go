// Package notification provides the SES and SNS backed senders used
// for order confirmations.
package notification

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	sestypes "github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"go.uber.org/zap"

	appshopping "github.com/pickleworks/backend/internal/application/shopping"
)

// SESAPI is the slice of the SES client the mailer depends on
type SESAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESMailer sends transactional email through Amazon SES
type SESMailer struct {
	client SESAPI
	sender string
}

// NewSESMailer creates a mailer with its own SES client
func NewSESMailer(ctx context.Context, region, sender string) (*SESMailer, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}
	return NewSESMailerWithClient(sesv2.NewFromConfig(awsCfg), sender), nil
}

// NewSESMailerWithClient creates a mailer with an existing SES client
func NewSESMailerWithClient(client SESAPI, sender string) *SESMailer {
	return &SESMailer{client: client, sender: sender}
}

// Send sends a plain-text email
func (m *SESMailer) Send(ctx context.Context, to, subject, body string) error {
	_, err := m.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(m.sender),
		Destination: &sestypes.Destination{
			ToAddresses: []string{to},
		},
		Content: &sestypes.EmailContent{
			Simple: &sestypes.Message{
				Subject: &sestypes.Content{Data: aws.String(subject)},
				Body: &sestypes.Body{
					Text: &sestypes.Content{Data: aws.String(body)},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// NopMailer discards all email. Used when mail is disabled in config.
type NopMailer struct {
	logger *zap.Logger
}

// NewNopMailer creates a mailer that only logs
func NewNopMailer(logger *zap.Logger) *NopMailer {
	return &NopMailer{logger: logger}
}

// Send logs the email instead of sending it
func (m *NopMailer) Send(_ context.Context, to, subject, _ string) error {
	m.logger.Debug("Mail disabled, dropping email",
		zap.String("to", to),
		zap.String("subject", subject))
	return nil
}

// Ensure both mailers satisfy the application contract
var (
	_ appshopping.Mailer = (*SESMailer)(nil)
	_ appshopping.Mailer = (*NopMailer)(nil)
)
