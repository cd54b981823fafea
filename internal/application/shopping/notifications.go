package shopping

import "context"

// Mailer sends transactional email. Implementations must be safe for
// concurrent use.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Notifier publishes short out-of-band notifications (SMS or a fan-out
// topic) about store activity.
type Notifier interface {
	PublishPhone(ctx context.Context, phone, message string) error
	PublishTopic(ctx context.Context, message string) error
}
