package service

import "context"

// MailSender is the outbound email collaborator. Delivery failures are
// reported to the caller and never retried automatically.
type MailSender interface {
	// Send delivers a single HTML email.
	Send(ctx context.Context, to, subject, htmlBody string) error
}
