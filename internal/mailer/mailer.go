// internal/mailer/mailer.go
package mailer

import "context"

// Sender is the transactional email provider boundary.
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
