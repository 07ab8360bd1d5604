package services

import "context"

// Notifier delivers out-of-band notifications to users. Implementations must
// not block request handling; failures are logged, never surfaced to callers.
type Notifier interface {
	Notify(ctx context.Context, recipientUserID string, subject string, body string)
}
