package services

import (
	"context"
	"log/slog"

	portssvc "github.com/SellSage/biz_management_app/internal/core/ports/services"
	"github.com/SellSage/biz_management_app/internal/middleware"
)

// LogNotifier writes notifications to the structured log. It stands in for a
// real delivery channel (push, email) behind the Notifier port.
type LogNotifier struct{}

var _ portssvc.Notifier = (*LogNotifier)(nil)

// NewLogNotifier creates a new LogNotifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Notify logs the notification. Never blocks, never fails the caller.
func (n *LogNotifier) Notify(ctx context.Context, recipientUserID string, subject string, body string) {
	middleware.GetLoggerFromCtx(ctx).Info("Notification",
		slog.String("recipient_user_id", recipientUserID),
		slog.String("subject", subject),
		slog.String("body", body),
	)
}
