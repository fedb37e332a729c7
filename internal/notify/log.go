package notify

import (
	"context"

	"github.com/kidiezyllex/real-estate-BE/internal/domain"
	"github.com/kidiezyllex/real-estate-BE/internal/logger"
)

// LogSender only records reminders in the log. Used in development and when no
// transport is configured.
type LogSender struct {
	Medium string
}

func (s LogSender) SendReminder(ctx context.Context, to string, payload domain.ReminderPayload) error {
	logger.InfoContext(ctx, "Reminder hand-off (log only)",
		"medium", s.Medium,
		"to", to,
		"paymentID", payload.PaymentID,
		"guest", payload.GuestName,
		"amount", payload.Amount.String(),
		"expectedDate", domain.FormatDate(payload.ExpectedDate),
	)
	return nil
}
