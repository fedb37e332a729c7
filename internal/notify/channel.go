package notify

import (
	"context"
	"errors"

	"github.com/kidiezyllex/real-estate-BE/internal/domain"
	"github.com/kidiezyllex/real-estate-BE/internal/logger"
)

// EmailSender delivers a reminder to an email address.
type EmailSender interface {
	SendReminder(ctx context.Context, address string, payload domain.ReminderPayload) error
}

// SMSSender hands a reminder to an SMS gateway.
type SMSSender interface {
	SendReminder(ctx context.Context, number string, payload domain.ReminderPayload) error
}

var ErrChannelDisabled = errors.New("notification channel disabled")

// Channel routes reminders to the configured email and SMS senders.
type Channel struct {
	email EmailSender
	sms   SMSSender
}

func NewChannel(email EmailSender, sms SMSSender) *Channel {
	return &Channel{email: email, sms: sms}
}

func (c *Channel) SendEmail(ctx context.Context, address string, payload domain.ReminderPayload) error {
	if c.email == nil {
		return ErrChannelDisabled
	}
	logger.ExternalServiceCall("email", "SendReminder", "paymentID", payload.PaymentID)
	err := c.email.SendReminder(ctx, address, payload)
	logger.ExternalServiceResult("email", "SendReminder", err, "paymentID", payload.PaymentID)
	return err
}

func (c *Channel) SendSMS(ctx context.Context, number string, payload domain.ReminderPayload) error {
	if c.sms == nil {
		return ErrChannelDisabled
	}
	logger.ExternalServiceCall("sms", "SendReminder", "paymentID", payload.PaymentID)
	err := c.sms.SendReminder(ctx, number, payload)
	logger.ExternalServiceResult("sms", "SendReminder", err, "paymentID", payload.PaymentID)
	return err
}
