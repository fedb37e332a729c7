package notify

import (
	"context"
	"fmt"

	"github.com/kidiezyllex/real-estate-BE/internal/domain"
	"gopkg.in/gomail.v2"
)

type mailDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPEmailSender struct {
	dialer  mailDialer
	from    string
	subject string
}

func NewSMTPEmailSender(host string, port int, username, password, from, subject string) *SMTPEmailSender {
	return &SMTPEmailSender{
		dialer:  gomail.NewDialer(host, port, username, password),
		from:    from,
		subject: subject,
	}
}

func (s *SMTPEmailSender) SendReminder(ctx context.Context, address string, payload domain.ReminderPayload) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := RenderReminder(s.subject, payload)

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetAddressHeader("To", address, payload.GuestName)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	m.AddAlternative("text/html", msg.HTML)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send reminder via gomail: %w", err)
	}
	return nil
}
