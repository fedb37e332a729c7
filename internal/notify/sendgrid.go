package notify

import (
	"context"
	"fmt"

	"github.com/kidiezyllex/real-estate-BE/internal/domain"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const sendGridEndpoint = "/v3/mail/send"

type SendGridEmailSender struct {
	apiKey   string
	host     string // empty means the public SendGrid API
	from     string
	fromName string
	subject  string
}

func NewSendGridEmailSender(apiKey, host, from, fromName, subject string) *SendGridEmailSender {
	return &SendGridEmailSender{
		apiKey:   apiKey,
		host:     host,
		from:     from,
		fromName: fromName,
		subject:  subject,
	}
}

func (s *SendGridEmailSender) SendReminder(ctx context.Context, address string, payload domain.ReminderPayload) error {
	msg := RenderReminder(s.subject, payload)
	message := mail.NewV3MailInit(
		mail.NewEmail(s.fromName, s.from),
		msg.Subject,
		mail.NewEmail(payload.GuestName, address),
		mail.NewContent("text/plain", msg.Text),
		mail.NewContent("text/html", msg.HTML),
	)

	request := sendgrid.GetRequest(s.apiKey, sendGridEndpoint, s.host)
	request.Method = "POST"
	request.Body = mail.GetRequestBody(message)

	response, err := sendgrid.MakeRequestWithContext(ctx, request)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
