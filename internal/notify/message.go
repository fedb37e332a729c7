package notify

import (
	"fmt"
	"html"

	"github.com/kidiezyllex/real-estate-BE/internal/domain"
)

const defaultSubject = "Payment reminder"

// Message is a rendered reminder, ready for any transport.
type Message struct {
	Subject string
	Text    string
	HTML    string
}

func kindLabel(kind domain.ContractKind) string {
	if kind == domain.ContractKindAncillary {
		return "service"
	}
	return "rent"
}

// RenderReminder builds the email body for one due payment.
func RenderReminder(subject string, p domain.ReminderPayload) Message {
	if subject == "" {
		subject = defaultSubject
	}
	due := domain.FormatDate(p.ExpectedDate)
	amount := p.Amount.String()
	label := kindLabel(p.ContractKind)

	text := fmt.Sprintf("Hello %s,\n\nYour %s payment of %s is due on %s.\n\nPayment reference: %s\n\nThank you.",
		p.GuestName, label, amount, due, p.PaymentID)
	body := fmt.Sprintf("<p>Hello %s,</p><p>Your %s payment of <strong>%s</strong> is due on <strong>%s</strong>.</p><p>Payment reference: %s</p><p>Thank you.</p>",
		html.EscapeString(p.GuestName), label, amount, due, p.PaymentID)

	return Message{Subject: subject, Text: text, HTML: body}
}

// SMSText is the short form of the reminder.
func SMSText(p domain.ReminderPayload) string {
	return fmt.Sprintf("%s: %s payment of %s due %s. Ref %s",
		p.GuestName, kindLabel(p.ContractKind), p.Amount.String(), domain.FormatDate(p.ExpectedDate), p.PaymentID.String()[:8])
}
