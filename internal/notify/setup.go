package notify

import (
	"fmt"

	"github.com/kidiezyllex/real-estate-BE/internal/config"
	"github.com/kidiezyllex/real-estate-BE/internal/logger"
)

// FromConfig builds the reminder channel selected by the email and sms sections. The
// returned cleanup releases broker connections.
func FromConfig(cfg *config.Config) (*Channel, func(), error) {
	var email EmailSender
	switch cfg.Email.Provider {
	case "smtp":
		email = NewSMTPEmailSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From, cfg.Email.Subject)
	case "sendgrid":
		email = NewSendGridEmailSender(cfg.SendGrid.APIKey, cfg.SendGrid.Host, cfg.SendGrid.From, cfg.SendGrid.FromName, cfg.Email.Subject)
	case "log", "":
		email = LogSender{Medium: "email"}
	default:
		return nil, nil, fmt.Errorf("unknown email provider %q", cfg.Email.Provider)
	}

	cleanup := func() {}
	var sms SMSSender
	switch cfg.SMS.Provider {
	case "rabbitmq":
		publisher, err := DialRabbitMQ(cfg.SMS.RabbitMQURL, cfg.SMS.Queue)
		if err != nil {
			return nil, nil, err
		}
		sms = publisher
		cleanup = func() {
			if err := publisher.Close(); err != nil {
				logger.Warn("Failed to close RabbitMQ connection", "error", err)
			}
		}
	case "log", "":
		sms = LogSender{Medium: "sms"}
	default:
		return nil, nil, fmt.Errorf("unknown sms provider %q", cfg.SMS.Provider)
	}

	logger.Info("Notification channel ready", "email", cfg.Email.Provider, "sms", cfg.SMS.Provider)
	return NewChannel(email, sms), cleanup, nil
}
