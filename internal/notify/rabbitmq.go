package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kidiezyllex/real-estate-BE/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
)

// SMSRequest is the message body consumed by the SMS gateway worker.
type SMSRequest struct {
	To           string    `json:"to"`
	Body         string    `json:"body"`
	PaymentID    uuid.UUID `json:"payment_id"`
	ExpectedDate string    `json:"expected_date"`
}

type amqpPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// RabbitMQSMSSender publishes SMS requests to a durable queue on the default exchange.
type RabbitMQSMSSender struct {
	conn  *amqp.Connection
	ch    amqpPublisher
	queue string
}

func NewRabbitMQSMSSender(ch amqpPublisher, queue string) *RabbitMQSMSSender {
	return &RabbitMQSMSSender{ch: ch, queue: queue}
}

// DialRabbitMQ connects to the broker and declares the SMS queue.
func DialRabbitMQ(url, queue string) (*RabbitMQSMSSender, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq: dial failed: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq: channel open failed: %w", err)
	}
	if _, err := ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq: queue declare failed: %w", err)
	}
	return &RabbitMQSMSSender{conn: conn, ch: ch, queue: queue}, nil
}

func (s *RabbitMQSMSSender) SendReminder(ctx context.Context, number string, payload domain.ReminderPayload) error {
	body, err := json.Marshal(SMSRequest{
		To:           number,
		Body:         SMSText(payload),
		PaymentID:    payload.PaymentID,
		ExpectedDate: domain.FormatDate(payload.ExpectedDate),
	})
	if err != nil {
		return fmt.Errorf("rabbitmq: marshal sms request failed: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    payload.PaymentID.String(),
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := s.ch.PublishWithContext(ctx, "", s.queue, false, false, pub); err != nil {
		return fmt.Errorf("rabbitmq: publish failed: %w", err)
	}
	return nil
}

func (s *RabbitMQSMSSender) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}
