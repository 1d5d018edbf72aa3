// Package rabbitmq publishes notification intents to the message broker
// consumed by the external notification dispatcher. The dispatcher owns
// template rendering and actual email/SMS transmission; this side only
// hands it structured intents.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	"shipping/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	intentKindEmail = "email"
	intentKindSMS   = "sms"
)

// intentEnvelope is the wire format for a queued notification intent.
type intentEnvelope struct {
	Kind  string             `json:"kind"`
	Email *ports.EmailIntent `json:"email,omitempty"`
	SMS   *ports.SMSIntent   `json:"sms,omitempty"`
}

// Publisher writes notification intents to a durable queue.
type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
}

// Dial connects to the broker and declares the durable intent queue.
// The caller owns the returned publisher and must Close it.
func Dial(url string, queue string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare queue %q: %w", queue, err)
	}

	return &Publisher{
		conn:    conn,
		channel: channel,
		queue:   queue,
	}, nil
}

// PublishEmail queues an email intent for the dispatcher.
func (p *Publisher) PublishEmail(ctx context.Context, intent ports.EmailIntent) error {
	return p.publish(ctx, intentEnvelope{Kind: intentKindEmail, Email: &intent})
}

// PublishSMS queues an SMS intent for the dispatcher.
func (p *Publisher) PublishSMS(ctx context.Context, intent ports.SMSIntent) error {
	return p.publish(ctx, intentEnvelope{Kind: intentKindSMS, SMS: &intent})
}

// Close releases the channel and connection.
func (p *Publisher) Close() error {
	if err := p.channel.Close(); err != nil {
		_ = p.conn.Close()
		return err
	}
	return p.conn.Close()
}

func (p *Publisher) publish(ctx context.Context, envelope intentEnvelope) error {
	body, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to encode intent: %w", err)
	}

	err = p.channel.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish intent: %w", err)
	}

	return nil
}
