package queue

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

const queueName = "directory.events"

// Publisher emits directory events to RabbitMQ. Publishing happens inline
// in the request path and must never break a write that already committed:
// errors are logged and returned so callers can choose to ignore them.
// A Publisher with an empty URL is a no-op, which keeps the broker optional
// in development.
type Publisher struct {
	url string
	log zerolog.Logger
}

// NewPublisher constructs a Publisher for the given broker URL. An empty
// URL disables publishing.
func NewPublisher(url string, log zerolog.Logger) *Publisher {
	return &Publisher{url: url, log: log}
}

// Publish declares the durable event queue and sends one persistent
// message. The connection is established per publish; event volume is a
// handful per write request, so holding a channel open is not worth the
// reconnect handling.
func (p *Publisher) Publish(ctx context.Context, kind string, entityID uint64, name string) error {
	if p.url == "" {
		return nil
	}
	event := Event{
		ID:         uuid.NewString(),
		Kind:       kind,
		EntityID:   entityID,
		Name:       name,
		OccurredAt: time.Now().UTC(),
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Error().Err(err).Msg("rabbitmq: dial failed")
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Error().Err(err).Msg("rabbitmq: channel open failed")
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare; durable so events survive broker restarts.
	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		p.log.Error().Err(err).Msg("rabbitmq: queue declare failed")
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.log.Error().Err(err).Msg("rabbitmq: marshal event failed")
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID,
		Timestamp:    event.OccurredAt,
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", queueName, false, false, pub); err != nil {
		p.log.Error().Err(err).Str("kind", kind).Msg("rabbitmq: publish failed")
		return err
	}
	return nil
}
