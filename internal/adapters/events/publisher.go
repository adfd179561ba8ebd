package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"fyyur/internal/domain"

	amqp "github.com/rabbitmq/amqp091-go"
)

// DefaultQueue receives every directory event.
const DefaultQueue = "fyyur.directory"

// defaultDialTimeout bounds connecting and the AMQP handshake when the
// caller's context has no earlier deadline.
const defaultDialTimeout = 2 * time.Second

type amqpPublisher struct {
	url         string
	queue       string
	dialTimeout time.Duration
	logger      *slog.Logger
}

// NewPublisher returns an EventPublisher that delivers events as persistent
// JSON messages to a durable RabbitMQ queue. An empty url returns a publisher
// that only logs.
func NewPublisher(url, queue string, logger *slog.Logger) domain.EventPublisher {
	if url == "" {
		return &noopPublisher{logger: logger}
	}
	if queue == "" {
		queue = DefaultQueue
	}
	return &amqpPublisher{url: url, queue: queue, dialTimeout: defaultDialTimeout, logger: logger}
}

// Publish opens a connection and channel per event.
func (p *amqpPublisher) Publish(ctx context.Context, event domain.DirectoryEvent) error {
	msg, err := newPublishing(event)
	if err != nil {
		return err
	}

	timeout, err := p.handshakeTimeout(ctx)
	if err != nil {
		return fmt.Errorf("rabbitmq dial: %w", err)
	}
	conn, err := amqp.DialConfig(p.url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(timeout),
	})
	if err != nil {
		return fmt.Errorf("rabbitmq dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("rabbitmq channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		p.queue, // name
		true,    // durable
		false,   // autoDelete
		false,   // exclusive
		false,   // noWait
		nil,     // args
	); err != nil {
		return fmt.Errorf("rabbitmq queue declare: %w", err)
	}

	if err := ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		msg,
	); err != nil {
		return fmt.Errorf("rabbitmq publish: %w", err)
	}
	p.logger.DebugContext(ctx, "directory event published", "type", event.Type, "entity_id", event.EntityID)
	return nil
}

// handshakeTimeout is the dial timeout capped by the time left on ctx.
func (p *amqpPublisher) handshakeTimeout(ctx context.Context) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	timeout := p.dialTimeout
	if deadline, ok := ctx.Deadline(); ok {
		left := time.Until(deadline)
		if left <= 0 {
			return 0, context.DeadlineExceeded
		}
		if left < timeout {
			timeout = left
		}
	}
	return timeout, nil
}

func newPublishing(event domain.DirectoryEvent) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("marshal event: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Type:         event.Type,
		Timestamp:    event.OccurredAt,
		Body:         body,
	}, nil
}

type noopPublisher struct {
	logger *slog.Logger
}

func (n *noopPublisher) Publish(ctx context.Context, event domain.DirectoryEvent) error {
	n.logger.DebugContext(ctx, "directory event (noop)", "type", event.Type, "entity_id", event.EntityID)
	return nil
}
