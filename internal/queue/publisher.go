// Package queue provides the RabbitMQ-backed task queue used for
// asynchronous side effects such as confirmation emails and featured
// speaker updates.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"conferencecentral/config"
	"conferencecentral/internal/domain"
)

type publisher struct {
	url       string
	queueName string
}

// NewPublisher returns a TaskQueue that publishes persistent JSON tasks
// to a durable RabbitMQ queue. A connection is opened per publish so the
// publisher never holds broker state between requests.
func NewPublisher(cfg config.QueueConfig) domain.TaskQueue {
	return &publisher{url: cfg.URL, queueName: cfg.QueueName}
}

func (p *publisher) Enqueue(ctx context.Context, task domain.Task) error {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("failed to dial broker: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	// Declare is idempotent. Durable so tasks survive broker restarts.
	if _, err := ch.QueueDeclare(p.queueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	body, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to marshal task: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    task.ID,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", p.queueName, false, false, pub); err != nil {
		return fmt.Errorf("failed to publish task: %w", err)
	}
	return nil
}
