package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"conferencecentral/config"
	"conferencecentral/internal/domain"
)

// Worker consumes tasks from the queue and dispatches them to registered
// handlers by the task's handler path.
type Worker struct {
	url       string
	queueName string
	handlers  map[string]domain.TaskHandlerFunc
	logger    *slog.Logger
}

func NewWorker(cfg config.QueueConfig, handlers map[string]domain.TaskHandlerFunc, logger *slog.Logger) *Worker {
	return &Worker{
		url:       cfg.URL,
		queueName: cfg.QueueName,
		handlers:  handlers,
		logger:    logger,
	}
}

// Run connects to the broker and consumes tasks until ctx is cancelled.
// It reconnects with exponential backoff when the connection drops.
func (w *Worker) Run(ctx context.Context) error {
	backoff := time.Second
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		conn, err := amqp.Dial(w.url)
		if err != nil {
			w.logger.Warn("task worker failed to dial broker", "error", err, "retry_in", backoff.String())
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		if err := w.consumeLoop(ctx, conn); err != nil {
			_ = conn.Close()
			if ctx.Err() != nil {
				return ctx.Err()
			}
			w.logger.Warn("task worker consume loop ended", "error", err)
			time.Sleep(2 * time.Second)
			continue
		}
	}
}

func (w *Worker) consumeLoop(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(10, 0, false); err != nil {
		w.logger.Warn("task worker failed to set QoS", "error", err)
	}

	if _, err := ch.QueueDeclare(w.queueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	msgs, err := ch.Consume(w.queueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to consume queue: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			if err := w.handle(ctx, d.Body); err != nil {
				w.logger.Error("task failed", "error", err)
				// Reject without requeue to avoid tight redelivery loops.
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (w *Worker) handle(ctx context.Context, body []byte) error {
	var task domain.Task
	if err := json.Unmarshal(body, &task); err != nil {
		return fmt.Errorf("failed to unmarshal task: %w", err)
	}
	handler, ok := w.handlers[task.Handler]
	if !ok {
		return fmt.Errorf("no handler registered for %q", task.Handler)
	}
	w.logger.Info("task received", "task_id", task.ID, "handler", task.Handler)
	if err := handler(ctx, task.Params); err != nil {
		return fmt.Errorf("handler %s: %w", task.Handler, err)
	}
	return nil
}
