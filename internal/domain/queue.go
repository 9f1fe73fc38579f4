package domain

import "context"

// Task handler paths. The worker dispatches a consumed task to the handler
// registered under its path.
const (
	TaskSendConfirmationEmail = "/tasks/send_confirmation_email"
	TaskSetFeaturedSpeaker    = "/tasks/set_featured_speaker"
)

// Task parameter keys.
const (
	TaskParamEmail          = "email"
	TaskParamConferenceName = "conference_name"
	TaskParamSpeaker        = "speaker"
	TaskParamCount          = "count"
)

// Task is a named background job with a parameter mapping. Delivery is
// asynchronous and at-least-once; handlers must be idempotent. ID identifies
// the task across redeliveries.
type Task struct {
	ID      string            `json:"id"`
	Handler string            `json:"handler"`
	Params  map[string]string `json:"params"`
}

// TaskQueue dispatches tasks for asynchronous execution. The request path
// never awaits the result.
type TaskQueue interface {
	Enqueue(ctx context.Context, task Task) error
}

// TaskHandlerFunc processes one delivered task. Returning an error rejects
// the delivery; retry is the queue's concern.
type TaskHandlerFunc func(ctx context.Context, params map[string]string) error
