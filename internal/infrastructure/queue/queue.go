package queue

import (
	"context"
	"time"
)

// Task represents a queued ticket event awaiting webhook delivery.
type Task struct {
	EventID   string
	TicketID  string
	EventType string
	Payload   []byte
	Attempts  int
	QueuedAt  time.Time
}

// TaskQueue defines the interface for ticket event queue operations.
type TaskQueue interface {
	// Enqueue adds an event to the queue
	Enqueue(ctx context.Context, task *Task) error

	// Dequeue claims the next available event, moving it to in_progress in
	// the same transaction that locks the row. Returns nil when the queue
	// is empty.
	Dequeue(ctx context.Context) (*Task, error)

	// MarkCompleted updates event status to completed
	MarkCompleted(ctx context.Context, eventID string) error

	// MarkFailed updates event status to failed
	MarkFailed(ctx context.Context, eventID string, err error) error

	// GetQueueDepth returns the number of queued events
	GetQueueDepth(ctx context.Context) (int64, error)
}
