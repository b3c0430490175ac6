package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"propdesk/inbox-api/internal/domain/ticket"
	"propdesk/inbox-api/internal/infrastructure/metrics"
	"propdesk/inbox-api/internal/infrastructure/queue"
)

// QueuePublisher implements ticket.EventPublisher by enqueueing events for
// asynchronous delivery through the worker pool.
type QueuePublisher struct {
	queue queue.TaskQueue
	log   zerolog.Logger
}

// NewQueuePublisher creates a queue-backed event publisher.
func NewQueuePublisher(q queue.TaskQueue, log zerolog.Logger) *QueuePublisher {
	return &QueuePublisher{
		queue: q,
		log:   log.With().Str("component", "event-publisher").Logger(),
	}
}

// PublishStatusChanged enqueues a status change event for webhook delivery.
func (p *QueuePublisher) PublishStatusChanged(ctx context.Context, t *ticket.Ticket, from ticket.Status) error {
	payload := StatusChangedPayload{
		EventID:   uuid.New().String(),
		Event:     EventStatusChanged,
		TicketID:  t.ID,
		TenantID:  t.TenantID,
		Title:     t.Title,
		Priority:  t.Priority.String(),
		From:      from.String(),
		To:        t.Status.String(),
		ChangedAt: t.UpdatedAt,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal status change event: %w", err)
	}

	task := &queue.Task{
		EventID:   payload.EventID,
		TicketID:  t.ID,
		EventType: EventStatusChanged,
		Payload:   body,
		QueuedAt:  time.Now(),
	}

	if err := p.queue.Enqueue(ctx, task); err != nil {
		return fmt.Errorf("enqueue status change event: %w", err)
	}

	metrics.RecordStatusTransition(payload.From, payload.To)

	p.log.Debug().
		Str("ticket_id", t.ID).
		Str("from", payload.From).
		Str("to", payload.To).
		Msg("status change event queued")
	return nil
}
