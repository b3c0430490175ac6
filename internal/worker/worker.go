package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"propdesk/inbox-api/internal/infrastructure/metrics"
	"propdesk/inbox-api/internal/infrastructure/observability"
	"propdesk/inbox-api/internal/infrastructure/queue"
	"propdesk/inbox-api/internal/webhook"
)

// Worker delivers queued ticket events to the webhook endpoint.
type Worker struct {
	id          int
	queue       queue.TaskQueue
	webhooks    webhook.Service
	taskTimeout time.Duration
	log         zerolog.Logger
	stopChan    chan struct{}
}

// NewWorker creates a new background worker.
func NewWorker(
	id int,
	queue queue.TaskQueue,
	webhooks webhook.Service,
	taskTimeout time.Duration,
	log zerolog.Logger,
) *Worker {
	return &Worker{
		id:          id,
		queue:       queue,
		webhooks:    webhooks,
		taskTimeout: taskTimeout,
		log:         log.With().Int("worker_id", id).Str("component", "worker").Logger(),
		stopChan:    make(chan struct{}),
	}
}

// Start begins processing events from the queue.
func (w *Worker) Start(ctx context.Context) {
	w.log.Info().Msg("worker started")

	ticker := time.NewTicker(2 * time.Second) // Poll every 2 seconds
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("worker stopped by context")
			return
		case <-w.stopChan:
			w.log.Info().Msg("worker stopped")
			return
		case <-ticker.C:
			w.processNextEvent(ctx)
		}
	}
}

// Stop gracefully stops the worker.
func (w *Worker) Stop() {
	close(w.stopChan)
}

func (w *Worker) processNextEvent(ctx context.Context) {
	task, err := w.queue.Dequeue(ctx)
	if err != nil {
		w.log.Error().Err(err).Msg("failed to dequeue event")
		return
	}

	if task == nil {
		// No events available
		return
	}

	w.log.Info().
		Str("event_id", task.EventID).
		Str("ticket_id", task.TicketID).
		Str("event_type", task.EventType).
		Int("attempt", task.Attempts).
		Msg("delivering ticket event")

	taskCtx, cancel := context.WithTimeout(ctx, w.taskTimeout)
	defer cancel()

	if err := w.deliver(taskCtx, task); err != nil {
		w.log.Error().Err(err).Str("event_id", task.EventID).Msg("event delivery failed")
		metrics.RecordWebhookDelivery(task.EventType, "failed")
		if markErr := w.queue.MarkFailed(ctx, task.EventID, err); markErr != nil {
			w.log.Error().Err(markErr).Str("event_id", task.EventID).Msg("failed to mark event as failed")
		}
		return
	}
	metrics.RecordWebhookDelivery(task.EventType, "delivered")

	if err := w.queue.MarkCompleted(ctx, task.EventID); err != nil {
		w.log.Error().Err(err).Str("event_id", task.EventID).Msg("failed to mark event as completed")
		return
	}

	w.log.Info().Str("event_id", task.EventID).Msg("event delivered successfully")
}

func (w *Worker) deliver(ctx context.Context, task *queue.Task) error {
	switch task.EventType {
	case webhook.EventStatusChanged:
		var payload webhook.StatusChangedPayload
		if err := json.Unmarshal(task.Payload, &payload); err != nil {
			return fmt.Errorf("decode status change payload: %w", err)
		}

		ctx, span := observability.StartTicketSpan(ctx, "deliver_status_changed", payload.TicketID, payload.To)
		defer span.End()
		observability.AddStatusTransition(span, payload.From, payload.To)

		if err := w.webhooks.NotifyStatusChanged(ctx, &payload); err != nil {
			observability.RecordError(span, err, "error")
			return err
		}
		return nil
	default:
		return fmt.Errorf("unknown event type: %s", task.EventType)
	}
}
