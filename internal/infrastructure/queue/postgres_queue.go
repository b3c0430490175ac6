package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"propdesk/inbox-api/internal/infrastructure/database/entities"
)

// PostgresQueue implements TaskQueue using the ticket_events table.
type PostgresQueue struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewPostgresQueue creates a new PostgreSQL-backed event queue.
func NewPostgresQueue(db *gorm.DB, log zerolog.Logger) *PostgresQueue {
	return &PostgresQueue{
		db:  db,
		log: log.With().Str("component", "postgres-queue").Logger(),
	}
}

// Enqueue inserts a queued ticket event row.
func (q *PostgresQueue) Enqueue(ctx context.Context, task *Task) error {
	if task.EventID == "" {
		task.EventID = uuid.New().String()
	}
	if task.QueuedAt.IsZero() {
		task.QueuedAt = time.Now()
	}

	entity := &entities.TicketEvent{
		PublicID:       task.EventID,
		TicketPublicID: task.TicketID,
		EventType:      task.EventType,
		Payload:        datatypes.JSON(task.Payload),
		Status:         entities.TicketEventQueued,
		QueuedAt:       task.QueuedAt,
	}

	if err := q.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("enqueue ticket event: %w", err)
	}
	return nil
}

// Dequeue claims the oldest queued event. The FOR UPDATE SKIP LOCKED row
// lock only lives until the transaction ends, so the status flip to
// in_progress happens inside the same transaction; once the lock drops the
// row is already invisible to other workers.
func (q *PostgresQueue) Dequeue(ctx context.Context) (*Task, error) {
	var task *Task

	err := q.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entity entities.TicketEvent
		if err := tx.
			Raw("SELECT * FROM ticket_events WHERE status = ? ORDER BY queued_at ASC LIMIT 1 FOR UPDATE SKIP LOCKED", entities.TicketEventQueued).
			Scan(&entity).Error; err != nil {
			return fmt.Errorf("dequeue ticket event: %w", err)
		}

		// Check if no rows were returned (entity.ID will be 0)
		if entity.ID == 0 {
			return nil
		}

		now := time.Now()
		if err := tx.
			Model(&entities.TicketEvent{}).
			Where("id = ?", entity.ID).
			Updates(map[string]interface{}{
				"status":     entities.TicketEventProcessing,
				"attempts":   gorm.Expr("attempts + 1"),
				"started_at": now,
				"updated_at": now,
			}).Error; err != nil {
			return fmt.Errorf("claim ticket event: %w", err)
		}

		task = &Task{
			EventID:   entity.PublicID,
			TicketID:  entity.TicketPublicID,
			EventType: entity.EventType,
			Payload:   []byte(entity.Payload),
			Attempts:  entity.Attempts + 1,
			QueuedAt:  entity.QueuedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return task, nil
}

// MarkCompleted updates the event status to completed.
func (q *PostgresQueue) MarkCompleted(ctx context.Context, eventID string) error {
	now := time.Now()
	result := q.db.WithContext(ctx).
		Model(&entities.TicketEvent{}).
		Where("public_id = ?", eventID).
		Updates(map[string]interface{}{
			"status":       entities.TicketEventCompleted,
			"completed_at": now,
			"updated_at":   now,
		})

	if result.Error != nil {
		return fmt.Errorf("mark completed: %w", result.Error)
	}

	return nil
}

// MarkFailed updates the event status to failed.
func (q *PostgresQueue) MarkFailed(ctx context.Context, eventID string, taskErr error) error {
	now := time.Now()
	errMsg := taskErr.Error()

	result := q.db.WithContext(ctx).
		Model(&entities.TicketEvent{}).
		Where("public_id = ?", eventID).
		Updates(map[string]interface{}{
			"status":     entities.TicketEventFailed,
			"last_error": errMsg,
			"failed_at":  now,
			"updated_at": now,
		})

	if result.Error != nil {
		return fmt.Errorf("mark failed: %w", result.Error)
	}

	return nil
}

// GetQueueDepth returns the number of queued events.
func (q *PostgresQueue) GetQueueDepth(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.WithContext(ctx).
		Model(&entities.TicketEvent{}).
		Where("status = ?", entities.TicketEventQueued).
		Count(&count).Error

	if err != nil {
		return 0, fmt.Errorf("get queue depth: %w", err)
	}

	return count, nil
}
