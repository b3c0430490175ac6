package entities

import (
	"time"

	"gorm.io/datatypes"
)

// Ticket event delivery statuses as stored in the queue table.
const (
	TicketEventQueued     = "queued"
	TicketEventProcessing = "in_progress"
	TicketEventCompleted  = "completed"
	TicketEventFailed     = "failed"
)

// TicketEvent represents the database schema for queued ticket webhook events
type TicketEvent struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	PublicID       string         `gorm:"type:varchar(50);uniqueIndex;not null"`
	TicketPublicID string         `gorm:"type:varchar(50);index:idx_ticket_event_ticket;not null"`
	EventType      string         `gorm:"type:varchar(64);not null"`
	Payload        datatypes.JSON `gorm:"type:jsonb"`
	Status         string         `gorm:"type:varchar(20);index:idx_ticket_event_status;not null;default:'queued'"`
	Attempts       int            `gorm:"not null;default:0"`
	LastError      *string        `gorm:"type:text"`
	QueuedAt       time.Time      `gorm:"not null"`
	StartedAt      *time.Time     `gorm:"type:timestamp"`
	CompletedAt    *time.Time     `gorm:"type:timestamp"`
	FailedAt       *time.Time     `gorm:"type:timestamp"`
}

// TableName specifies the table name for TicketEvent.
func (TicketEvent) TableName() string {
	return "ticket_events"
}
