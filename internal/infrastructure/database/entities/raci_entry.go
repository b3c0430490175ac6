package entities

import (
	"time"

	"propdesk/inbox-api/internal/domain/raci"
)

// RaciEntry represents the database schema for responsibility matrix entries
type RaciEntry struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	PublicID string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	Task     string    `gorm:"type:varchar(128);uniqueIndex:idx_raci_task_party;not null"`
	Party    string    `gorm:"type:varchar(128);uniqueIndex:idx_raci_task_party;not null"`
	Role     raci.Role `gorm:"type:varchar(20);not null"`
	Notes    *string   `gorm:"type:text"`
}

// TableName specifies the table name for RaciEntry.
func (RaciEntry) TableName() string {
	return "raci_entries"
}

// EtoD converts database entity to domain model
func (e *RaciEntry) EtoD() *raci.Entry {
	return &raci.Entry{
		ID:        e.PublicID,
		Task:      e.Task,
		Party:     e.Party,
		Role:      e.Role,
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// NewSchemaRaciEntry creates a database entity from domain model
func NewSchemaRaciEntry(e *raci.Entry) *RaciEntry {
	return &RaciEntry{
		PublicID:  e.ID,
		Task:      e.Task,
		Party:     e.Party,
		Role:      e.Role,
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
