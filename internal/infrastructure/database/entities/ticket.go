package entities

import (
	"time"

	"propdesk/inbox-api/internal/domain/ticket"
)

// Ticket represents the database schema for maintenance tickets
type Ticket struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	PublicID        string          `gorm:"type:varchar(50);uniqueIndex;not null"`
	TenantPublicID  string          `gorm:"type:varchar(50);index:idx_ticket_tenant;not null"`
	Title           string          `gorm:"type:varchar(256);not null"`
	Description     *string         `gorm:"type:text"`
	Category        string          `gorm:"type:varchar(100);not null"`
	Priority        ticket.Priority `gorm:"type:varchar(20);not null;default:'medium'"`
	Status          ticket.Status   `gorm:"type:varchar(20);index:idx_ticket_status;not null;default:'open'"`
	PropertyAddress *string         `gorm:"type:varchar(256)"`
}

// TableName specifies the table name for Ticket.
func (Ticket) TableName() string {
	return "tickets"
}

// EtoD converts database entity to domain model
func (t *Ticket) EtoD() *ticket.Ticket {
	return &ticket.Ticket{
		ID:              t.PublicID,
		TenantID:        t.TenantPublicID,
		Title:           t.Title,
		Description:     t.Description,
		Category:        t.Category,
		Priority:        t.Priority,
		Status:          t.Status,
		PropertyAddress: t.PropertyAddress,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

// NewSchemaTicket creates a database entity from domain model
func NewSchemaTicket(t *ticket.Ticket) *Ticket {
	return &Ticket{
		PublicID:        t.ID,
		TenantPublicID:  t.TenantID,
		Title:           t.Title,
		Description:     t.Description,
		Category:        t.Category,
		Priority:        t.Priority,
		Status:          t.Status,
		PropertyAddress: t.PropertyAddress,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}
