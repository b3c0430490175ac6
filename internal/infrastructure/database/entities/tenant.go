package entities

import (
	"time"

	"propdesk/inbox-api/internal/domain/tenant"
)

// Tenant represents the database schema for tenants
type Tenant struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	PublicID        string     `gorm:"type:varchar(50);uniqueIndex;not null"`
	Name            string     `gorm:"type:varchar(256);not null"`
	Email           *string    `gorm:"type:varchar(256);index:idx_tenant_email"`
	Phone           *string    `gorm:"type:varchar(64);index:idx_tenant_phone"`
	PropertyAddress *string    `gorm:"type:varchar(256)"`
	Unit            *string    `gorm:"type:varchar(64)"`
	MoveInDate      *time.Time `gorm:"type:timestamp"`
}

// TableName specifies the table name for Tenant.
func (Tenant) TableName() string {
	return "tenants"
}

// EtoD converts database entity to domain model
func (t *Tenant) EtoD() *tenant.Tenant {
	return &tenant.Tenant{
		ID:              t.PublicID,
		Name:            t.Name,
		Email:           t.Email,
		Phone:           t.Phone,
		PropertyAddress: t.PropertyAddress,
		Unit:            t.Unit,
		MoveInDate:      t.MoveInDate,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

// NewSchemaTenant creates a database entity from domain model
func NewSchemaTenant(t *tenant.Tenant) *Tenant {
	return &Tenant{
		PublicID:        t.ID,
		Name:            t.Name,
		Email:           t.Email,
		Phone:           t.Phone,
		PropertyAddress: t.PropertyAddress,
		Unit:            t.Unit,
		MoveInDate:      t.MoveInDate,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}
