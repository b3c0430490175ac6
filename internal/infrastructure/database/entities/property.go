package entities

import (
	"time"

	"propdesk/inbox-api/internal/domain/property"
)

// Property represents the database schema for managed properties
type Property struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	PublicID string  `gorm:"type:varchar(50);uniqueIndex;not null"`
	Address  string  `gorm:"type:varchar(256);index:idx_property_address;not null"`
	City     *string `gorm:"type:varchar(128)"`
	Units    int     `gorm:"not null;default:1"`
	Notes    *string `gorm:"type:text"`
}

// TableName specifies the table name for Property.
func (Property) TableName() string {
	return "properties"
}

// EtoD converts database entity to domain model
func (p *Property) EtoD() *property.Property {
	return &property.Property{
		ID:        p.PublicID,
		Address:   p.Address,
		City:      p.City,
		Units:     p.Units,
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// NewSchemaProperty creates a database entity from domain model
func NewSchemaProperty(p *property.Property) *Property {
	return &Property{
		PublicID:  p.ID,
		Address:   p.Address,
		City:      p.City,
		Units:     p.Units,
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
