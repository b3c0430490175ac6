package entities

import (
	"time"

	"propdesk/inbox-api/internal/domain/message"
	"propdesk/inbox-api/internal/domain/template"
)

// Template represents the database schema for reply templates
type Template struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	PublicID string          `gorm:"type:varchar(50);uniqueIndex;not null"`
	Name     string          `gorm:"type:varchar(128);uniqueIndex:idx_template_name_channel;not null"`
	Channel  message.Channel `gorm:"type:varchar(20);uniqueIndex:idx_template_name_channel;not null"`
	Subject  *string         `gorm:"type:varchar(512)"`
	Body     string          `gorm:"type:text;not null"`
}

// TableName specifies the table name for Template.
func (Template) TableName() string {
	return "templates"
}

// EtoD converts database entity to domain model
func (t *Template) EtoD() *template.Template {
	return &template.Template{
		ID:        t.PublicID,
		Name:      t.Name,
		Channel:   t.Channel,
		Subject:   t.Subject,
		Body:      t.Body,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// NewSchemaTemplate creates a database entity from domain model
func NewSchemaTemplate(t *template.Template) *Template {
	return &Template{
		PublicID:  t.ID,
		Name:      t.Name,
		Channel:   t.Channel,
		Subject:   t.Subject,
		Body:      t.Body,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
