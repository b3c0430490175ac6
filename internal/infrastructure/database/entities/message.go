package entities

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"propdesk/inbox-api/internal/domain/message"
)

// Message represents the database schema for inbox messages
type Message struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	PublicID    string            `gorm:"type:varchar(50);uniqueIndex;not null"`
	Channel     message.Channel   `gorm:"type:varchar(20);index:idx_message_channel_sent;not null"`
	Direction   message.Direction `gorm:"type:varchar(20);not null;default:'inbound'"`
	FromAddress string            `gorm:"type:varchar(256);index:idx_message_from;not null"`
	ToAddress   string            `gorm:"type:varchar(256);index:idx_message_to;not null"`
	Subject     *string           `gorm:"type:varchar(512)"`
	Body        *string           `gorm:"type:text"`
	Media       StringSlice       `gorm:"type:jsonb"`
	Seen        bool              `gorm:"index:idx_message_seen;not null;default:false"`
	SentAt      time.Time         `gorm:"index:idx_message_channel_sent;not null"`
}

// TableName specifies the table name for Message.
func (Message) TableName() string {
	return "messages"
}

// ===============================================
// JSON Types for GORM
// ===============================================

// StringSlice is a custom type for []string stored as JSON
type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

func (s *StringSlice) Scan(value any) error {
	if value == nil {
		*s = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, s)
}

// ===============================================
// Conversion Functions
// ===============================================

// EtoD converts database entity to domain model
func (m *Message) EtoD() *message.Message {
	return &message.Message{
		ID:        m.PublicID,
		Channel:   m.Channel,
		Direction: m.Direction,
		From:      m.FromAddress,
		To:        m.ToAddress,
		Subject:   m.Subject,
		Body:      m.Body,
		Media:     m.Media,
		Seen:      m.Seen,
		CreatedAt: m.SentAt,
	}
}

// NewSchemaMessage creates a database entity from domain model
func NewSchemaMessage(m *message.Message) *Message {
	return &Message{
		PublicID:    m.ID,
		Channel:     m.Channel,
		Direction:   m.Direction,
		FromAddress: m.From,
		ToAddress:   m.To,
		Subject:     m.Subject,
		Body:        m.Body,
		Media:       m.Media,
		Seen:        m.Seen,
		SentAt:      m.CreatedAt,
	}
}
