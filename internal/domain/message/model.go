// Package message defines the inbox message domain: the immutable record of
// everything exchanged with tenants over whatsapp and email.
package message

import "time"

// Channel identifies the transport a message arrived on.
type Channel string

const (
	ChannelWhatsApp Channel = "whatsapp"
	ChannelEmail    Channel = "email"
)

// Valid reports whether the channel is one of the known transports.
func (c Channel) Valid() bool {
	return c == ChannelWhatsApp || c == ChannelEmail
}

// String returns the string representation of the channel.
func (c Channel) String() string {
	return string(c)
}

// Direction indicates whether the property manager received or sent a message.
type Direction string

const (
	DirectionInbound  Direction = "inbound"
	DirectionOutbound Direction = "outbound"
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	return string(d)
}

// Message is a single whatsapp or email message. Records are immutable once
// created except for the Seen flag, which flips false to true exactly once.
type Message struct {
	ID        string    `json:"id"`
	Channel   Channel   `json:"channel"`
	Direction Direction `json:"direction"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Subject   *string   `json:"subject,omitempty"`
	Body      *string   `json:"body,omitempty"`
	Media     []string  `json:"media,omitempty"`
	Seen      bool      `json:"seen"`
	CreatedAt time.Time `json:"created_at"`
}

// Counterparty returns the non-owner side of the exchange: the sender for
// inbound messages, the recipient for outbound ones.
func (m *Message) Counterparty() string {
	if m.Direction == DirectionOutbound {
		return m.To
	}
	return m.From
}

// HasMedia reports whether the message carries at least one non-empty media URL.
func (m *Message) HasMedia() bool {
	for _, url := range m.Media {
		if url != "" {
			return true
		}
	}
	return false
}

// NewInbound builds an inbound message as delivered by a channel webhook.
func NewInbound(publicID string, channel Channel, from, to string, subject, body *string, media []string, createdAt time.Time) *Message {
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	return &Message{
		ID:        publicID,
		Channel:   channel,
		Direction: DirectionInbound,
		From:      from,
		To:        to,
		Subject:   subject,
		Body:      body,
		Media:     media,
		Seen:      false,
		CreatedAt: createdAt,
	}
}
