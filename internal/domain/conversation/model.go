// Package conversation derives per-counterparty conversation summaries from
// the flat message log. Conversations are projections: they are recomputed
// from scratch on every request and never persisted.
package conversation

import (
	"context"

	"propdesk/inbox-api/internal/domain/message"
)

// Conversation summarises all messages exchanged with one counterparty.
type Conversation struct {
	// Counterparty doubles as the conversation identifier: a phone number
	// for whatsapp, an email address for email.
	Counterparty string          `json:"counterparty"`
	DisplayName  string          `json:"display_name"`
	LastMessage  message.Message `json:"last_message"`
	MessageCount int             `json:"message_count"`
	UnreadCount  int             `json:"unread_count"`
	HasMedia     bool            `json:"has_media"`
}

// ProfileProvider resolves a human-readable display name for a counterparty
// address. Implementations may consult an external contacts gateway; a nil
// provider means conversations show the raw address.
type ProfileProvider interface {
	DisplayName(ctx context.Context, channel message.Channel, counterparty string) (string, bool)
}
