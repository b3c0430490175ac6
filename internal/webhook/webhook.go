package webhook

import (
	"context"
	"time"
)

// EventStatusChanged is the event name sent for ticket status transitions.
const EventStatusChanged = "ticket.status_changed"

// Service delivers ticket lifecycle notifications to the configured endpoint.
type Service interface {
	// NotifyStatusChanged sends a webhook notification for a status transition.
	NotifyStatusChanged(ctx context.Context, payload *StatusChangedPayload) error
}

// StatusChangedPayload is the structure sent to the webhook URL when a
// ticket moves between statuses.
type StatusChangedPayload struct {
	EventID   string    `json:"event_id"`
	Event     string    `json:"event"`
	TicketID  string    `json:"ticket_id"`
	TenantID  string    `json:"tenant_id"`
	Title     string    `json:"title"`
	Priority  string    `json:"priority"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	ChangedAt time.Time `json:"changed_at"`
}
