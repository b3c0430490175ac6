package responses

import (
	"propdesk/inbox-api/internal/domain/conversation"
	"propdesk/inbox-api/internal/domain/message"
	"propdesk/inbox-api/internal/domain/ticket"
)

// ListResponse is the generic collection envelope.
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

// NewListResponse wraps a slice in the collection envelope.
func NewListResponse[T any](data []T) ListResponse[T] {
	if data == nil {
		data = []T{}
	}
	return ListResponse[T]{Data: data, Total: len(data)}
}

// MessagePayload is the message DTO returned to clients.
type MessagePayload = message.Message

// ConversationPayload is the conversation summary DTO.
type ConversationPayload = conversation.Conversation

// ThreadResponse returns one counterparty's messages oldest first.
type ThreadResponse struct {
	Counterparty string            `json:"counterparty"`
	Messages     []message.Message `json:"messages"`
	Total        int               `json:"total"`
}

// MarkReadResponse reports how many messages a fanout actually updated.
type MarkReadResponse struct {
	Counterparty string   `json:"counterparty"`
	Marked       int      `json:"marked"`
	FailedIDs    []string `json:"failed_ids,omitempty"`
}

// TicketPayload is the ticket DTO including its quick actions and the
// deprecated progress step kept for older dashboard clients.
type TicketPayload struct {
	ticket.Ticket
	QuickActions []ticket.QuickAction `json:"quick_actions"`
	DisplayStep  ticket.ProgressStep  `json:"display_step"`
}

// MapTicketToResponse maps the domain ticket to its DTO.
func MapTicketToResponse(t *ticket.Ticket) TicketPayload {
	return TicketPayload{
		Ticket:       *t,
		QuickActions: ticket.QuickActionsFor(t.Status),
		DisplayStep:  t.Status.DisplayStep(),
	}
}

// MapTicketsToResponse maps a ticket slice to DTOs.
func MapTicketsToResponse(tickets []ticket.Ticket) []TicketPayload {
	payloads := make([]TicketPayload, len(tickets))
	for i := range tickets {
		payloads[i] = MapTicketToResponse(&tickets[i])
	}
	return payloads
}

// TicketStatusResponse reports the outcome of a status update.
type TicketStatusResponse struct {
	Ticket  TicketPayload `json:"ticket"`
	Changed bool          `json:"changed"`
}
