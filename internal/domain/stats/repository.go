package stats

import (
	"context"

	"propdesk/inbox-api/internal/domain/message"
	"propdesk/inbox-api/internal/domain/ticket"
)

// Repository runs the aggregate count queries behind the overview.
type Repository interface {
	CountMessages(ctx context.Context, channel message.Channel, unseenOnly bool) (int64, error)
	CountTicketsByStatus(ctx context.Context) (map[ticket.Status]int64, error)
	CountTicketsByPriority(ctx context.Context) (map[ticket.Priority]int64, error)
}
