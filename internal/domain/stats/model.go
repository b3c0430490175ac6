// Package stats derives the dashboard overview numbers. Like conversations,
// the overview is a projection computed per request, never stored.
package stats

// ChannelStats summarises one message channel.
type ChannelStats struct {
	Total  int64 `json:"total"`
	Unread int64 `json:"unread"`
}

// Overview is the dashboard statistics payload.
type Overview struct {
	Messages          map[string]ChannelStats `json:"messages"`
	TicketsByStatus   map[string]int64        `json:"tickets_by_status"`
	TicketsByPriority map[string]int64        `json:"tickets_by_priority"`
	OpenTickets       int64                   `json:"open_tickets"`
}
