package stats

import (
	"context"

	"github.com/rs/zerolog"

	"propdesk/inbox-api/internal/domain/message"
	"propdesk/inbox-api/internal/domain/ticket"
)

// Service computes the dashboard overview.
type Service interface {
	Overview(ctx context.Context) (*Overview, error)
}

type service struct {
	repo Repository
	log  zerolog.Logger
}

// NewService wires the stats service with its repository.
func NewService(repo Repository, log zerolog.Logger) Service {
	return &service{
		repo: repo,
		log:  log.With().Str("component", "stats-service").Logger(),
	}
}

func (s *service) Overview(ctx context.Context) (*Overview, error) {
	overview := &Overview{
		Messages:          make(map[string]ChannelStats, 2),
		TicketsByStatus:   make(map[string]int64, len(ticket.Statuses)),
		TicketsByPriority: make(map[string]int64, 3),
	}

	for _, channel := range []message.Channel{message.ChannelWhatsApp, message.ChannelEmail} {
		total, err := s.repo.CountMessages(ctx, channel, false)
		if err != nil {
			return nil, err
		}
		unread, err := s.repo.CountMessages(ctx, channel, true)
		if err != nil {
			return nil, err
		}
		overview.Messages[channel.String()] = ChannelStats{Total: total, Unread: unread}
	}

	byStatus, err := s.repo.CountTicketsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	for _, st := range ticket.Statuses {
		overview.TicketsByStatus[st.String()] = byStatus[st]
		if !st.IsTerminal() {
			overview.OpenTickets += byStatus[st]
		}
	}

	byPriority, err := s.repo.CountTicketsByPriority(ctx)
	if err != nil {
		return nil, err
	}
	for priority, count := range byPriority {
		overview.TicketsByPriority[priority.String()] = count
	}

	return overview, nil
}
