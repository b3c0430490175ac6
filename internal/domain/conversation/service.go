package conversation

import (
	"context"

	"github.com/rs/zerolog"

	"propdesk/inbox-api/internal/domain/message"
	"propdesk/inbox-api/internal/infrastructure/observability"
)

// Service exposes the conversation projections consumed by the inbox views.
type Service interface {
	// List aggregates the recent message window into conversation summaries,
	// newest conversation first.
	List(ctx context.Context, channel *message.Channel, limit int) ([]Conversation, error)

	// Thread returns one counterparty's messages oldest first.
	Thread(ctx context.Context, counterparty string) ([]message.Message, error)

	// MarkRead marks every unseen message in a conversation seen and returns
	// the number of messages updated. Partial failures keep applied updates
	// and surface as a single aggregate error.
	MarkRead(ctx context.Context, counterparty string) (int, error)
}

type service struct {
	messages   message.Service
	aggregator Aggregator
	profiles   ProfileProvider
	window     int
	log        zerolog.Logger
}

// NewService wires the conversation service over the message service.
func NewService(messages message.Service, aggregator Aggregator, profiles ProfileProvider, windowLimit int, log zerolog.Logger) Service {
	if windowLimit <= 0 {
		windowLimit = 50
	}
	return &service{
		messages:   messages,
		aggregator: aggregator,
		profiles:   profiles,
		window:     windowLimit,
		log:        log.With().Str("component", "conversation-service").Logger(),
	}
}

func (s *service) List(ctx context.Context, channel *message.Channel, limit int) ([]Conversation, error) {
	if limit <= 0 || limit > s.window {
		limit = s.window
	}

	channelLabel := "all"
	filter := message.NewFilter().WithPagination(limit, 0)
	if channel != nil {
		filter = filter.WithChannel(*channel)
		channelLabel = channel.String()
	}

	ctx, span := observability.StartAggregationSpan(ctx, channelLabel, limit)
	defer span.End()

	msgs, err := s.messages.List(ctx, filter)
	if err != nil {
		observability.RecordError(span, err, "error")
		return nil, err
	}

	conversations := s.aggregator.Aggregate(msgs)
	if s.profiles != nil {
		for i := range conversations {
			if name, ok := s.profiles.DisplayName(ctx, conversations[i].LastMessage.Channel, conversations[i].Counterparty); ok {
				conversations[i].DisplayName = name
			}
		}
	}

	return conversations, nil
}

func (s *service) Thread(ctx context.Context, counterparty string) ([]message.Message, error) {
	msgs, err := s.messages.List(ctx, message.NewFilter().
		WithCounterparty(counterparty).
		WithPagination(0, 0))
	if err != nil {
		return nil, err
	}
	return s.aggregator.MessagesFor(counterparty, msgs), nil
}

func (s *service) MarkRead(ctx context.Context, counterparty string) (int, error) {
	return s.messages.MarkAllSeen(ctx, counterparty)
}
