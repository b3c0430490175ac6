package message

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"propdesk/inbox-api/internal/utils/platformerrors"
)

// Service describes the business logic surface for message operations.
type Service interface {
	Ingest(ctx context.Context, msg *Message) (*Message, error)
	GetByID(ctx context.Context, id string) (*Message, error)
	List(ctx context.Context, filter *Filter) ([]Message, error)
	MarkSeen(ctx context.Context, id string) error

	// MarkAllSeen marks every unseen message of one counterparty seen. Each
	// row update is independent; successes stay applied when later updates
	// fail and the failures are reported once as a single aggregate error.
	MarkAllSeen(ctx context.Context, counterparty string) (int, error)

	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
	log  zerolog.Logger
}

// NewService wires the message service with its repository.
func NewService(repo Repository, log zerolog.Logger) Service {
	return &service{
		repo: repo,
		log:  log.With().Str("component", "message-service").Logger(),
	}
}

func (s *service) Ingest(ctx context.Context, msg *Message) (*Message, error) {
	if !msg.Channel.Valid() {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			fmt.Sprintf("unknown channel %q", msg.Channel),
			nil,
			"message-ingest-channel-001",
		)
	}
	if msg.From == "" || msg.To == "" {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"message requires both from and to addresses",
			nil,
			"message-ingest-address-001",
		)
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("message_id", msg.ID).
		Str("channel", msg.Channel.String()).
		Str("counterparty", msg.Counterparty()).
		Msg("message ingested")
	return msg, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Message, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter *Filter) ([]Message, error) {
	if filter == nil {
		filter = NewFilter()
	}
	return s.repo.List(ctx, filter)
}

func (s *service) MarkSeen(ctx context.Context, id string) error {
	return s.repo.MarkSeen(ctx, id)
}

func (s *service) MarkAllSeen(ctx context.Context, counterparty string) (int, error) {
	unseen, err := s.repo.List(ctx, NewFilter().
		WithCounterparty(counterparty).
		WithUnseen().
		WithPagination(0, 0))
	if err != nil {
		return 0, err
	}

	marked := 0
	var failed []string
	var lastErr error
	for _, msg := range unseen {
		if err := s.repo.MarkSeen(ctx, msg.ID); err != nil {
			failed = append(failed, msg.ID)
			lastErr = err
			continue
		}
		marked++
	}

	if len(failed) > 0 {
		s.log.Warn().
			Str("counterparty", counterparty).
			Int("marked", marked).
			Strs("failed_ids", failed).
			Msg("mark-all-seen completed partially")
		return marked, platformerrors.NewErrorWithContext(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypePartialFailure,
			fmt.Sprintf("marked %d of %d messages seen", marked, len(unseen)),
			lastErr,
			"message-markallseen-partial-001",
			map[string]any{"failed_ids": failed},
		)
	}

	return marked, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
