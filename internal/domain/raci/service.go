package raci

import (
	"context"

	"github.com/rs/zerolog"

	"propdesk/inbox-api/internal/utils/platformerrors"
)

// Service describes the business logic surface for the RACI matrix.
type Service interface {
	List(ctx context.Context) ([]Entry, error)
	Upsert(ctx context.Context, e *Entry) (*Entry, error)
}

type service struct {
	repo Repository
	log  zerolog.Logger
}

// NewService wires the RACI service with its repository.
func NewService(repo Repository, log zerolog.Logger) Service {
	return &service{
		repo: repo,
		log:  log.With().Str("component", "raci-service").Logger(),
	}
}

func (s *service) List(ctx context.Context) ([]Entry, error) {
	return s.repo.List(ctx)
}

func (s *service) Upsert(ctx context.Context, e *Entry) (*Entry, error) {
	if e.Task == "" || e.Party == "" {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"raci entry requires a task and a party",
			nil,
			"raci-upsert-fields-001",
		)
	}
	if !e.Role.Valid() {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"raci entry role must be responsible, accountable, consulted or informed",
			nil,
			"raci-upsert-role-001",
		)
	}
	if err := s.repo.Upsert(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}
