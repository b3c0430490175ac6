package property

import (
	"context"

	"github.com/rs/zerolog"

	"propdesk/inbox-api/internal/utils/platformerrors"
)

// Service describes the business logic surface for property operations.
type Service interface {
	Create(ctx context.Context, p *Property) (*Property, error)
	GetByID(ctx context.Context, id string) (*Property, error)
	List(ctx context.Context) ([]Property, error)
}

type service struct {
	repo Repository
	log  zerolog.Logger
}

// NewService wires the property service with its repository.
func NewService(repo Repository, log zerolog.Logger) Service {
	return &service{
		repo: repo,
		log:  log.With().Str("component", "property-service").Logger(),
	}
}

func (s *service) Create(ctx context.Context, p *Property) (*Property, error) {
	if p.Address == "" {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"property address is required",
			nil,
			"property-create-address-001",
		)
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Property, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]Property, error) {
	return s.repo.List(ctx)
}
