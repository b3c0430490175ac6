package tenant

import (
	"context"

	"github.com/rs/zerolog"

	"propdesk/inbox-api/internal/utils/platformerrors"
)

// Service describes the business logic surface for tenant operations.
type Service interface {
	Create(ctx context.Context, t *Tenant) (*Tenant, error)
	GetByID(ctx context.Context, id string) (*Tenant, error)
	List(ctx context.Context) ([]Tenant, error)
}

type service struct {
	repo Repository
	log  zerolog.Logger
}

// NewService wires the tenant service with its repository.
func NewService(repo Repository, log zerolog.Logger) Service {
	return &service{
		repo: repo,
		log:  log.With().Str("component", "tenant-service").Logger(),
	}
}

func (s *service) Create(ctx context.Context, t *Tenant) (*Tenant, error) {
	if t.Name == "" {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"tenant name is required",
			nil,
			"tenant-create-name-001",
		)
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Tenant, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]Tenant, error) {
	return s.repo.List(ctx)
}
