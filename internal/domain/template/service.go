package template

import (
	"context"

	"github.com/rs/zerolog"

	"propdesk/inbox-api/internal/utils/platformerrors"
)

// Service describes the business logic surface for template operations.
type Service interface {
	Create(ctx context.Context, t *Template) (*Template, error)
	GetByID(ctx context.Context, id string) (*Template, error)
	List(ctx context.Context) ([]Template, error)

	// Render substitutes placeholder values into the template body. Unknown
	// placeholders stay verbatim.
	Render(ctx context.Context, id string, values map[string]string) (string, error)

	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
	log  zerolog.Logger
}

// NewService wires the template service with its repository.
func NewService(repo Repository, log zerolog.Logger) Service {
	return &service{
		repo: repo,
		log:  log.With().Str("component", "template-service").Logger(),
	}
}

func (s *service) Create(ctx context.Context, t *Template) (*Template, error) {
	if t.Name == "" || t.Body == "" {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"template requires a name and a body",
			nil,
			"template-create-fields-001",
		)
	}
	if !t.Channel.Valid() {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"template channel must be whatsapp or email",
			nil,
			"template-create-channel-001",
		)
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Template, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]Template, error) {
	return s.repo.List(ctx)
}

func (s *service) Render(ctx context.Context, id string, values map[string]string) (string, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	return t.Render(values), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
