package ticket

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"propdesk/inbox-api/internal/utils/platformerrors"
)

// CreateParams carries the tenant-facing ticket creation input.
type CreateParams struct {
	TenantID        string
	Title           string
	Description     *string
	Category        string
	Priority        Priority
	PropertyAddress *string
}

// Service describes the business logic surface for ticket operations.
type Service interface {
	Create(ctx context.Context, params CreateParams) (*Ticket, error)
	GetByID(ctx context.Context, id string) (*Ticket, error)
	List(ctx context.Context, filter *Filter) ([]Ticket, error)

	// UpdateStatus sets the ticket status directly. Any of the five statuses
	// is accepted regardless of the current one; only unknown values are
	// rejected. Setting the current status again is a no-op: no write, no
	// event. The second return reports whether anything changed.
	UpdateStatus(ctx context.Context, id string, newStatus Status) (*Ticket, bool, error)

	// Board groups all tickets into kanban columns in canonical order.
	Board(ctx context.Context) ([]BoardColumn, error)

	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	events EventPublisher
	log    zerolog.Logger
}

// NewService wires the ticket service with its repository and event publisher.
func NewService(repo Repository, events EventPublisher, log zerolog.Logger) Service {
	return &service{
		repo:   repo,
		events: events,
		log:    log.With().Str("component", "ticket-service").Logger(),
	}
}

func (s *service) Create(ctx context.Context, params CreateParams) (*Ticket, error) {
	if params.Title == "" {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"ticket title is required",
			nil,
			"ticket-create-title-001",
		)
	}
	if params.TenantID == "" {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"ticket tenant_id is required",
			nil,
			"ticket-create-tenant-001",
		)
	}
	if params.Priority != "" && !params.Priority.Valid() {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			fmt.Sprintf("unknown priority %q", params.Priority),
			nil,
			"ticket-create-priority-001",
		)
	}

	t := NewTicket("", params.TenantID, params.Title, params.Category, params.Priority, params.Description, params.PropertyAddress)
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("ticket_id", t.ID).
		Str("tenant_id", t.TenantID).
		Str("priority", t.Priority.String()).
		Msg("ticket created")
	return t, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Ticket, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter *Filter) ([]Ticket, error) {
	if filter == nil {
		filter = NewFilter()
	}
	return s.repo.List(ctx, filter)
}

func (s *service) UpdateStatus(ctx context.Context, id string, newStatus Status) (*Ticket, bool, error) {
	if !newStatus.Valid() {
		return nil, false, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			fmt.Sprintf("unknown status %q", newStatus),
			nil,
			"ticket-status-unknown-001",
		)
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, false, err
	}

	// Same-column kanban drop.
	if current.Status == newStatus {
		return current, false, nil
	}

	from := current.Status
	updated, err := s.repo.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		return nil, false, err
	}

	if !from.IsRecommended(newStatus) {
		s.log.Debug().
			Str("ticket_id", id).
			Str("from", from.String()).
			Str("to", newStatus.String()).
			Msg("status set outside the recommended transitions")
	}

	if s.events != nil {
		if err := s.events.PublishStatusChanged(ctx, updated, from); err != nil {
			// The status write already committed; delivery is retried by the
			// queue, so a publish error must not fail the update.
			s.log.Error().Err(err).Str("ticket_id", id).Msg("enqueue status-changed event")
		}
	}

	s.log.Info().
		Str("ticket_id", id).
		Str("from", from.String()).
		Str("to", newStatus.String()).
		Msg("ticket status updated")
	return updated, true, nil
}

func (s *service) Board(ctx context.Context) ([]BoardColumn, error) {
	tickets, err := s.repo.List(ctx, NewFilter().WithPagination(0, 0))
	if err != nil {
		return nil, err
	}

	byStatus := make(map[Status][]Ticket, len(Statuses))
	for _, t := range tickets {
		byStatus[t.Status] = append(byStatus[t.Status], t)
	}

	columns := make([]BoardColumn, 0, len(Statuses))
	for _, st := range Statuses {
		col := BoardColumn{
			Status:       st,
			QuickActions: QuickActionsFor(st),
			Tickets:      byStatus[st],
		}
		if col.Tickets == nil {
			col.Tickets = []Ticket{}
		}
		columns = append(columns, col)
	}
	return columns, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
