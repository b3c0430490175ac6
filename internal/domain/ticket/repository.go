package ticket

import "context"

// Repository defines the interface for ticket persistence.
type Repository interface {
	Create(ctx context.Context, t *Ticket) error
	FindByID(ctx context.Context, id string) (*Ticket, error)
	List(ctx context.Context, filter *Filter) ([]Ticket, error)

	// UpdateStatus persists the new status and refreshes updated_at in one
	// single-row write.
	UpdateStatus(ctx context.Context, id string, newStatus Status) (*Ticket, error)

	Delete(ctx context.Context, id string) error
}

// EventPublisher emits ticket lifecycle events for asynchronous delivery.
type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, t *Ticket, from Status) error
}
