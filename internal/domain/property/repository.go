package property

import "context"

// Repository exposes CRUD operations for property records.
type Repository interface {
	Create(ctx context.Context, p *Property) error
	FindByID(ctx context.Context, id string) (*Property, error)
	List(ctx context.Context) ([]Property, error)
}
