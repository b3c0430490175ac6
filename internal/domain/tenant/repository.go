package tenant

import "context"

// Repository exposes CRUD operations for tenant records.
type Repository interface {
	Create(ctx context.Context, t *Tenant) error
	FindByID(ctx context.Context, id string) (*Tenant, error)
	List(ctx context.Context) ([]Tenant, error)
}
