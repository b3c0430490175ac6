package template

import "context"

// Repository exposes CRUD operations for reply templates.
type Repository interface {
	Create(ctx context.Context, t *Template) error
	FindByID(ctx context.Context, id string) (*Template, error)
	List(ctx context.Context) ([]Template, error)
	Delete(ctx context.Context, id string) error
}
