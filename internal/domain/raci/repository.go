package raci

import "context"

// Repository exposes the RACI matrix entries.
type Repository interface {
	List(ctx context.Context) ([]Entry, error)
	Upsert(ctx context.Context, e *Entry) error
}
