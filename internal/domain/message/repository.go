package message

import "context"

// Repository defines the interface for message persistence.
type Repository interface {
	Create(ctx context.Context, msg *Message) error
	FindByID(ctx context.Context, id string) (*Message, error)
	List(ctx context.Context, filter *Filter) ([]Message, error)

	// MarkSeen flips a single message's seen flag to true. The update is
	// idempotent: marking an already-seen message succeeds without effect.
	MarkSeen(ctx context.Context, id string) error

	Delete(ctx context.Context, id string) error
}
