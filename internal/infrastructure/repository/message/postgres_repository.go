package message

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "propdesk/inbox-api/internal/domain/message"
	"propdesk/inbox-api/internal/infrastructure/database/entities"
	"propdesk/inbox-api/internal/utils/platformerrors"
)

// PostgresRepository provides persistence for inbox messages.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new message record.
func (r *PostgresRepository) Create(ctx context.Context, msg *domain.Message) error {
	entity := entities.NewSchemaMessage(msg)
	if entity.PublicID == "" {
		entity.PublicID = uuid.New().String()
	}

	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create message",
			err,
			"message-create-db-001",
		)
	}

	msg.ID = entity.PublicID
	return nil
}

// FindByID retrieves a message by its public ID.
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*domain.Message, error) {
	var entity entities.Message
	err := r.db.WithContext(ctx).Where("public_id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				"message not found",
				err,
				"message-find-404-001",
			)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to find message",
			err,
			"message-find-db-001",
		)
	}
	return entity.EtoD(), nil
}

// List retrieves messages matching the filter, newest first.
func (r *PostgresRepository) List(ctx context.Context, filter *domain.Filter) ([]domain.Message, error) {
	query := r.db.WithContext(ctx).Model(&entities.Message{})
	query = applyFilter(query, filter)

	query = query.Order("sent_at DESC, id DESC")
	// Limit zero means the caller wants the whole set, e.g. for mark-all-seen.
	if filter != nil && filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	var rows []entities.Message
	if err := query.Find(&rows).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list messages",
			err,
			"message-list-db-001",
		)
	}

	messages := make([]domain.Message, len(rows))
	for i := range rows {
		messages[i] = *rows[i].EtoD()
	}
	return messages, nil
}

// MarkSeen flips the seen flag to true. Already-seen rows are left untouched,
// so the write is idempotent.
func (r *PostgresRepository) MarkSeen(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Message{}).
		Where("public_id = ?", id).
		Update("seen", true)

	if result.Error != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to mark message seen",
			result.Error,
			"message-seen-db-001",
		)
	}
	if result.RowsAffected == 0 {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound,
			"message not found",
			nil,
			"message-seen-404-001",
		)
	}
	return nil
}

// Delete removes a message record.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("public_id = ?", id).Delete(&entities.Message{})
	if result.Error != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to delete message",
			result.Error,
			"message-delete-db-001",
		)
	}
	if result.RowsAffected == 0 {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound,
			"message not found",
			nil,
			"message-delete-404-001",
		)
	}
	return nil
}

// applyFilter translates the domain filter into WHERE clauses. The
// counterparty match is direction aware: outbound messages belong to the
// conversation of their recipient, everything else to their sender.
func applyFilter(query *gorm.DB, filter *domain.Filter) *gorm.DB {
	if filter == nil {
		return query
	}
	if filter.Channel != nil {
		query = query.Where("channel = ?", *filter.Channel)
	}
	if filter.Counterparty != nil {
		query = query.Where(
			"(direction = ? AND to_address = ?) OR (direction <> ? AND from_address = ?)",
			domain.DirectionOutbound, *filter.Counterparty,
			domain.DirectionOutbound, *filter.Counterparty,
		)
	}
	if filter.Unseen != nil && *filter.Unseen {
		query = query.Where("seen = ?", false)
	}
	return query
}
