package ticket

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "propdesk/inbox-api/internal/domain/ticket"
	"propdesk/inbox-api/internal/infrastructure/database/entities"
	"propdesk/inbox-api/internal/utils/platformerrors"
)

// PostgresRepository provides persistence for maintenance tickets.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new ticket record.
func (r *PostgresRepository) Create(ctx context.Context, t *domain.Ticket) error {
	entity := entities.NewSchemaTicket(t)
	if entity.PublicID == "" {
		entity.PublicID = uuid.New().String()
	}

	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create ticket",
			err,
			"ticket-create-db-001",
		)
	}

	t.ID = entity.PublicID
	t.CreatedAt = entity.CreatedAt
	t.UpdatedAt = entity.UpdatedAt
	return nil
}

// FindByID retrieves a ticket by its public ID.
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*domain.Ticket, error) {
	var entity entities.Ticket
	err := r.db.WithContext(ctx).Where("public_id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				"ticket not found",
				err,
				"ticket-find-404-001",
			)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to find ticket",
			err,
			"ticket-find-db-001",
		)
	}
	return entity.EtoD(), nil
}

// List retrieves tickets matching the filter, newest first.
func (r *PostgresRepository) List(ctx context.Context, filter *domain.Filter) ([]domain.Ticket, error) {
	query := r.db.WithContext(ctx).Model(&entities.Ticket{})
	if filter != nil {
		if filter.Status != nil {
			query = query.Where("status = ?", *filter.Status)
		}
		if filter.Priority != nil {
			query = query.Where("priority = ?", *filter.Priority)
		}
		if filter.TenantID != nil {
			query = query.Where("tenant_public_id = ?", *filter.TenantID)
		}
		// Limit zero means the caller wants the whole set, e.g. for the board.
		if filter.Limit > 0 {
			query = query.Limit(filter.Limit).Offset(filter.Offset)
		}
	}

	var rows []entities.Ticket
	if err := query.Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list tickets",
			err,
			"ticket-list-db-001",
		)
	}

	tickets := make([]domain.Ticket, len(rows))
	for i := range rows {
		tickets[i] = *rows[i].EtoD()
	}
	return tickets, nil
}

// UpdateStatus writes the new status and refreshes updated_at in a single
// row update, then returns the refreshed ticket.
func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, newStatus domain.Status) (*domain.Ticket, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.Ticket{}).
		Where("public_id = ?", id).
		Updates(map[string]interface{}{
			"status":     newStatus,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to update ticket status",
			result.Error,
			"ticket-status-db-001",
		)
	}
	if result.RowsAffected == 0 {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound,
			"ticket not found",
			nil,
			"ticket-status-404-001",
		)
	}

	return r.FindByID(ctx, id)
}

// Delete removes a ticket record.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("public_id = ?", id).Delete(&entities.Ticket{})
	if result.Error != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to delete ticket",
			result.Error,
			"ticket-delete-db-001",
		)
	}
	if result.RowsAffected == 0 {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound,
			"ticket not found",
			nil,
			"ticket-delete-404-001",
		)
	}
	return nil
}
