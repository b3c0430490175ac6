package stats

import (
	"context"

	"gorm.io/gorm"

	"propdesk/inbox-api/internal/domain/message"
	"propdesk/inbox-api/internal/domain/ticket"
	"propdesk/inbox-api/internal/infrastructure/database/entities"
	"propdesk/inbox-api/internal/utils/platformerrors"
)

// PostgresRepository runs the aggregate count queries behind the overview.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// CountMessages counts messages on a channel, optionally only unseen ones.
func (r *PostgresRepository) CountMessages(ctx context.Context, channel message.Channel, unseenOnly bool) (int64, error) {
	query := r.db.WithContext(ctx).
		Model(&entities.Message{}).
		Where("channel = ?", channel)
	if unseenOnly {
		query = query.Where("seen = ?", false)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to count messages",
			err,
			"stats-messages-db-001",
		)
	}
	return count, nil
}

// CountTicketsByStatus groups ticket counts per status.
func (r *PostgresRepository) CountTicketsByStatus(ctx context.Context) (map[ticket.Status]int64, error) {
	var rows []struct {
		Status ticket.Status
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&entities.Ticket{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to count tickets by status",
			err,
			"stats-ticket-status-db-001",
		)
	}

	counts := make(map[ticket.Status]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// CountTicketsByPriority groups ticket counts per priority.
func (r *PostgresRepository) CountTicketsByPriority(ctx context.Context) (map[ticket.Priority]int64, error) {
	var rows []struct {
		Priority ticket.Priority
		Count    int64
	}
	err := r.db.WithContext(ctx).
		Model(&entities.Ticket{}).
		Select("priority, COUNT(*) AS count").
		Group("priority").
		Scan(&rows).Error
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to count tickets by priority",
			err,
			"stats-ticket-priority-db-001",
		)
	}

	counts := make(map[ticket.Priority]int64, len(rows))
	for _, row := range rows {
		counts[row.Priority] = row.Count
	}
	return counts, nil
}
