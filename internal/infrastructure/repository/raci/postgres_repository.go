package raci

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "propdesk/inbox-api/internal/domain/raci"
	"propdesk/inbox-api/internal/infrastructure/database/entities"
	"propdesk/inbox-api/internal/utils/platformerrors"
)

// PostgresRepository provides persistence for RACI matrix entries.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List retrieves all matrix entries ordered by task then party.
func (r *PostgresRepository) List(ctx context.Context) ([]domain.Entry, error) {
	var rows []entities.RaciEntry
	if err := r.db.WithContext(ctx).Order("task ASC, party ASC").Find(&rows).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list raci entries",
			err,
			"raci-list-db-001",
		)
	}

	entries := make([]domain.Entry, len(rows))
	for i := range rows {
		entries[i] = *rows[i].EtoD()
	}
	return entries, nil
}

// Upsert inserts the entry or, when the task and party pair already exists,
// updates its role and notes in place.
func (r *PostgresRepository) Upsert(ctx context.Context, e *domain.Entry) error {
	entity := entities.NewSchemaRaciEntry(e)
	if entity.PublicID == "" {
		entity.PublicID = uuid.New().String()
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "task"}, {Name: "party"}},
			DoUpdates: clause.AssignmentColumns([]string{"role", "notes", "updated_at"}),
		}).
		Create(entity).Error
	if err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to upsert raci entry",
			err,
			"raci-upsert-db-001",
		)
	}

	e.ID = entity.PublicID
	e.CreatedAt = entity.CreatedAt
	e.UpdatedAt = entity.UpdatedAt
	return nil
}
