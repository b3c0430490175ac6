package tenant

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "propdesk/inbox-api/internal/domain/tenant"
	"propdesk/inbox-api/internal/infrastructure/database/entities"
	"propdesk/inbox-api/internal/utils/platformerrors"
)

// PostgresRepository provides persistence for tenant records.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new tenant record.
func (r *PostgresRepository) Create(ctx context.Context, t *domain.Tenant) error {
	entity := entities.NewSchemaTenant(t)
	if entity.PublicID == "" {
		entity.PublicID = uuid.New().String()
	}

	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create tenant",
			err,
			"tenant-create-db-001",
		)
	}

	t.ID = entity.PublicID
	t.CreatedAt = entity.CreatedAt
	t.UpdatedAt = entity.UpdatedAt
	return nil
}

// FindByID retrieves a tenant by its public ID.
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*domain.Tenant, error) {
	var entity entities.Tenant
	err := r.db.WithContext(ctx).Where("public_id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				"tenant not found",
				err,
				"tenant-find-404-001",
			)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to find tenant",
			err,
			"tenant-find-db-001",
		)
	}
	return entity.EtoD(), nil
}

// List retrieves all tenants ordered by name.
func (r *PostgresRepository) List(ctx context.Context) ([]domain.Tenant, error) {
	var rows []entities.Tenant
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list tenants",
			err,
			"tenant-list-db-001",
		)
	}

	tenants := make([]domain.Tenant, len(rows))
	for i := range rows {
		tenants[i] = *rows[i].EtoD()
	}
	return tenants, nil
}
