package property

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "propdesk/inbox-api/internal/domain/property"
	"propdesk/inbox-api/internal/infrastructure/database/entities"
	"propdesk/inbox-api/internal/utils/platformerrors"
)

// PostgresRepository provides persistence for property records.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new property record.
func (r *PostgresRepository) Create(ctx context.Context, p *domain.Property) error {
	entity := entities.NewSchemaProperty(p)
	if entity.PublicID == "" {
		entity.PublicID = uuid.New().String()
	}

	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create property",
			err,
			"property-create-db-001",
		)
	}

	p.ID = entity.PublicID
	p.CreatedAt = entity.CreatedAt
	p.UpdatedAt = entity.UpdatedAt
	return nil
}

// FindByID retrieves a property by its public ID.
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	var entity entities.Property
	err := r.db.WithContext(ctx).Where("public_id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				"property not found",
				err,
				"property-find-404-001",
			)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to find property",
			err,
			"property-find-db-001",
		)
	}
	return entity.EtoD(), nil
}

// List retrieves all properties ordered by address.
func (r *PostgresRepository) List(ctx context.Context) ([]domain.Property, error) {
	var rows []entities.Property
	if err := r.db.WithContext(ctx).Order("address ASC").Find(&rows).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list properties",
			err,
			"property-list-db-001",
		)
	}

	properties := make([]domain.Property, len(rows))
	for i := range rows {
		properties[i] = *rows[i].EtoD()
	}
	return properties, nil
}
