package template

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "propdesk/inbox-api/internal/domain/template"
	"propdesk/inbox-api/internal/infrastructure/database/entities"
	"propdesk/inbox-api/internal/utils/platformerrors"
)

// PostgresRepository provides persistence for reply templates.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new template record.
func (r *PostgresRepository) Create(ctx context.Context, t *domain.Template) error {
	entity := entities.NewSchemaTemplate(t)
	if entity.PublicID == "" {
		entity.PublicID = uuid.New().String()
	}

	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create template",
			err,
			"template-create-db-001",
		)
	}

	t.ID = entity.PublicID
	t.CreatedAt = entity.CreatedAt
	t.UpdatedAt = entity.UpdatedAt
	return nil
}

// FindByID retrieves a template by its public ID.
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*domain.Template, error) {
	var entity entities.Template
	err := r.db.WithContext(ctx).Where("public_id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				"template not found",
				err,
				"template-find-404-001",
			)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to find template",
			err,
			"template-find-db-001",
		)
	}
	return entity.EtoD(), nil
}

// List retrieves all templates ordered by name.
func (r *PostgresRepository) List(ctx context.Context) ([]domain.Template, error) {
	var rows []entities.Template
	if err := r.db.WithContext(ctx).Order("name ASC, channel ASC").Find(&rows).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list templates",
			err,
			"template-list-db-001",
		)
	}

	templates := make([]domain.Template, len(rows))
	for i := range rows {
		templates[i] = *rows[i].EtoD()
	}
	return templates, nil
}

// Delete removes a template record.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("public_id = ?", id).Delete(&entities.Template{})
	if result.Error != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to delete template",
			result.Error,
			"template-delete-db-001",
		)
	}
	if result.RowsAffected == 0 {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound,
			"template not found",
			nil,
			"template-delete-404-001",
		)
	}
	return nil
}
