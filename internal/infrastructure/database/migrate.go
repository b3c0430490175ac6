package database

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"propdesk/inbox-api/internal/infrastructure/database/entities"
)

// AutoMigrate applies database schema changes for the inbox domain.
func AutoMigrate(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&entities.Message{},
		&entities.Ticket{},
		&entities.TicketEvent{},
		&entities.Tenant{},
		&entities.Property{},
		&entities.Template{},
		&entities.RaciEntry{},
	); err != nil {
		return err
	}

	log.Info().Msg("database schema up to date")
	return nil
}
