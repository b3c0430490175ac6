//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"propdesk/inbox-api/internal/config"
	"propdesk/inbox-api/internal/domain/conversation"
	"propdesk/inbox-api/internal/domain/message"
	"propdesk/inbox-api/internal/domain/property"
	"propdesk/inbox-api/internal/domain/raci"
	"propdesk/inbox-api/internal/domain/stats"
	"propdesk/inbox-api/internal/domain/template"
	"propdesk/inbox-api/internal/domain/tenant"
	"propdesk/inbox-api/internal/domain/ticket"
	"propdesk/inbox-api/internal/infrastructure/auth"
	"propdesk/inbox-api/internal/infrastructure/contacts"
	"propdesk/inbox-api/internal/infrastructure/database"
	"propdesk/inbox-api/internal/infrastructure/logger"
	"propdesk/inbox-api/internal/infrastructure/queue"
	messagerepo "propdesk/inbox-api/internal/infrastructure/repository/message"
	propertyrepo "propdesk/inbox-api/internal/infrastructure/repository/property"
	racirepo "propdesk/inbox-api/internal/infrastructure/repository/raci"
	statsrepo "propdesk/inbox-api/internal/infrastructure/repository/stats"
	templaterepo "propdesk/inbox-api/internal/infrastructure/repository/template"
	tenantrepo "propdesk/inbox-api/internal/infrastructure/repository/tenant"
	ticketrepo "propdesk/inbox-api/internal/infrastructure/repository/ticket"
	"propdesk/inbox-api/internal/interfaces/httpserver"
	"propdesk/inbox-api/internal/interfaces/httpserver/handlers"
	"propdesk/inbox-api/internal/webhook"
)

var inboxSet = wire.NewSet(
	messagerepo.NewPostgresRepository,
	wire.Bind(new(message.Repository), new(*messagerepo.PostgresRepository)),
	ticketrepo.NewPostgresRepository,
	wire.Bind(new(ticket.Repository), new(*ticketrepo.PostgresRepository)),
	tenantrepo.NewPostgresRepository,
	wire.Bind(new(tenant.Repository), new(*tenantrepo.PostgresRepository)),
	propertyrepo.NewPostgresRepository,
	wire.Bind(new(property.Repository), new(*propertyrepo.PostgresRepository)),
	templaterepo.NewPostgresRepository,
	wire.Bind(new(template.Repository), new(*templaterepo.PostgresRepository)),
	racirepo.NewPostgresRepository,
	wire.Bind(new(raci.Repository), new(*racirepo.PostgresRepository)),
	statsrepo.NewPostgresRepository,
	wire.Bind(new(stats.Repository), new(*statsrepo.PostgresRepository)),
	queue.NewPostgresQueue,
	wire.Bind(new(queue.TaskQueue), new(*queue.PostgresQueue)),
	newWebhookService,
	wire.Bind(new(webhook.Service), new(*webhook.HTTPService)),
	webhook.NewQueuePublisher,
	wire.Bind(new(ticket.EventPublisher), new(*webhook.QueuePublisher)),
	newProfileProvider,
	wire.Bind(new(conversation.ProfileProvider), new(*contacts.Client)),
	newAggregator,
	newOwnAddresses,
	message.NewService,
	newConversationService,
	ticket.NewService,
	tenant.NewService,
	property.NewService,
	template.NewService,
	raci.NewService,
	stats.NewService,
	handlers.NewProvider,
)

// BuildApplication demonstrates how to assemble the inbox service with Wire.
func BuildApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		newDatabaseConfig,
		newGormDB,
		newAuthValidator,
		inboxSet,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}

func newDatabaseConfig(cfg *config.Config, log zerolog.Logger) database.Config {
	return database.Config{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		Log:             log,
	}
}

func newGormDB(ctx context.Context, cfg database.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(ctx, db, log); err != nil {
		return nil, err
	}
	return db, nil
}

func newAuthValidator(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*auth.Validator, error) {
	return auth.NewValidator(ctx, cfg, log)
}

func newWebhookService(cfg *config.Config, log zerolog.Logger) *webhook.HTTPService {
	return webhook.NewHTTPService(cfg.TicketEventWebhookURL, log)
}

func newProfileProvider(cfg *config.Config, log zerolog.Logger) *contacts.Client {
	return contacts.NewClient(cfg.ContactsAPIURL, log)
}

func newAggregator(cfg *config.Config) conversation.Aggregator {
	return conversation.Aggregator{Normalize: cfg.NormalizeCounterparty}
}

func newOwnAddresses(cfg *config.Config) handlers.OwnAddresses {
	return handlers.OwnAddresses{Email: cfg.MyEmail, WhatsApp: cfg.MyWhatsApp}
}

func newConversationService(
	messages message.Service,
	aggregator conversation.Aggregator,
	profiles conversation.ProfileProvider,
	cfg *config.Config,
	log zerolog.Logger,
) conversation.Service {
	return conversation.NewService(messages, aggregator, profiles, cfg.MessageWindowLimit, log)
}
