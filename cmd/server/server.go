package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

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
	"propdesk/inbox-api/internal/infrastructure/observability"
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
	"propdesk/inbox-api/internal/worker"
)

// @title Inbox API
// @version 1.0
// @description Property management smart inbox: whatsapp and email conversations, maintenance tickets and the supporting directory data.
// @contact.name Propdesk Team
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
type Application struct {
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	db, err := database.Connect(database.Config{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		Log:             log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	if err := database.AutoMigrate(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	authValidator, err := auth.NewValidator(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize auth validator")
	}

	// Repositories
	messageRepository := messagerepo.NewPostgresRepository(db)
	ticketRepository := ticketrepo.NewPostgresRepository(db)
	tenantRepository := tenantrepo.NewPostgresRepository(db)
	propertyRepository := propertyrepo.NewPostgresRepository(db)
	templateRepository := templaterepo.NewPostgresRepository(db)
	raciRepository := racirepo.NewPostgresRepository(db)
	statsRepository := statsrepo.NewPostgresRepository(db)

	// Background delivery of ticket events
	taskQueue := queue.NewPostgresQueue(db, log)
	webhookService := webhook.NewHTTPService(cfg.TicketEventWebhookURL, log)
	eventPublisher := webhook.NewQueuePublisher(taskQueue, log)

	// Domain services
	messageService := message.NewService(messageRepository, log)
	profileProvider := contacts.NewClient(cfg.ContactsAPIURL, log)
	aggregator := conversation.Aggregator{Normalize: cfg.NormalizeCounterparty}
	conversationService := conversation.NewService(messageService, aggregator, profileProvider, cfg.MessageWindowLimit, log)
	ticketService := ticket.NewService(ticketRepository, eventPublisher, log)
	tenantService := tenant.NewService(tenantRepository, log)
	propertyService := property.NewService(propertyRepository, log)
	templateService := template.NewService(templateRepository, log)
	raciService := raci.NewService(raciRepository, log)
	statsService := stats.NewService(statsRepository, log)

	workerPool := worker.NewPool(
		taskQueue,
		webhookService,
		worker.Config{
			WorkerCount: cfg.BackgroundWorkerCount,
			TaskTimeout: cfg.BackgroundTaskTimeout,
		},
		log,
	)

	// Start worker pool
	workerPool.Start(ctx)
	defer func() {
		log.Info().Msg("stopping worker pool")
		workerPool.Stop()
	}()

	handlerProvider := handlers.NewProvider(
		messageService,
		conversationService,
		ticketService,
		tenantService,
		propertyService,
		templateService,
		raciService,
		statsService,
		handlers.OwnAddresses{Email: cfg.MyEmail, WhatsApp: cfg.MyWhatsApp},
		log,
	)

	httpServer := httpserver.New(cfg, log, handlerProvider, authValidator)
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
