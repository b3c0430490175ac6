// Package database owns the postgres connection for the inbox service.
package database

import (
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// Config controls the postgres connection pool.
type Config struct {
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	SlowThreshold   time.Duration
	Log             zerolog.Logger
}

// Connect opens the inbox database, creating it first when it does not exist
// yet. Statements are prepared, table names are singular, and gorm's own
// logging is routed through the service logger.
func Connect(cfg Config) (*gorm.DB, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("database DSN is empty")
	}

	if err := createDatabaseIfMissing(cfg.DSN, cfg.Log); err != nil {
		return nil, fmt.Errorf("ensure database: %w", err)
	}

	slow := cfg.SlowThreshold
	if slow <= 0 {
		slow = 200 * time.Millisecond
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		PrepareStmt: true,
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
		},
		Logger: newGormLogger(cfg.Log, slow),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("retrieve sql db: %w", err)
	}

	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	return db, nil
}

// newGormLogger adapts gorm's logger onto zerolog. Per-query traces are only
// emitted when the service runs at debug level; slow queries and errors pass
// through at warn either way.
func newGormLogger(log zerolog.Logger, slowThreshold time.Duration) gormlogger.Interface {
	gormLevel := gormlogger.Warn
	writerLevel := zerolog.WarnLevel
	if log.GetLevel() <= zerolog.DebugLevel {
		gormLevel = gormlogger.Info
		writerLevel = zerolog.DebugLevel
	}

	return gormlogger.New(
		&gormLogWriter{
			log:   log.With().Str("component", "gorm").Logger(),
			level: writerLevel,
		},
		gormlogger.Config{
			SlowThreshold:             slowThreshold,
			LogLevel:                  gormLevel,
			IgnoreRecordNotFoundError: true,
		},
	)
}

type gormLogWriter struct {
	log   zerolog.Logger
	level zerolog.Level
}

func (w *gormLogWriter) Printf(format string, args ...interface{}) {
	w.log.WithLevel(w.level).Msgf(format, args...)
}

// dbNameFromDSN extracts the target database name from a URL-style DSN.
// Key=value DSNs are not parsed; for those the database must already exist.
// The postgres maintenance database is never a creation target.
func dbNameFromDSN(dsn string) (string, bool) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", false
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return "", false
	}
	name := strings.TrimPrefix(u.Path, "/")
	if name == "" || name == "postgres" {
		return "", false
	}
	return name, true
}

// createDatabaseIfMissing connects to the maintenance database on the same
// host and issues CREATE DATABASE when the target does not exist yet, so a
// fresh environment boots without manual setup.
func createDatabaseIfMissing(dsn string, log zerolog.Logger) error {
	name, ok := dbNameFromDSN(dsn)
	if !ok {
		return nil
	}

	u, err := url.Parse(dsn)
	if err != nil {
		return nil
	}
	adminURL := *u
	adminURL.Path = "/postgres"

	admin, err := sql.Open("postgres", adminURL.String())
	if err != nil {
		return err
	}
	defer admin.Close()

	var exists bool
	if err := admin.QueryRow("SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", name).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return nil
	}

	log.Info().Str("database", name).Msg("creating database")
	_, err = admin.Exec("CREATE DATABASE " + quoteIdent(name))
	return err
}

func quoteIdent(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}
