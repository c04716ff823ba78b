// Package database opens the PostgreSQL pool and runs schema migrations.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver

	infraconfig "github.com/growlocal360/maxx-energy/infrastructure/config"
	infracontext "github.com/growlocal360/maxx-energy/infrastructure/context"
	infralogger "github.com/growlocal360/maxx-energy/infrastructure/logger"
	"github.com/growlocal360/maxx-energy/infrastructure/retry"
)

// DriverName is the database/sql driver used throughout the service.
const DriverName = "postgres"

// New opens a pooled connection and verifies it with a bounded ping.
func New(ctx context.Context, cfg infraconfig.DatabaseConfig, log infralogger.Logger) (*sqlx.DB, error) {
	db, err := sqlx.Open(DriverName, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingErr := retry.Do(ctx, retry.StartupPolicy(), func(ctx context.Context) error {
		pingCtx, cancel := infracontext.WithPingTimeout(ctx)
		defer cancel()
		return db.PingContext(pingCtx)
	}, func(attempt int, err error, wait time.Duration) {
		log.Warn("Database not ready, retrying",
			infralogger.Int("attempt", attempt),
			infralogger.Duration("wait", wait),
			infralogger.Error(err),
		)
	})
	if pingErr != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", pingErr)
	}

	log.Info("Database connection established",
		infralogger.String("host", cfg.Host),
		infralogger.Int("port", cfg.Port),
		infralogger.String("dbname", cfg.DBName),
	)

	return db, nil
}

// Ping is the health check probe for the pool.
func Ping(db *sqlx.DB) func(context.Context) error {
	return func(ctx context.Context) error {
		return db.PingContext(ctx)
	}
}
