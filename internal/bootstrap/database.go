package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	infralogger "github.com/growlocal360/maxx-energy/infrastructure/logger"
	"github.com/growlocal360/maxx-energy/internal/config"
	"github.com/growlocal360/maxx-energy/internal/database"
)

// SetupDatabase creates a database connection.
func SetupDatabase(ctx context.Context, cfg *config.Config, log infralogger.Logger) (*sqlx.DB, error) {
	db, err := database.New(ctx, cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("database connection: %w", err)
	}
	return db, nil
}

// RunMigrations opens a dedicated connection, applies every pending
// migration and closes it again.
func RunMigrations(ctx context.Context, cfg *config.Config, log infralogger.Logger) error {
	return WithMigrator(ctx, cfg, log, func(mg *database.Migrator) error {
		return mg.Up()
	})
}

// WithMigrator runs fn with a migrator on its own connection.
func WithMigrator(ctx context.Context, cfg *config.Config, log infralogger.Logger, fn func(*database.Migrator) error) (err error) {
	db, err := SetupDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}

	mg, err := database.NewMigrator(db.DB, log)
	if err != nil {
		_ = db.Close()
		return err
	}
	defer func() {
		if closeErr := mg.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	return fn(mg)
}
