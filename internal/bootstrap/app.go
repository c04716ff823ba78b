// Package bootstrap handles application initialization and lifecycle
// management for the maxx server.
package bootstrap

import (
	"context"
	"fmt"

	infralogger "github.com/growlocal360/maxx-energy/infrastructure/logger"
	"github.com/growlocal360/maxx-energy/infrastructure/profiling"
	"github.com/growlocal360/maxx-energy/internal/events"
)

// ServeOptions control Serve.
type ServeOptions struct {
	ConfigPath string
	Version    string
	// Migrate applies pending migrations before the server starts.
	Migrate bool
}

// Serve loads configuration, connects dependencies and runs the HTTP server
// until ctx is cancelled or a shutdown signal arrives.
func Serve(ctx context.Context, opts ServeOptions) error {
	// Phase 1: Load config and create logger
	cfg, err := LoadConfig(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := CreateLogger(cfg, opts.Version)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Phase 2: Start profiling server (if enabled)
	profiling.StartPprofServer(log)

	// Phase 3: Database, migrations first when requested
	if opts.Migrate {
		if migrateErr := RunMigrations(ctx, cfg, log); migrateErr != nil {
			return fmt.Errorf("failed to run migrations: %w", migrateErr)
		}
	}

	db, err := SetupDatabase(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Error("Failed to close database", infralogger.Error(closeErr))
		}
	}()

	// Phase 4: Redis-backed page cache and event publisher (optional)
	redisClient := SetupRedis(ctx, cfg, log)
	publisher := events.NewPublisher(redisClient, log)
	if redisClient != nil {
		defer func() {
			publisher.Wait()
			if closeErr := redisClient.Close(); closeErr != nil {
				log.Error("Failed to close Redis client", infralogger.Error(closeErr))
			}
		}()
	}

	// Phase 5: Setup and run HTTP server
	server, err := SetupHTTPServer(cfg, db, redisClient, publisher, opts.Version, log)
	if err != nil {
		return fmt.Errorf("failed to set up server: %w", err)
	}

	if runErr := server.Run(ctx); runErr != nil {
		log.Error("Server error", infralogger.Error(runErr))
		return fmt.Errorf("server error: %w", runErr)
	}

	log.Info("Server exited")
	return nil
}
