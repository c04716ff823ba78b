package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	infralogger "github.com/growlocal360/maxx-energy/infrastructure/logger"
	"github.com/growlocal360/maxx-energy/internal/bootstrap"
	"github.com/growlocal360/maxx-energy/internal/database"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runMigrator(cmd, func(mg *database.Migrator) error {
					return mg.Up()
				})
			},
		},
		&cobra.Command{
			Use:   "down [steps]",
			Short: "Roll back migrations (default one step)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				steps := 1
				if len(args) == 1 {
					n, err := strconv.Atoi(args[0])
					if err != nil || n < 1 {
						return fmt.Errorf("steps must be a positive integer, got %q", args[0])
					}
					steps = n
				}
				return runMigrator(cmd, func(mg *database.Migrator) error {
					return mg.Down(steps)
				})
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runMigrator(cmd, func(mg *database.Migrator) error {
					version, dirty, err := mg.Version()
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "force <version>",
			Short: "Set the schema version without running migrations",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				version, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("version must be an integer, got %q", args[0])
				}
				return runMigrator(cmd, func(mg *database.Migrator) error {
					return mg.Force(version)
				})
			},
		},
	)
	return cmd
}

func runMigrator(cmd *cobra.Command, fn func(*database.Migrator) error) error {
	cfg, err := bootstrap.LoadConfig(configPath)
	if err != nil {
		return err
	}
	log, err := bootstrap.CreateLogger(cfg, Version)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if err = bootstrap.WithMigrator(cmd.Context(), cfg, log, fn); err != nil {
		log.Error("Migration failed", infralogger.Error(err))
		return err
	}
	return nil
}
