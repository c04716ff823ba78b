// Package cmd implements the maxx command-line interface.
package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X .../cmd.Version=...".
var Version = "dev"

var (
	// configPath holds the --config flag; empty means CONFIG_PATH or ./config.yml.
	configPath string

	rootCmd = &cobra.Command{
		Use:           "maxx",
		Short:         "MAXX Energy Services website and content API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
)

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is $CONFIG_PATH or ./config.yml)")

	rootCmd.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newImportItemsCmd(),
		newVersionCmd(),
	)
}
