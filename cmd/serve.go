package cmd

import (
	"github.com/spf13/cobra"

	"github.com/growlocal360/maxx-energy/internal/bootstrap"
)

func newServeCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the website, public API and admin API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return bootstrap.Serve(cmd.Context(), bootstrap.ServeOptions{
				ConfigPath: configPath,
				Version:    Version,
				Migrate:    migrate,
			})
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply pending database migrations before serving")
	return cmd
}
