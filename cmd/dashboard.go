package cmd

import (
	"github.com/bnema/evaldash/internal/adapters/tui/dashboard"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *app) *cobra.Command {
	var inline bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Browse sections and recommendations interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return dashboard.Run(cmd.Context(), app.service, dashboard.Options{
				Coordinator: app.newCoordinator("dashboard"),
				Logger:      app.logger.Named("dashboard"),
				Input:       cmd.InOrStdin(),
				Output:      cmd.OutOrStdout(),
				AltScreen:   !inline,
			})
		},
	}

	cmd.Flags().BoolVar(&inline, "inline", false, "Render inline instead of on the alternate screen")

	return cmd
}
