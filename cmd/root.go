package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "evaldash",
		Short:         "evaldash: browse evaluation results and AI teaching recommendations",
		Long:          "evaldash shows per-section evaluation results from a local dashboard snapshot and fetches AI-generated recommendations for the selected section, keeping only the latest request on screen.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
		return app.flush()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newSectionsCmd(app),
		newRecommendCmd(app),
		newTokenCmd(app),
		newDashboardCmd(app),
	)

	return rootCmd
}
