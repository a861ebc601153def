package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newTokenCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage the session cookies sent with API requests",
	}

	cmd.AddCommand(
		newTokenSetCmd(app),
		newTokenStatusCmd(app),
		newTokenClearCmd(app),
	)

	return cmd
}

func newTokenSetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <cookie-header>",
		Short: "Store a browser Cookie header (use - to read it from stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			header := args[0]
			if header == "-" {
				data, err := io.ReadAll(io.LimitReader(cmd.InOrStdin(), 64<<10))
				if err != nil {
					return fmt.Errorf("read cookie header: %w", err)
				}
				header = strings.TrimSpace(string(data))
			}

			if err := app.jar.Save(cmd.Context(), header); err != nil {
				return err
			}

			csrf, err := app.jar.Token(cmd.Context(), app.cfg.API.CSRFCookie)
			if err != nil {
				return err
			}
			if csrf == "" {
				_, err = fmt.Fprintf(cmd.ErrOrStderr(), "warning: no %s cookie found, POST requests will likely be rejected\n", app.cfg.API.CSRFCookie)
				if err != nil {
					return err
				}
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "session cookies saved")
			return err
		},
	}
}

func newTokenStatusCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report whether session and CSRF cookies are stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			header, err := app.jar.CookieHeader(cmd.Context())
			if err != nil {
				return err
			}
			if header == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "no session cookies stored")
				return err
			}

			csrf, err := app.jar.Token(cmd.Context(), app.cfg.API.CSRFCookie)
			if err != nil {
				return err
			}
			state := "missing"
			if csrf != "" {
				state = "present"
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "session cookies stored (%s %s)\n", app.cfg.API.CSRFCookie, state)
			return err
		},
	}
}

func newTokenClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove stored session cookies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.jar.Clear(cmd.Context()); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "session cookies cleared")
			return err
		},
	}
}
