// Package cli provides the command-line interface for calweek.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calweek/calweek/internal/app"
	"github.com/calweek/calweek/internal/logging"
	"github.com/calweek/calweek/internal/version"
)

// NewRootCmd creates the root command. Running it with no arguments starts
// the tray application; there are no functional flags.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "calweek",
		Short: "CalWeek - ISO calendar week in the system tray",
		Long: `CalWeek ` + version.Version + ` - Built: ` + version.BuildTime + `
Lightweight system tray utility showing the current ISO calendar week
number, with a full-year calendar view and start-at-login management.

Only one instance runs per user session; launching a second copy brings
the calendar window of the running instance to the front.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.New()
			logger.Info().Str("version", version.Version).Msg("calweek starting")

			if err := app.New(logger).Run(); err != nil {
				if errors.Is(err, app.ErrAlreadyRunning) {
					// Expected for a redundant launch; exit 0.
					return nil
				}
				logger.Error().Err(err).Msg("calweek exited with error")
				return err
			}
			return nil
		},
	}

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newVersionCmd creates the 'version' command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("calweek %s (built %s)\n", version.Version, version.BuildTime)
		},
	}
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
