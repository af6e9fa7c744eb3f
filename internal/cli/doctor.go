package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	apperrors "github.com/wordpace/wordpace/internal/errors"
	"github.com/wordpace/wordpace/internal/health"
	"github.com/wordpace/wordpace/internal/notify"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check notification tools and configuration",
		Long: `Run health checks to verify that wordpace can run a session here.

This command checks:
  - Configuration (user config, --config file and WORDPACE_* variables)
  - Desktop notification tool for this platform
  - Sound player (a warning only)

Each check displays a ✓ if passed or ✗ with an error message if failed.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			report := health.RunHealthChecks(notify.NewSender(), configPath)

			fmt.Fprint(cmd.OutOrStdout(), health.FormatReport(report))

			if !report.Passed {
				return apperrors.NewPrerequisiteError(
					"health checks failed",
					"Install the missing tools or run sessions with --no-notify",
				)
			}
			return nil
		},
	}
}
