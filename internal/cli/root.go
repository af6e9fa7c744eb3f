// Package cli provides the Cobra-based command line for wordpace: the root
// command that runs a writing session and the version command.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/wordpace/wordpace/internal/config"
	apperrors "github.com/wordpace/wordpace/internal/errors"
)

// DefaultConfigPath is the project-local config file read when --config is not given
const DefaultConfigPath = ".wordpace/config.yml"

// rootOptions holds the values bound to root flags
type rootOptions struct {
	file       string
	delay      float64
	wpm        float64
	configPath string
	noNotify   bool
	debug      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "wordpace",
		Short: "Writing pace timer with pomodoro breaks",
		Long: `wordpace watches a text file while you write, reports how many words
you add per poll and your average words per minute against a target, keeps a
desktop notification updated, and tells you when to take a break.`,
		Example: `  # Watch a draft with the defaults (1s polls, 16 wpm target)
  wordpace --file draft.md

  # Poll every 30 seconds against a 25 wpm target
  wordpace -f chapter-3.md -d 30 -w 25

  # Console only
  wordpace -f notes.txt --no-notify`,
		Args:          noArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSession(cmd, opts)
		},
	}

	bindRootFlags(root, opts)
	root.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return apperrors.NewArgumentErrorWithUsage(err.Error(), c.UseLine())
	})

	root.AddCommand(newVersionCmd())
	root.AddCommand(newDoctorCmd())
	return root
}

// bindRootFlags registers the session flags on root
func bindRootFlags(root *cobra.Command, opts *rootOptions) {
	flags := root.Flags()
	flags.StringVarP(&opts.file, "file", "f", "", "File to watch")
	flags.Float64VarP(&opts.delay, "delay", "d", config.DefaultDelay, "Seconds between polls")
	flags.Float64VarP(&opts.wpm, "wpm", "w", config.DefaultTargetWPM, "Target words per minute")
	flags.BoolVar(&opts.noNotify, "no-notify", false, "Disable desktop notifications")
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", DefaultConfigPath, "Path to config file")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
}

// noArgs rejects positional arguments with an argument error
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	return apperrors.NewArgumentErrorWithUsage(
		"unexpected argument "+args[0],
		cmd.UseLine(),
		"Pass the file to watch with --file "+args[0],
	)
}

// Execute runs the root command
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command; cancelling ctx ends the session gracefully
func ExecuteContext(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}
