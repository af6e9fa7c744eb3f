package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/wordpace/wordpace/internal/clock"
	"github.com/wordpace/wordpace/internal/config"
	apperrors "github.com/wordpace/wordpace/internal/errors"
	"github.com/wordpace/wordpace/internal/notify"
	"github.com/wordpace/wordpace/internal/progress"
	"github.com/wordpace/wordpace/internal/session"
)

// runSession loads configuration, wires the session and runs it until the
// command context is cancelled.
func runSession(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.Debug)
	slog.SetDefault(logger)
	logger.Debug("configuration loaded",
		"file", cfg.File,
		"delay", cfg.Delay,
		"wpm", cfg.TargetWPM,
		"output_style", cfg.OutputStyle,
		"notifications", cfg.Notifications.Enabled,
	)

	style, _ := config.ParseStyle(cfg.OutputStyle)
	caps := progress.DetectTerminalCapabilities()
	if !style.Colored() {
		caps.SupportsColor = false
	}
	console := progress.NewConsole(cmd.OutOrStdout(), caps, style.Compact())

	if err := notify.CheckSound(cfg.Notifications.SoundFile); err != nil {
		logger.Warn("custom sound unusable, using the platform chime",
			"path", cfg.Notifications.SoundFile, "error", err)
		cfg.Notifications.SoundFile = ""
	}
	handler := notify.NewHandler(cfg.Notifications, logger)

	sess, err := session.New(session.Options{
		Source:    session.NewFileSource(cfg.File),
		Delay:     cfg.PollDelay(),
		TargetWPM: cfg.TargetWPM,
		Schedule:  scheduleFrom(cfg.Pomodoro),
		Clock:     clock.System{},
		Reporter:  console,
		Notifier:  notifier{handler: handler},
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	_, err = sess.Run(cmd.Context())
	return err
}

// loadConfig merges the flags the user actually set as the top config
// layer, so a flag can replace an invalid env or file value.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Configuration, error) {
	flags := cmd.Flags()

	if flags.Changed("config") {
		if _, err := os.Stat(opts.configPath); err != nil {
			return nil, apperrors.WrapWithMessage(err, apperrors.Configuration,
				"config file "+opts.configPath+" not found",
				"Check the --config path",
			)
		}
	}

	overrides := map[string]any{}
	if flags.Changed("file") {
		overrides["file"] = opts.file
	}
	if flags.Changed("delay") {
		switch {
		case opts.delay <= 0:
			return nil, apperrors.InvalidDelay(opts.delay)
		case opts.delay > config.MaxDelay:
			return nil, apperrors.DelayTooLong(opts.delay, config.MaxDelay)
		}
		overrides["delay"] = opts.delay
	}
	if flags.Changed("wpm") {
		if opts.wpm <= 0 {
			return nil, apperrors.InvalidTarget(opts.wpm)
		}
		overrides["wpm"] = opts.wpm
	}
	if flags.Changed("no-notify") && opts.noNotify {
		overrides["notifications.enabled"] = false
	}
	if flags.Changed("debug") {
		overrides["debug"] = opts.debug
	}

	cfg, err := config.LoadWithOverrides(opts.configPath, overrides)
	if err != nil {
		return nil, apperrors.ConfigLoadFailed(err)
	}
	if cfg.File == "" {
		return nil, apperrors.MissingFile()
	}
	return cfg, nil
}

// scheduleFrom converts the pomodoro config section
func scheduleFrom(p config.PomodoroConfig) session.Schedule {
	return session.Schedule{
		Focus:      p.FocusMinutes,
		ShortBreak: p.ShortBreakMinutes,
		LongBreak:  p.LongBreakMinutes,
		LongEvery:  p.LongBreakEvery,
	}
}

// notifier adapts notify.Handler to the session's Notifier
type notifier struct {
	handler *notify.Handler
}

func (n notifier) Live(title, body string) (session.LiveUpdater, error) {
	live, err := n.handler.Live(title, body)
	if err != nil {
		return nil, err
	}
	return live, nil
}

func (n notifier) Alert(title, message string) {
	n.handler.Alert(title, message)
}
