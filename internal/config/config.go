// Package config loads wordpace settings from defaults, config files, and
// WORDPACE_* environment variables, then validates them.
package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/wordpace/wordpace/internal/notify"
)

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "WORDPACE_"

// Configuration represents the wordpace settings for one session
type Configuration struct {
	File          string         `koanf:"file"`
	Delay         float64        `koanf:"delay" validate:"gt=0,lte=86400"`
	TargetWPM     float64        `koanf:"wpm" validate:"gt=0"`
	OutputStyle   string         `koanf:"output_style"`
	Debug         bool           `koanf:"debug"`
	Pomodoro      PomodoroConfig `koanf:"pomodoro"`
	Notifications notify.Config  `koanf:"notifications"`
}

// PomodoroConfig describes the focus/break rhythm.
type PomodoroConfig struct {
	FocusMinutes      int `koanf:"focus_minutes" validate:"min=1"`
	ShortBreakMinutes int `koanf:"short_break_minutes" validate:"min=1"`
	LongBreakMinutes  int `koanf:"long_break_minutes" validate:"min=1"`
	LongBreakEvery    int `koanf:"long_break_every" validate:"min=1"`
}

// PollDelay returns Delay as a duration, rounded to the nearest nanosecond.
func (c *Configuration) PollDelay() time.Duration {
	return time.Duration(math.Round(c.Delay * float64(time.Second)))
}

// UserConfigPaths returns the candidate user-level config files, in lookup order.
func UserConfigPaths() []string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	dir := filepath.Join(homeDir, ".wordpace")
	return []string{
		filepath.Join(dir, "config.yml"),
		filepath.Join(dir, "config.yaml"),
		filepath.Join(dir, "config.json"),
	}
}

// Load loads configuration from user, local, and environment sources.
// Priority: Environment variables > Local config > User config > Defaults.
// A missing local config file is not an error.
func Load(localConfigPath string) (*Configuration, error) {
	return LoadWithOverrides(localConfigPath, nil)
}

// LoadWithOverrides is Load with one more layer on top of the environment,
// keyed like the config file (e.g. "delay", "notifications.enabled").
// Validation runs after every layer is merged.
func LoadWithOverrides(localConfigPath string, overrides map[string]any) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	for _, userPath := range UserConfigPaths() {
		if _, err := os.Stat(userPath); err != nil {
			continue
		}
		if err := loadFile(k, userPath); err != nil {
			return nil, fmt.Errorf("failed to load user config: %w", err)
		}
		break
	}

	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := loadFile(k, localConfigPath); err != nil {
				return nil, fmt.Errorf("failed to load local config: %w", err)
			}
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment overrides: %w", err)
	}

	for key, value := range overrides {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to apply %s override: %w", key, err)
		}
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	cfg.File = expandHomePath(cfg.File)
	cfg.Notifications.SoundFile = expandHomePath(cfg.Notifications.SoundFile)

	return &cfg, nil
}

// loadFile loads path into k, picking the parser from the file extension.
func loadFile(k *koanf.Koanf, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		if err := CheckYAMLFile(path); err != nil {
			return err
		}
		return k.Load(file.Provider(path), YAMLParser())
	default:
		return k.Load(file.Provider(path), json.Parser())
	}
}

// envTransform converts environment variable names to config keys.
// A double underscore separates nesting levels:
// WORDPACE_POMODORO__FOCUS_MINUTES -> pomodoro.focus_minutes
func envTransform(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
