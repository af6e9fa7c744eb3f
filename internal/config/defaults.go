package config

// Default session values.
const (
	DefaultDelay             = 1.0
	DefaultTargetWPM         = 16.0
	DefaultFocusMinutes      = 25
	DefaultShortBreakMinutes = 5
	DefaultLongBreakMinutes  = 30
	DefaultLongBreakEvery    = 4

	// MaxDelay is the longest poll delay in seconds (one day). It keeps
	// PollDelay far from the time.Duration range.
	MaxDelay = 86400.0
)

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"file":                         "",
		"delay":                        DefaultDelay,
		"wpm":                          DefaultTargetWPM,
		"output_style":                 string(StyleDefault),
		"debug":                        false,
		"pomodoro.focus_minutes":       DefaultFocusMinutes,
		"pomodoro.short_break_minutes": DefaultShortBreakMinutes,
		"pomodoro.long_break_minutes":  DefaultLongBreakMinutes,
		"pomodoro.long_break_every":    DefaultLongBreakEvery,
		"notifications.enabled":        true,
		"notifications.type":           "visual",
		"notifications.sound_file":     "",
		"notifications.live_updates":   true,
		"notifications.on_break":       true,
	}
}
