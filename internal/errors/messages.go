package errors

import "fmt"

// FileUnreadable is returned when the watched file cannot be read.
func FileUnreadable(path string, cause error) *CLIError {
	e := NewRuntimeError(
		fmt.Sprintf("failed to open %s: %v", path, cause),
		"Check that the file exists and is readable",
		"Pass the file to watch with --file <path>",
	)
	e.cause = cause
	return e
}

// MissingFile is returned when no file was given.
func MissingFile() *CLIError {
	return NewArgumentErrorWithUsage(
		"no file to watch",
		"wordpace --file <path> [--delay <seconds>] [--wpm <target>]",
		"Pass the file you are writing with --file",
	)
}

// InvalidDelay is returned for a non-positive poll delay.
func InvalidDelay(delay float64) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("delay must be greater than 0 seconds, got %g", delay),
		"Use --delay 1 to poll every second",
	)
}

// DelayTooLong is returned for a poll delay above limit seconds.
func DelayTooLong(delay, limit float64) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("delay must be at most %g seconds, got %g", limit, delay),
		"Poll at least once a day, e.g. --delay 60",
	)
}

// InvalidTarget is returned for a non-positive words-per-minute target.
func InvalidTarget(wpm float64) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("target must be greater than 0 words per minute, got %g", wpm),
		"Use --wpm 16 for the default pace",
	)
}

// NotificationUnavailable is returned when the live notification cannot be shown.
func NotificationUnavailable(cause error) *CLIError {
	e := NewRuntimeError(
		fmt.Sprintf("failed to show desktop notification: %v", cause),
		"Check that your desktop notification daemon is running",
		"Run with --no-notify to disable notifications",
	)
	e.cause = cause
	return e
}

// ConfigLoadFailed wraps a configuration loading error.
func ConfigLoadFailed(cause error) *CLIError {
	e := NewConfigError(
		cause.Error(),
		"Check the config file syntax (JSON or YAML)",
		"Check WORDPACE_* environment variables",
	)
	e.cause = cause
	return e
}
