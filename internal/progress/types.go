// Package progress renders a writing session to the console: one block per
// poll, the break countdown, and a closing summary.
package progress

import (
	"fmt"
	"time"

	apperrors "github.com/wordpace/wordpace/internal/errors"
)

// Tone is the styling applied to a status line
type Tone int

const (
	// ToneSuccess marks a line where the writer is on pace
	ToneSuccess Tone = iota
	// ToneWarning marks a line where the writer is behind
	ToneWarning
)

// String returns the string representation of Tone
func (t Tone) String() string {
	switch t {
	case ToneSuccess:
		return "success"
	case ToneWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// ToneFor maps a pace comparison onto a tone.
func ToneFor(onPace bool) Tone {
	if onPace {
		return ToneSuccess
	}
	return ToneWarning
}

// PollReport holds the measurements taken by a single poll
type PollReport struct {
	// Poll is the 1-based poll number
	Poll int
	// Elapsed is the session time covered so far (polls * delay)
	Elapsed time.Duration
	// WordsDelta is the growth since the previous poll, negative when the file shrank
	WordsDelta int
	// WordsTotal is the growth since the session started
	WordsTotal int
	// AverageWPM is WordsTotal divided by elapsed minutes
	AverageWPM float64
	// DeltaOnPace is true when WordsDelta met the words-per-delta goal
	DeltaOnPace bool
	// AverageOnPace is true when AverageWPM met the target
	AverageOnPace bool
}

// DeltaTone returns the tone of the delta line.
func (r PollReport) DeltaTone() Tone { return ToneFor(r.DeltaOnPace) }

// AverageTone returns the tone of the average line.
func (r PollReport) AverageTone() Tone { return ToneFor(r.AverageOnPace) }

// Break describes a scheduled pause
type Break struct {
	// Milestone is the 1-based index of the focus interval that just ended
	Milestone int
	// Minutes is the break length
	Minutes int
	// Long is true for the extended break taken every few pomodoros
	Long bool
}

// Validate checks that the break can be counted down
func (b Break) Validate() error {
	if b.Milestone <= 0 {
		return apperrors.NewArgumentError("break milestone must be > 0")
	}
	if b.Minutes <= 0 {
		return apperrors.NewArgumentError("break minutes must be > 0")
	}
	return nil
}

// Message returns the text shown when the break starts
func (b Break) Message() string {
	if b.Long {
		return LongBreakMessage
	}
	return ShortBreakMessage
}

// AlertTitle returns the title of the one-shot desktop alert
func (b Break) AlertTitle() string {
	if b.Long {
		return LongBreakAlert
	}
	return ShortBreakMessage
}

// AlertBody returns the body of the one-shot desktop alert
func (b Break) AlertBody() string {
	return fmt.Sprintf("%d minute break", b.Minutes)
}

// Summary is the closing report for a session
type Summary struct {
	File       string
	Polls      int
	Elapsed    time.Duration
	WordsTotal int
	AverageWPM float64
	TargetWPM  float64
	Breaks     int
}

// TerminalCapabilities encapsulates detected terminal features
type TerminalCapabilities struct {
	// IsTTY indicates whether stdout is a terminal (vs pipe/redirect)
	IsTTY bool
	// SupportsColor indicates whether terminal supports ANSI color codes
	SupportsColor bool
	// SupportsUnicode indicates whether terminal supports Unicode characters
	SupportsUnicode bool
	// Width is the terminal width in columns (0 if unknown/pipe)
	Width int
}

// ProgressSymbols defines the character set for visual indicators
type ProgressSymbols struct {
	// Success prefixes on-pace lines in compact mode ("▲" or "+")
	Success string
	// Warning prefixes behind-pace lines in compact mode ("▼" or "-")
	Warning string
	// SpinnerSet is the index into spinner.CharSets
	SpinnerSet int
}
