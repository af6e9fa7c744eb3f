package progress

import (
	"fmt"
	"strings"
	"time"
)

const (
	// ShortBreakMessage is announced at the end of a regular focus interval.
	ShortBreakMessage = "Nice work, shake your legs! take a drink!"
	// LongBreakMessage is announced when the long break comes around.
	LongBreakMessage = "Nice work, it's been an hour, take a break man"
	// LongBreakAlert is the desktop alert title for the long break.
	LongBreakAlert = "Nice work, it's been a while, take a break man"
)

// FormatElapsed renders a duration as M:SS.cc, minutes unbounded.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int64(d / time.Minute)
	secs := (d % time.Minute).Seconds()
	return fmt.Sprintf("%d:%05.2f", minutes, secs)
}

// Title returns the heading used for both the console block and the live notification
func Title(elapsed time.Duration) string {
	return "Minute " + FormatElapsed(elapsed)
}

// NotificationBody returns the live notification body
func NotificationBody(wordsTotal int, averageWPM float64) string {
	return fmt.Sprintf("%d words\n%.2f wpm", wordsTotal, averageWPM)
}

// deltaText returns the per-poll growth line
func deltaText(r PollReport) string {
	if r.DeltaOnPace {
		return fmt.Sprintf("Success, %d words written!", r.WordsDelta)
	}
	return fmt.Sprintf("Keep your focus! %d words written!", r.WordsDelta)
}

// averageText returns the session average line
func averageText(r PollReport) string {
	if r.AverageOnPace {
		return fmt.Sprintf("Keep going! %.2f words per minute!", r.AverageWPM)
	}
	return fmt.Sprintf("Go go go! %.2f words per minute written!", r.AverageWPM)
}

// totalText returns the running total line
func totalText(r PollReport) string {
	return fmt.Sprintf("Wrote %d words in total", r.WordsTotal)
}

// compactLine folds a poll into a single line
func compactLine(r PollReport, symbols ProgressSymbols) string {
	return fmt.Sprintf("%s  %s %+d  %s %.2f wpm  %d total",
		FormatElapsed(r.Elapsed),
		toneSymbol(r.DeltaTone(), symbols), r.WordsDelta,
		toneSymbol(r.AverageTone(), symbols), r.AverageWPM,
		r.WordsTotal,
	)
}

// remainingText returns the countdown line printed each break minute
func remainingText(remaining int) string {
	return fmt.Sprintf("minutes remaining: %d", remaining)
}

// breakSuffix is the spinner label while a break runs
func breakSuffix(remaining int) string {
	unit := "minutes"
	if remaining == 1 {
		unit = "minute"
	}
	return fmt.Sprintf(" On break, %d %s left", remaining, unit)
}

// summaryLines builds the rows of the closing box
func summaryLines(s Summary) []string {
	lines := []string{
		"Session complete",
		"",
		fmt.Sprintf("Elapsed   %s", FormatElapsed(s.Elapsed)),
		fmt.Sprintf("Polls     %d", s.Polls),
		fmt.Sprintf("Words     %d", s.WordsTotal),
		fmt.Sprintf("Average   %.2f wpm (target %.2f)", s.AverageWPM, s.TargetWPM),
		fmt.Sprintf("Breaks    %d", s.Breaks),
	}
	if s.File != "" {
		lines = append(lines, fmt.Sprintf("File      %s", s.File))
	}
	return lines
}

// toneSymbol returns the compact marker for a tone
func toneSymbol(t Tone, symbols ProgressSymbols) string {
	if t == ToneSuccess {
		return symbols.Success
	}
	return symbols.Warning
}

// joinLines joins rendered rows with newlines
func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
