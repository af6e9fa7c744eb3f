package session

import (
	"time"

	"github.com/wordpace/wordpace/internal/progress"
)

// Measure computes the report for poll number polls.
// first is the count at start, last the count at the previous poll.
func Measure(polls int, delay time.Duration, target float64, first, last, count int) progress.PollReport {
	elapsed := time.Duration(polls) * delay
	delta := count - last
	total := count - first

	var average float64
	if minutes := elapsed.Minutes(); minutes > 0 {
		average = float64(total) / minutes
	}

	return progress.PollReport{
		Poll:          polls,
		Elapsed:       elapsed,
		WordsDelta:    delta,
		WordsTotal:    total,
		AverageWPM:    average,
		DeltaOnPace:   float64(delta) >= WordsPerDelta(target, delay),
		AverageOnPace: average >= target,
	}
}

// WordsPerDelta is the growth one poll needs to stay on target pace.
func WordsPerDelta(target float64, delay time.Duration) float64 {
	return target * delay.Minutes()
}
