package session

import (
	"time"

	apperrors "github.com/wordpace/wordpace/internal/errors"
	"github.com/wordpace/wordpace/internal/progress"
)

// Schedule is the pomodoro rhythm, all values in minutes except LongEvery.
type Schedule struct {
	Focus      int
	ShortBreak int
	LongBreak  int
	// LongEvery is how many focus intervals pass between long breaks
	LongEvery int
}

// DefaultSchedule returns 25 minute focus, 5 minute short break and a
// 30 minute long break every 4th interval.
func DefaultSchedule() Schedule {
	return Schedule{Focus: 25, ShortBreak: 5, LongBreak: 30, LongEvery: 4}
}

// Validate checks every interval is positive
func (s Schedule) Validate() error {
	switch {
	case s.Focus <= 0:
		return apperrors.NewConfigError("pomodoro focus minutes must be > 0")
	case s.ShortBreak <= 0:
		return apperrors.NewConfigError("pomodoro short break minutes must be > 0")
	case s.LongBreak <= 0:
		return apperrors.NewConfigError("pomodoro long break minutes must be > 0")
	case s.LongEvery <= 0:
		return apperrors.NewConfigError("pomodoro long break interval must be > 0")
	}
	return nil
}

// Milestone returns how many focus intervals fit in floor(elapsed minutes).
func (s Schedule) Milestone(elapsed time.Duration) int {
	if elapsed <= 0 {
		return 0
	}
	return int(elapsed/time.Minute) / s.Focus
}

// BreakFor decides the break owed when the milestone moves from prev to next.
// Crossing several milestones at once yields one break, long if any crossed
// milestone was a long one.
func (s Schedule) BreakFor(prev, next int) (progress.Break, bool) {
	if next <= prev || next <= 0 {
		return progress.Break{}, false
	}
	if next/s.LongEvery > prev/s.LongEvery {
		return progress.Break{Milestone: next, Minutes: s.LongBreak, Long: true}, true
	}
	return progress.Break{Milestone: next, Minutes: s.ShortBreak}, true
}
