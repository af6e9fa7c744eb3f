// Package session runs a timed writing session: it polls a word source,
// reports pace against a target and pauses for pomodoro breaks.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/wordpace/wordpace/internal/clock"
	apperrors "github.com/wordpace/wordpace/internal/errors"
	"github.com/wordpace/wordpace/internal/progress"
)

// BreakTick is the length of one countdown step during a break
const BreakTick = time.Minute

// ErrNotStarted is returned by Step before Start has succeeded
var ErrNotStarted = errors.New("session not started")

// State is a position in the run-state machine
type State int

const (
	// StateRunning polls the source on every step
	StateRunning State = iota
	// StateBreakPending announces the break owed by the last poll
	StateBreakPending
	// StateOnBreak counts the break down one minute per step
	StateOnBreak
)

// String returns the string representation of State
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateBreakPending:
		return "break_pending"
	case StateOnBreak:
		return "on_break"
	default:
		return "unknown"
	}
}

// Reporter receives everything the session wants shown to the writer
type Reporter interface {
	Report(progress.PollReport)
	BreakStarted(progress.Break)
	BreakTick(remaining int)
	Summary(progress.Summary)
}

// LiveUpdater replaces the content of an already shown notification
type LiveUpdater interface {
	Update(title, body string) error
}

// Notifier opens the live notification and fires break alerts
type Notifier interface {
	Live(title, body string) (LiveUpdater, error)
	Alert(title, message string)
}

// Options configures a Session. Source is required; nil collaborators fall
// back to silent implementations and the system clock.
type Options struct {
	Source    WordSource
	Delay     time.Duration
	TargetWPM float64
	Schedule  Schedule
	Clock     clock.Clock
	Reporter  Reporter
	Notifier  Notifier
	Logger    *slog.Logger
}

// Session is the poll loop and its state
type Session struct {
	source   WordSource
	delay    time.Duration
	target   float64
	schedule Schedule
	clock    clock.Clock
	reporter Reporter
	notifier Notifier
	logger   *slog.Logger

	live      LiveUpdater
	started   bool
	state     State
	polls     int
	first     int
	last      int
	milestone int
	pending   progress.Break
	remaining int
	breaks    int
	average   float64
}

// New validates opts and builds a session. Nothing is read until Start.
func New(opts Options) (*Session, error) {
	if opts.Source == nil {
		return nil, apperrors.MissingFile()
	}
	if opts.Delay <= 0 {
		return nil, apperrors.InvalidDelay(opts.Delay.Seconds())
	}
	if opts.TargetWPM <= 0 {
		return nil, apperrors.InvalidTarget(opts.TargetWPM)
	}
	if opts.Schedule == (Schedule{}) {
		opts.Schedule = DefaultSchedule()
	}
	if err := opts.Schedule.Validate(); err != nil {
		return nil, err
	}
	if opts.Clock == nil {
		opts.Clock = clock.System{}
	}
	if opts.Reporter == nil {
		opts.Reporter = nopReporter{}
	}
	if opts.Notifier == nil {
		opts.Notifier = nopNotifier{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Session{
		source:   opts.Source,
		delay:    opts.Delay,
		target:   opts.TargetWPM,
		schedule: opts.Schedule,
		clock:    opts.Clock,
		reporter: opts.Reporter,
		notifier: opts.Notifier,
		logger:   opts.Logger.With("component", "session"),
		state:    StateRunning,
	}, nil
}

// Start reads the initial word count and opens the live notification.
// Both failures are fatal.
func (s *Session) Start() error {
	if s.started {
		return nil
	}
	count, err := s.source.Count()
	if err != nil {
		return apperrors.FileUnreadable(s.source.Name(), err)
	}
	s.first, s.last = count, count

	live, err := s.notifier.Live(progress.Title(0), progress.NotificationBody(0, 0))
	if err != nil {
		return apperrors.NotificationUnavailable(err)
	}
	s.live = live
	s.started = true

	s.logger.Debug("session started",
		"source", s.source.Name(),
		"words", count,
		"delay", s.delay,
		"target_wpm", s.target,
		"words_per_delta", WordsPerDelta(s.target, s.delay),
	)
	return nil
}

// Step performs one transition of the run-state machine. It returns the
// context error when cancelled during a sleep.
func (s *Session) Step(ctx context.Context) error {
	if !s.started {
		return ErrNotStarted
	}
	switch s.state {
	case StateRunning:
		return s.poll(ctx)
	case StateBreakPending:
		s.beginBreak()
		return nil
	case StateOnBreak:
		return s.tickBreak(ctx)
	default:
		return fmt.Errorf("unknown session state %d", s.state)
	}
}

// Run starts the session and steps until ctx is cancelled or a fatal error
// occurs. Cancellation is a graceful stop: the summary is reported and a nil
// error returned.
func (s *Session) Run(ctx context.Context) (progress.Summary, error) {
	if err := s.Start(); err != nil {
		return s.Summary(), err
	}
	for {
		if err := s.Step(ctx); err != nil {
			summary := s.Summary()
			if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
				s.logger.Debug("session stopped", "polls", s.polls, "elapsed", s.Elapsed())
				s.reporter.Summary(summary)
				return summary, nil
			}
			return summary, err
		}
	}
}

// poll sleeps one delay then measures and reports
func (s *Session) poll(ctx context.Context) error {
	if err := s.clock.Sleep(ctx, s.delay); err != nil {
		return err
	}
	count, err := s.source.Count()
	if err != nil {
		return apperrors.FileUnreadable(s.source.Name(), err)
	}
	s.polls++

	report := Measure(s.polls, s.delay, s.target, s.first, s.last, count)
	s.last = count
	s.average = report.AverageWPM

	s.logger.Debug("poll",
		"poll", report.Poll,
		"elapsed", report.Elapsed,
		"words", count,
		"delta", report.WordsDelta,
		"average_wpm", report.AverageWPM,
	)

	s.reporter.Report(report)
	if err := s.live.Update(progress.Title(report.Elapsed), progress.NotificationBody(report.WordsTotal, report.AverageWPM)); err != nil {
		s.logger.Debug("live notification update failed", "error", err)
	}

	next := s.schedule.Milestone(report.Elapsed)
	if brk, ok := s.schedule.BreakFor(s.milestone, next); ok {
		s.milestone = next
		s.pending = brk
		s.transition(StateBreakPending)
	}
	return nil
}

// beginBreak announces the pending break
func (s *Session) beginBreak() {
	brk := s.pending
	s.breaks++
	s.remaining = brk.Minutes
	s.reporter.BreakStarted(brk)
	s.notifier.Alert(brk.AlertTitle(), brk.AlertBody())
	s.transition(StateOnBreak)
}

// tickBreak waits one minute of the break
func (s *Session) tickBreak(ctx context.Context) error {
	if err := s.clock.Sleep(ctx, BreakTick); err != nil {
		return err
	}
	s.remaining--
	s.reporter.BreakTick(s.remaining)
	if s.remaining <= 0 {
		s.pending = progress.Break{}
		s.transition(StateRunning)
	}
	return nil
}

// transition moves to next and logs the change
func (s *Session) transition(next State) {
	if s.state == next {
		return
	}
	s.logger.Debug("state transition", "from", s.state, "to", next)
	s.state = next
}

// State returns the current machine state
func (s *Session) State() State { return s.state }

// Polls returns how many polls have completed
func (s *Session) Polls() int { return s.polls }

// Elapsed returns polls * delay. Break time is not counted.
func (s *Session) Elapsed() time.Duration {
	return time.Duration(s.polls) * s.delay
}

// Remaining returns the minutes left in the current break
func (s *Session) Remaining() int { return s.remaining }

// Summary returns the session totals so far
func (s *Session) Summary() progress.Summary {
	return progress.Summary{
		File:       s.source.Name(),
		Polls:      s.polls,
		Elapsed:    s.Elapsed(),
		WordsTotal: s.last - s.first,
		AverageWPM: s.average,
		TargetWPM:  s.target,
		Breaks:     s.breaks,
	}
}

type nopReporter struct{}

func (nopReporter) Report(progress.PollReport)  {}
func (nopReporter) BreakStarted(progress.Break) {}
func (nopReporter) BreakTick(int)               {}
func (nopReporter) Summary(progress.Summary)    {}

type nopNotifier struct{}

func (nopNotifier) Live(string, string) (LiveUpdater, error) { return nopLive{}, nil }
func (nopNotifier) Alert(string, string)                     {}

type nopLive struct{}

func (nopLive) Update(string, string) error { return nil }
