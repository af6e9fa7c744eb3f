package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordpace/wordpace/internal/clock"
	apperrors "github.com/wordpace/wordpace/internal/errors"
	"github.com/wordpace/wordpace/internal/progress"
	"github.com/wordpace/wordpace/internal/testutil"
)

type fixture struct {
	session  *Session
	clock    *clock.Fake
	reporter *testutil.RecordingReporter
	notifier *recordingNotifier
}

func newFixture(t *testing.T, src WordSource, delay time.Duration, target float64) fixture {
	t.Helper()

	f := fixture{
		clock:    clock.NewFake(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)),
		reporter: testutil.NewRecordingReporter(),
		notifier: &recordingNotifier{},
	}
	s, err := New(Options{
		Source:    src,
		Delay:     delay,
		TargetWPM: target,
		Clock:     f.clock,
		Reporter:  f.reporter,
		Notifier:  f.notifier,
		Logger:    discardLogger,
	})
	require.NoError(t, err)
	f.session = s
	return f
}

func TestNew_Invalid(t *testing.T) {
	t.Parallel()

	src := &scriptedSource{counts: []int{0}}
	tests := map[string]struct {
		opts     Options
		category apperrors.ErrorCategory
		contains string
	}{
		"no source": {
			opts:     Options{Delay: time.Second, TargetWPM: 16},
			category: apperrors.Argument,
			contains: "no file",
		},
		"zero delay": {
			opts:     Options{Source: src, TargetWPM: 16},
			category: apperrors.Argument,
			contains: "delay",
		},
		"negative target": {
			opts:     Options{Source: src, Delay: time.Second, TargetWPM: -1},
			category: apperrors.Argument,
			contains: "words per minute",
		},
		"bad schedule": {
			opts:     Options{Source: src, Delay: time.Second, TargetWPM: 16, Schedule: Schedule{Focus: 25}},
			category: apperrors.Configuration,
			contains: "short break",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			s, err := New(tt.opts)
			require.Error(t, err)
			assert.Nil(t, s)
			cliErr := apperrors.AsCLIError(err)
			require.NotNil(t, cliErr)
			assert.Equal(t, tt.category, cliErr.Category)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	s, err := New(Options{Source: &scriptedSource{counts: []int{0}}, Delay: time.Second, TargetWPM: 16})
	require.NoError(t, err)
	assert.Equal(t, DefaultSchedule(), s.schedule)
	assert.Equal(t, StateRunning, s.State())
	assert.IsType(t, clock.System{}, s.clock)
}

func TestSession_StepBeforeStart(t *testing.T) {
	t.Parallel()

	f := newFixture(t, &scriptedSource{counts: []int{1}}, time.Second, 16)
	assert.ErrorIs(t, f.session.Step(context.Background()), ErrNotStarted)
}

func TestSession_Start(t *testing.T) {
	t.Parallel()

	f := newFixture(t, &scriptedSource{counts: []int{42, 42}}, time.Second, 16)
	require.NoError(t, f.session.Start())
	require.NoError(t, f.session.Start())

	assert.Equal(t, []message{{"Minute 0:00.00", "0 words\n0.00 wpm"}}, f.notifier.opened)
	assert.Equal(t, 0, f.session.Polls())
	assert.Empty(t, f.clock.Sleeps())
}

func TestSession_StartFailures(t *testing.T) {
	t.Parallel()

	t.Run("unreadable file", func(t *testing.T) {
		t.Parallel()
		src := &scriptedSource{counts: []int{0}, errs: map[int]error{0: errDisk}}
		f := newFixture(t, src, time.Second, 16)

		err := f.session.Start()
		require.Error(t, err)
		assert.ErrorIs(t, err, errDisk)
		assert.Equal(t, apperrors.Runtime, apperrors.AsCLIError(err).Category)
		assert.Contains(t, err.Error(), "draft.md")
		assert.Empty(t, f.notifier.opened)
	})

	t.Run("notification unavailable", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, &scriptedSource{counts: []int{0}}, time.Second, 16)
		f.notifier.liveErr = errors.New("no dbus")

		_, err := f.session.Run(context.Background())
		require.Error(t, err)
		assert.Equal(t, apperrors.Runtime, apperrors.AsCLIError(err).Category)
		assert.Contains(t, err.Error(), "no dbus")
		assert.Nil(t, f.reporter.SummaryReport())
	})
}

// TestSession_Scenario follows 100 -> 115 -> 115 words at target 10 with a one minute delay
func TestSession_Scenario(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f := newFixture(t, &scriptedSource{counts: []int{100, 115, 115}, cancel: cancel}, time.Minute, 10)
	summary, err := f.session.Run(ctx)
	require.NoError(t, err)

	require.Len(t, f.reporter.Reports(), 2)

	first := f.reporter.Reports()[0]
	assert.Equal(t, time.Minute, first.Elapsed)
	assert.Equal(t, 15, first.WordsDelta)
	assert.InDelta(t, 15.0, first.AverageWPM, 1e-9)
	assert.Equal(t, progress.ToneSuccess, first.DeltaTone())
	assert.Equal(t, progress.ToneSuccess, first.AverageTone())

	second := f.reporter.Reports()[1]
	assert.Equal(t, 2*time.Minute, second.Elapsed)
	assert.Equal(t, 0, second.WordsDelta)
	assert.Equal(t, 15, second.WordsTotal)
	assert.InDelta(t, 7.5, second.AverageWPM, 1e-9)
	assert.Equal(t, progress.ToneWarning, second.DeltaTone())
	assert.Equal(t, progress.ToneWarning, second.AverageTone())

	assert.Equal(t, []message{
		{"Minute 1:00.00", "15 words\n15.00 wpm"},
		{"Minute 2:00.00", "15 words\n7.50 wpm"},
	}, f.notifier.updates)

	require.NotNil(t, f.reporter.SummaryReport())
	assert.Equal(t, summary, *f.reporter.SummaryReport())
	assert.Equal(t, progress.Summary{
		File: "draft.md", Polls: 2, Elapsed: 2 * time.Minute,
		WordsTotal: 15, AverageWPM: 7.5, TargetWPM: 10,
	}, summary)
}

func TestSession_NegativeDelta(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f := newFixture(t, &scriptedSource{counts: []int{10, 6}, cancel: cancel}, time.Minute, 1)
	_, err := f.session.Run(ctx)
	require.NoError(t, err)

	require.Len(t, f.reporter.Reports(), 1)
	r := f.reporter.Reports()[0]
	assert.Equal(t, -4, r.WordsDelta)
	assert.Equal(t, -4, r.WordsTotal)
	assert.Equal(t, progress.ToneWarning, r.DeltaTone())
	assert.Equal(t, progress.ToneWarning, r.AverageTone())
}

func TestSession_ElapsedInvariant(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	delay := 1500 * time.Millisecond
	f := newFixture(t, constantSource(5, 40, cancel), delay, 16)
	_, err := f.session.Run(ctx)
	require.NoError(t, err)

	require.Len(t, f.reporter.Reports(), 40)
	for i, r := range f.reporter.Reports() {
		assert.Equal(t, i+1, r.Poll)
		assert.Equal(t, time.Duration(i+1)*delay, r.Elapsed)
		assert.Equal(t, 0, r.WordsTotal)
	}
	assert.Equal(t, 40*delay, f.session.Elapsed())
	assert.Equal(t, 40*delay, f.clock.Slept())
}

// TestSession_Breaks runs 101 one-minute polls through three short breaks and one long one
func TestSession_Breaks(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f := newFixture(t, constantSource(0, 101, cancel), time.Minute, 16)
	summary, err := f.session.Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, []testutil.BreakRecord{
		{Break: progress.Break{Milestone: 1, Minutes: 5}, AfterPoll: 25},
		{Break: progress.Break{Milestone: 2, Minutes: 5}, AfterPoll: 50},
		{Break: progress.Break{Milestone: 3, Minutes: 5}, AfterPoll: 75},
		{Break: progress.Break{Milestone: 4, Minutes: 30, Long: true}, AfterPoll: 100},
	}, f.reporter.Breaks())

	var wantTicks []int
	for _, minutes := range []int{5, 5, 5, 30} {
		for remaining := minutes - 1; remaining >= 0; remaining-- {
			wantTicks = append(wantTicks, remaining)
		}
	}
	assert.Equal(t, wantTicks, f.reporter.Ticks())
	f.reporter.AssertCallCount(t, "BreakTick", 45)
	f.reporter.AssertCallCount(t, "Report", 101)

	assert.Equal(t, []message{
		{progress.ShortBreakMessage, "5 minute break"},
		{progress.ShortBreakMessage, "5 minute break"},
		{progress.ShortBreakMessage, "5 minute break"},
		{progress.LongBreakAlert, "30 minute break"},
	}, f.notifier.alerts)

	assert.Equal(t, 101, summary.Polls)
	assert.Equal(t, 4, summary.Breaks)
	assert.Equal(t, 101*time.Minute, summary.Elapsed)
	assert.Equal(t, 101*time.Minute+45*time.Minute, f.clock.Slept())
	assert.Equal(t, StateRunning, f.session.State())
}

func TestSession_StepTransitions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, err := New(Options{
		Source:    constantSource(0, 100, nil),
		Delay:     25 * time.Minute,
		TargetWPM: 16,
		Schedule:  Schedule{Focus: 25, ShortBreak: 2, LongBreak: 3, LongEvery: 2},
		Clock:     clock.NewFake(time.Time{}),
		Logger:    discardLogger,
	})
	require.NoError(t, err)
	require.NoError(t, s.Start())

	steps := []struct {
		wantState     State
		wantRemaining int
	}{
		{StateBreakPending, 0}, // poll 1, 25 minutes
		{StateOnBreak, 2},
		{StateOnBreak, 1},
		{StateRunning, 0},
		{StateBreakPending, 0}, // poll 2, 50 minutes, long
		{StateOnBreak, 3},
		{StateOnBreak, 2},
		{StateOnBreak, 1},
		{StateRunning, 0},
	}
	for i, step := range steps {
		require.NoError(t, s.Step(ctx), "step %d", i)
		assert.Equal(t, step.wantState, s.State(), "step %d", i)
		assert.Equal(t, step.wantRemaining, s.Remaining(), "step %d", i)
	}
	assert.Equal(t, 2, s.Polls())
}

func TestSession_LargeDelayFiresOneBreak(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f := newFixture(t, constantSource(0, 2, cancel), time.Hour, 16)
	_, err := f.session.Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, []testutil.BreakRecord{
		{Break: progress.Break{Milestone: 2, Minutes: 5}, AfterPoll: 1},
		{Break: progress.Break{Milestone: 4, Minutes: 30, Long: true}, AfterPoll: 2},
	}, f.reporter.Breaks())
}

func TestSession_PollReadFailureIsFatal(t *testing.T) {
	t.Parallel()

	src := &scriptedSource{counts: []int{1, 2, 3, 4}, errs: map[int]error{2: errDisk}}
	f := newFixture(t, src, time.Second, 16)

	summary, err := f.session.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errDisk)
	assert.Equal(t, apperrors.Runtime, apperrors.AsCLIError(err).Category)
	assert.Equal(t, 1, summary.Polls)
	assert.Len(t, f.reporter.Reports(), 1)
	f.reporter.AssertNotCalled(t, "Summary")
}

func TestSession_LiveUpdateFailureIsIgnored(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f := newFixture(t, &scriptedSource{counts: []int{0, 3, 6}, cancel: cancel}, time.Second, 16)
	f.notifier.updateErr = errors.New("notify-send vanished")

	_, err := f.session.Run(ctx)
	require.NoError(t, err)
	assert.Len(t, f.reporter.Reports(), 2)
	assert.Len(t, f.notifier.updates, 2)
}

func TestSession_CancelledBeforeFirstPoll(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := newFixture(t, &scriptedSource{counts: []int{7, 7}}, time.Second, 16)
	summary, err := f.session.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Polls)
	assert.Empty(t, f.reporter.Reports())
	require.NotNil(t, f.reporter.SummaryReport())
}

func TestState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "running", StateRunning.String())
	assert.Equal(t, "break_pending", StateBreakPending.String())
	assert.Equal(t, "on_break", StateOnBreak.String())
	assert.Equal(t, "unknown", State(9).String())
}
