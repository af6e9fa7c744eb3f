// Package clock_test tests the wall clock cancellation and the virtual clock bookkeeping.
// Related: internal/clock/clock.go
// Tags: clock, time, cancellation, fake
package clock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystem_SleepCompletes(t *testing.T) {
	t.Parallel()

	start := time.Now()
	err := System{}.Sleep(context.Background(), 10*time.Millisecond)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestSystem_SleepCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()

	err := System{}.Sleep(ctx, time.Hour)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSystem_SleepAlreadyCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, System{}.Sleep(ctx, time.Hour), context.Canceled)
}

func TestFake_Sleep(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	fake := NewFake(start)

	require.NoError(t, fake.Sleep(context.Background(), time.Second))
	require.NoError(t, fake.Sleep(context.Background(), time.Minute))

	assert.Equal(t, start.Add(time.Minute+time.Second), fake.Now())
	assert.Equal(t, []time.Duration{time.Second, time.Minute}, fake.Sleeps())
	assert.Equal(t, time.Minute+time.Second, fake.Slept())
}

func TestFake_SleepCancelled(t *testing.T) {
	t.Parallel()

	fake := NewFake(time.Time{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, fake.Sleep(ctx, time.Second), context.Canceled)
	assert.Empty(t, fake.Sleeps())
}
