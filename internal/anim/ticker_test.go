package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickerLinearProgress(t *testing.T) {
	clock := NewFakeClock()
	sched := NewScheduler(clock)
	ticker := sched.NewTicker()

	var got []float64
	completed := 0
	ticker.Start(2500*time.Millisecond, func(p float64) {
		got = append(got, p)
	}, func() {
		completed++
	})
	require.Equal(t, Running, ticker.State())
	require.Equal(t, 1, sched.Active())

	for range 5 {
		clock.Advance(500 * time.Millisecond)
		sched.Step()
	}

	require.Len(t, got, 5)
	assert.InDeltaSlice(t, []float64{0.2, 0.4, 0.6, 0.8, 1}, got, 1e-9)
	assert.Equal(t, 1.0, got[len(got)-1])
	assert.Equal(t, 1, completed)
	assert.Equal(t, Idle, ticker.State())
	assert.Equal(t, 0, sched.Active())

	// Further steps deliver nothing.
	clock.Advance(time.Second)
	sched.Step()
	assert.Len(t, got, 5)
	assert.Equal(t, 1, completed)
}

func TestTickerOvershootClampsToOne(t *testing.T) {
	clock := NewFakeClock()
	sched := NewScheduler(clock)
	ticker := sched.NewTicker()

	var last float64
	ticker.Start(time.Second, func(p float64) { last = p }, nil)
	clock.Advance(10 * time.Second)
	sched.Step()

	assert.Equal(t, 1.0, last)
	assert.Equal(t, 1, ticker.Ticks())
	assert.Equal(t, Idle, ticker.State())
}

func TestTickerZeroDurationCompletesOnFirstStep(t *testing.T) {
	sched := NewScheduler(NewFakeClock())
	ticker := sched.NewTicker()

	var last float64
	done := false
	ticker.Start(0, func(p float64) { last = p }, func() { done = true })
	sched.Step()

	assert.Equal(t, 1.0, last)
	assert.True(t, done)
}

func TestTickerCancelDetachesCallbacks(t *testing.T) {
	clock := NewFakeClock()
	sched := NewScheduler(clock)
	ticker := sched.NewTicker()

	ticks := 0
	completed := false
	ticker.Start(time.Second, func(float64) { ticks++ }, func() { completed = true })
	clock.Advance(100 * time.Millisecond)
	sched.Step()
	require.Equal(t, 1, ticks)

	ticker.Cancel()
	assert.Equal(t, Idle, ticker.State())
	assert.Equal(t, 0, sched.Active())

	clock.Advance(5 * time.Second)
	sched.Step()
	assert.Equal(t, 1, ticks)
	assert.False(t, completed)

	// Cancelling twice is harmless.
	ticker.Cancel()
}

func TestTickerCancelledDuringSameStep(t *testing.T) {
	clock := NewFakeClock()
	sched := NewScheduler(clock)
	first := sched.NewTicker()
	second := sched.NewTicker()

	secondTicks := 0
	first.Start(time.Second, func(float64) { second.Cancel() }, nil)
	second.Start(time.Second, func(float64) { secondTicks++ }, nil)

	clock.Advance(100 * time.Millisecond)
	sched.Step()

	assert.Equal(t, 0, secondTicks)
	assert.Equal(t, 1, sched.Active())
}

func TestTickerRestartFromCompletion(t *testing.T) {
	clock := NewFakeClock()
	sched := NewScheduler(clock)
	ticker := sched.NewTicker()

	runs := 0
	var onComplete func()
	onComplete = func() {
		runs++
		if runs < 3 {
			ticker.Start(time.Second, nil, onComplete)
		}
	}
	ticker.Start(time.Second, nil, onComplete)

	for range 5 {
		clock.Advance(time.Second)
		sched.Step()
	}

	assert.Equal(t, 3, runs)
	assert.Equal(t, Idle, ticker.State())
}

func TestTickerRestartInsideTickSkipsCompletion(t *testing.T) {
	clock := NewFakeClock()
	sched := NewScheduler(clock)
	ticker := sched.NewTicker()

	completed := 0
	restarted := false
	ticker.Start(time.Second, func(p float64) {
		if p == 1 && !restarted {
			restarted = true
			ticker.Start(time.Second, nil, func() { completed++ })
		}
	}, func() { completed += 100 })

	clock.Advance(time.Second)
	sched.Step()
	assert.Equal(t, 0, completed)
	assert.Equal(t, Running, ticker.State())

	clock.Advance(time.Second)
	sched.Step()
	assert.Equal(t, 1, completed)
}

func TestTickerProgressIsMonotonic(t *testing.T) {
	clock := NewFakeClock()
	sched := NewScheduler(clock)
	ticker := sched.NewTicker()
	ticker.Curve = func(p float64) float64 {
		// Dips halfway through.
		if p > 0.5 && p < 1 {
			return p - 0.3
		}
		return p
	}

	var got []float64
	ticker.Start(time.Second, func(p float64) { got = append(got, p) }, nil)
	for range 10 {
		clock.Advance(100 * time.Millisecond)
		sched.Step()
	}

	require.NotEmpty(t, got)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i], got[i-1])
	}
	assert.Equal(t, 1.0, got[len(got)-1])
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "State(7)", State(7).String())
}
