// Package anim provides the frame-stepped timing primitives behind the chart
// reveal animation.
//
// A [Scheduler] is driven by the host's frame loop: call [Scheduler.Step] once
// per frame (from ebiten's Update) and every running [Ticker] receives the
// progress of its run as a fraction in [0, 1].
//
//	sched := anim.NewScheduler(nil)
//	t := sched.NewTicker()
//	t.Start(2500*time.Millisecond, func(p float64) {
//	    progress = p
//	}, func() {
//	    log.Println("done")
//	})
//
//	// In Update
//	sched.Step()
//
// Everything runs on one goroutine; nothing here takes locks.
package anim

import (
	"fmt"
	"slices"
	"time"
)

// State is the run state of a Ticker.
type State int

const (
	// Idle means no run is in flight.
	Idle State = iota
	// Running means the ticker is registered and receives steps.
	Running
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// TickerProvider creates tickers.
type TickerProvider interface {
	NewTicker() *Ticker
}

// Scheduler advances running tickers once per frame.
type Scheduler struct {
	clock   Clock
	tickers []*Ticker
}

// NewScheduler creates a scheduler reading time from clock. A nil clock means
// SystemClock.
func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Scheduler{clock: clock}
}

// NewTicker creates an idle ticker bound to this scheduler.
func (s *Scheduler) NewTicker() *Ticker {
	return &Ticker{scheduler: s, Curve: LinearCurve}
}

// Active returns the number of running tickers.
func (s *Scheduler) Active() int {
	return len(s.tickers)
}

// Step advances all running tickers to the clock's current time.
// This should be called once per frame from the host loop.
func (s *Scheduler) Step() {
	if len(s.tickers) == 0 {
		return
	}
	now := s.clock.Now()
	// Callbacks may start or cancel tickers; iterate over a copy.
	for _, t := range slices.Clone(s.tickers) {
		if t.state == Running {
			t.step(now)
		}
	}
}

func (s *Scheduler) add(t *Ticker) {
	if !slices.Contains(s.tickers, t) {
		s.tickers = append(s.tickers, t)
	}
}

func (s *Scheduler) remove(t *Ticker) {
	s.tickers = slices.DeleteFunc(s.tickers, func(other *Ticker) bool {
		return other == t
	})
}

// Ticker runs a single timed progression from 0 to 1.
//
// A ticker reports progress through the onTick callback passed to Start and
// calls onComplete once after the final tick. Cancel detaches both callbacks
// synchronously, so a cancelled run never reports again.
type Ticker struct {
	// Curve transforms linear progress. Nil means linear.
	Curve func(float64) float64

	scheduler  *Scheduler
	state      State
	start      time.Time
	duration   time.Duration
	onTick     func(progress float64)
	onComplete func()
	last       float64
	ticks      int
	generation int
}

// Start begins a new run lasting duration. Any run already in flight is
// cancelled first. A zero or negative duration completes on the next step.
func (t *Ticker) Start(duration time.Duration, onTick func(progress float64), onComplete func()) {
	t.Cancel()
	t.duration = duration
	t.onTick = onTick
	t.onComplete = onComplete
	t.last = 0
	t.ticks = 0
	t.start = t.scheduler.clock.Now()
	t.state = Running
	t.scheduler.add(t)
}

// Cancel stops the current run and detaches its callbacks. It is safe to call
// on an idle ticker.
func (t *Ticker) Cancel() {
	t.generation++
	t.detach()
}

// State returns whether a run is in flight.
func (t *Ticker) State() State {
	return t.state
}

// Progress returns the last progress value delivered to onTick.
func (t *Ticker) Progress() float64 {
	return t.last
}

// Ticks returns the number of ticks delivered in the current or last run.
func (t *Ticker) Ticks() int {
	return t.ticks
}

func (t *Ticker) detach() {
	t.state = Idle
	t.onTick = nil
	t.onComplete = nil
	t.scheduler.remove(t)
}

func (t *Ticker) step(now time.Time) {
	progress := 1.0
	if t.duration > 0 {
		progress = clamp01(float64(now.Sub(t.start)) / float64(t.duration))
	}
	value := progress
	if t.Curve != nil {
		value = t.Curve(progress)
	}
	if value < t.last {
		value = t.last
	}
	t.last = value
	t.ticks++

	onTick, onComplete := t.onTick, t.onComplete
	generation := t.generation
	done := progress >= 1
	if done {
		// Unregister before the callbacks run so they may restart this ticker.
		t.detach()
	}
	if onTick != nil {
		onTick(value)
	}
	if done && onComplete != nil && t.generation == generation {
		onComplete()
	}
}
