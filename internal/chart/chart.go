// Package chart implements the animated ring chart widget.
//
// A PieChart draws one stroked arc per value, proportional to the value's
// share of the total, starting at 12 o'clock and going clockwise. Assigning
// data with SetData restarts a 2.5 second linear reveal: every segment's sweep
// grows with the animation progress while segment start positions stay fixed.
//
// The widget is driven by its host on a single goroutine:
//
//	c := chart.New(style, sched, chart.WithInvalidate(markDirty))
//	c.SetData([]float64{500, 500, 500, 500})
//
//	// on resize
//	c.OnBoundsChanged(w, h)
//	// every frame
//	sched.Step()
//	c.OnDraw(canvas)
package chart

import (
	"fmt"
	"image/color"
	"math/rand"
	"slices"
	"time"

	"github.com/iburimskiy/statsview/internal/anim"
)

const (
	// AnimDuration is the length of the reveal animation.
	AnimDuration = 2500 * time.Millisecond

	// StartAngle is 12 o'clock.
	StartAngle = -90.0

	// ClosingSweep is the length of the arc that caps the ring after the last
	// segment.
	ClosingSweep = 1.0
)

// Style is the immutable look of a chart, resolved once by the host.
type Style struct {
	TextSize    float64
	StrokeWidth float64
	TextColor   color.Color
	Palette     Palette
}

// Option customizes a PieChart.
type Option func(c *PieChart)

// WithRand sets the random source for fallback colors.
// If rng is nil, this option is a no-op.
func WithRand(rng *rand.Rand) Option {
	return func(c *PieChart) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// WithSeed seeds a new random source for fallback colors.
func WithSeed(seed int64) Option {
	return func(c *PieChart) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithInvalidate sets the callback used to request a redraw. The host may
// coalesce requests.
func WithInvalidate(fn func()) Option {
	return func(c *PieChart) {
		c.invalidate = fn
	}
}

// PieChart is the animated ring chart widget.
type PieChart struct {
	style      Style
	tickers    anim.TickerProvider
	rng        *rand.Rand
	invalidate func()

	data     []float64
	geometry Geometry
	progress float64
	ticker   *anim.Ticker

	startListeners map[int]func()
	endListeners   map[int]func()
	nextListenerID int
}

// New creates a chart with no data. Animation runs are created from tickers.
func New(style Style, tickers anim.TickerProvider, opts ...Option) *PieChart {
	c := &PieChart{
		style:          style,
		tickers:        tickers,
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
		startListeners: make(map[int]func()),
		endListeners:   make(map[int]func()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetData replaces the value series. As a side effect it cancels any running
// reveal, resets progress to 0 and starts a new run.
func (c *PieChart) SetData(values []float64) {
	c.data = slices.Clone(values)
	c.restart()
}

// Data returns a copy of the current value series.
func (c *PieChart) Data() []float64 {
	return slices.Clone(c.data)
}

// Style returns the chart style.
func (c *PieChart) Style() Style {
	return c.style
}

// Progress returns the reveal progress in [0, 1].
func (c *PieChart) Progress() float64 {
	return c.progress
}

// Animating reports whether a reveal run is in flight.
func (c *PieChart) Animating() bool {
	return c.ticker != nil && c.ticker.State() == anim.Running
}

// Geometry returns the layout computed by the last OnBoundsChanged.
func (c *PieChart) Geometry() Geometry {
	return c.geometry
}

// OnAnimationStart registers fn to run whenever a reveal run starts.
// Returns an unsubscribe function.
func (c *PieChart) OnAnimationStart(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.startListeners[id] = fn
	return func() {
		delete(c.startListeners, id)
	}
}

// OnAnimationEnd registers fn to run whenever a reveal run completes.
// Cancelled runs do not notify. Returns an unsubscribe function.
func (c *PieChart) OnAnimationEnd(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.endListeners[id] = fn
	return func() {
		delete(c.endListeners, id)
	}
}

// OnBoundsChanged recomputes the ring geometry for the new widget size.
func (c *PieChart) OnBoundsChanged(width, height float64) {
	c.geometry = ResolveGeometry(width, height, c.style.StrokeWidth)
}

// OnDraw paints the segments, the closing cap and the percentage label.
// An empty series draws nothing.
func (c *PieChart) OnDraw(canvas Canvas) {
	if len(c.data) == 0 {
		return
	}

	total := Sum(c.data)
	norm := NormFactor(total)
	oval := c.geometry.Oval
	apex := c.geometry.Apex()

	paint := Paint{StrokeWidth: c.style.StrokeWidth}
	start := StartAngle
	for i, value := range c.data {
		angle := 360 * value * norm
		paint.Color = c.style.Palette.At(i, c.rng)
		canvas.DrawArc(oval, start, angle*c.progress, paint)
		start += angle
		if c.progress == 1 {
			canvas.DrawPoint(apex.X, apex.Y, paint)
		}
	}

	paint.Color = c.style.Palette.At(0, c.rng)
	canvas.DrawArc(oval, start, ClosingSweep, paint)

	canvas.DrawText(Label(c.data), c.geometry.Center.X, c.geometry.Center.Y+c.style.TextSize/4, Paint{
		Color:    c.textColor(),
		TextSize: c.style.TextSize,
	})
}

func (c *PieChart) textColor() color.Color {
	if c.style.TextColor == nil {
		return color.Black
	}
	return c.style.TextColor
}

func (c *PieChart) restart() {
	if c.ticker != nil {
		c.ticker.Cancel()
	}
	c.progress = 0
	c.requestRedraw()

	c.ticker = c.tickers.NewTicker()
	c.ticker.Start(AnimDuration, func(progress float64) {
		c.progress = progress
		c.requestRedraw()
	}, func() {
		for _, fn := range c.endListeners {
			fn()
		}
	})
	for _, fn := range c.startListeners {
		fn()
	}
}

func (c *PieChart) requestRedraw() {
	if c.invalidate != nil {
		c.invalidate()
	}
}

// Sum returns the total of values.
func Sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// NormFactor returns the factor that turns a value into its share of total.
// Totals below 1 are not amplified: the factor is 1 and the ring stays open.
func NormFactor(total float64) float64 {
	if total < 1 {
		return 1
	}
	return 1 / total
}

// SegmentAngles returns the full, un-animated sweep of every segment in
// degrees.
func SegmentAngles(values []float64) []float64 {
	norm := NormFactor(Sum(values))
	angles := make([]float64, len(values))
	for i, v := range values {
		angles[i] = 360 * v * norm
	}
	return angles
}

// Label returns the center label text, the normalized total as a percentage
// with two decimals.
func Label(values []float64) string {
	total := Sum(values)
	return fmt.Sprintf("%.2f%%", total*100*NormFactor(total))
}
