package chart

import "image/color"

// Paint describes how a stroke or label is drawn. Strokes use round caps and
// joins.
type Paint struct {
	Color       color.Color
	StrokeWidth float64
	TextSize    float64
}

// Canvas is the drawing surface the host hands to OnDraw.
//
// Angles are in degrees with 0 at 3 o'clock and positive sweeps going
// clockwise. Implementations must tolerate a degenerate oval (zero or
// negative size) by drawing nothing.
type Canvas interface {
	// DrawArc strokes the arc of the circle inscribed in oval.
	DrawArc(oval Rect, startAngle, sweepAngle float64, paint Paint)
	// DrawPoint draws a round dot of paint.StrokeWidth diameter.
	DrawPoint(x, y float64, paint Paint)
	// DrawText draws text horizontally centered at x with its baseline at y.
	DrawText(text string, x, y float64, paint Paint)
}
