package chart

import "math"

// Point is a position in widget pixels.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in widget pixels.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Width returns Right - Left.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns Bottom - Top.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// Geometry is the layout of the ring inside the widget bounds.
type Geometry struct {
	Center Point
	// Radius is the radius of the stroke's center line. It is not positive
	// for degenerate bounds.
	Radius float64
	// Oval is the square inscribing the circle.
	Oval Rect
}

// ResolveGeometry computes the ring layout for a widget of the given size.
// The smaller side keeps the ring circular and half the stroke width keeps the
// stroke inside the bounds.
func ResolveGeometry(width, height, strokeWidth float64) Geometry {
	radius := math.Min(width, height)/2 - strokeWidth/2
	center := Point{X: width / 2, Y: height / 2}
	return Geometry{
		Center: center,
		Radius: radius,
		Oval: Rect{
			Left:   center.X - radius,
			Top:    center.Y - radius,
			Right:  center.X + radius,
			Bottom: center.Y + radius,
		},
	}
}

// Apex returns the 12 o'clock point on the ring.
func (g Geometry) Apex() Point {
	return Point{X: g.Center.X, Y: g.Center.Y - g.Radius}
}
