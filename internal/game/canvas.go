package game

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/statsview/internal/chart"
)

var (
	whiteImage = ebiten.NewImage(3, 3)

	// whiteSubImage is a single opaque pixel used as the triangle source.
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// ebitenCanvas implements chart.Canvas on top of an ebiten image.
type ebitenCanvas struct {
	dst      *ebiten.Image
	font     *text.GoTextFaceSource
	vertices []ebiten.Vertex
	indices  []uint16
}

func newEbitenCanvas() (*ebitenCanvas, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load label font: %w", err)
	}
	return &ebitenCanvas{font: src}, nil
}

func (c *ebitenCanvas) setTarget(dst *ebiten.Image) {
	c.dst = dst
}

func (c *ebitenCanvas) DrawArc(oval chart.Rect, startAngle, sweepAngle float64, paint chart.Paint) {
	radius := oval.Width() / 2
	if c.dst == nil || radius <= 0 || sweepAngle == 0 || paint.StrokeWidth <= 0 {
		return
	}
	sweepAngle = math.Max(-360, math.Min(360, sweepAngle))

	center := oval.Center()
	start := startAngle * math.Pi / 180
	end := (startAngle + sweepAngle) * math.Pi / 180
	dir := vector.Clockwise
	if sweepAngle < 0 {
		dir = vector.CounterClockwise
	}

	var path vector.Path
	path.MoveTo(float32(center.X+radius*math.Cos(start)), float32(center.Y+radius*math.Sin(start)))
	path.Arc(float32(center.X), float32(center.Y), float32(radius), float32(start), float32(end), dir)

	c.vertices, c.indices = path.AppendVerticesAndIndicesForStroke(c.vertices[:0], c.indices[:0], &vector.StrokeOptions{
		Width:    float32(paint.StrokeWidth),
		LineCap:  vector.LineCapRound,
		LineJoin: vector.LineJoinRound,
	})

	r, g, b, a := paint.Color.RGBA()
	for i := range c.vertices {
		c.vertices[i].SrcX = 1
		c.vertices[i].SrcY = 1
		c.vertices[i].ColorR = float32(r) / 0xffff
		c.vertices[i].ColorG = float32(g) / 0xffff
		c.vertices[i].ColorB = float32(b) / 0xffff
		c.vertices[i].ColorA = float32(a) / 0xffff
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	c.dst.DrawTriangles(c.vertices, c.indices, whiteSubImage, op)
}

func (c *ebitenCanvas) DrawPoint(x, y float64, paint chart.Paint) {
	if c.dst == nil || paint.StrokeWidth <= 0 {
		return
	}
	vector.DrawFilledCircle(c.dst, float32(x), float32(y), float32(paint.StrokeWidth/2), paint.Color, true)
}

func (c *ebitenCanvas) DrawText(s string, x, y float64, paint chart.Paint) {
	if c.dst == nil || paint.TextSize <= 0 {
		return
	}
	face := &text.GoTextFace{Source: c.font, Size: paint.TextSize}

	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	// y is the baseline; text/v2 positions the top of the line.
	op.GeoM.Translate(x, y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(paint.Color)
	text.Draw(c.dst, s, face, op)
}
