package chart

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveGeometry(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		stroke        float64
		want          Geometry
	}{
		{
			name:  "landscape",
			width: 300, height: 200, stroke: 5,
			want: Geometry{
				Center: Point{X: 150, Y: 100},
				Radius: 97.5,
				Oval:   Rect{Left: 52.5, Top: 2.5, Right: 247.5, Bottom: 197.5},
			},
		},
		{
			name:  "portrait",
			width: 100, height: 400, stroke: 10,
			want: Geometry{
				Center: Point{X: 50, Y: 200},
				Radius: 45,
				Oval:   Rect{Left: 5, Top: 155, Right: 95, Bottom: 245},
			},
		},
		{
			name:  "zero bounds",
			width: 0, height: 0, stroke: 4,
			want: Geometry{
				Radius: -2,
				Oval:   Rect{Left: 2, Top: 2, Right: -2, Bottom: -2},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveGeometry(tt.width, tt.height, tt.stroke)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, Point{X: tt.want.Center.X, Y: tt.want.Center.Y - tt.want.Radius}, got.Apex())
		})
	}
}

func TestRectHelpers(t *testing.T) {
	r := Rect{Left: 10, Top: 20, Right: 50, Bottom: 100}
	assert.Equal(t, 40.0, r.Width())
	assert.Equal(t, 80.0, r.Height())
	assert.Equal(t, Point{X: 30, Y: 60}, r.Center())
}

func TestRandomColorIsOpaque(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for range 1000 {
		c := RandomColor(rng)
		assert.Equal(t, uint8(0xFF), c.A)
	}
}

func TestPaletteAt(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	p := Palette{red, nil, blue}

	assert.Equal(t, red, p.At(0, rng))
	assert.Equal(t, blue, p.At(2, rng))
	assert.NotNil(t, p.At(1, rng))
	assert.NotNil(t, p.At(3, rng))
	assert.NotNil(t, p.At(-1, rng))
}
