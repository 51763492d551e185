package chart

import (
	"image/color"
	"math/rand"
)

// PaletteSize is the number of configurable segment colors.
const PaletteSize = 4

// Palette holds the segment colors in order. Nil entries are unset slots.
type Palette []color.Color

// At returns the color for segment index. Unset slots and indexes past the end
// get a freshly generated random color on every call, so an unconfigured
// segment changes color from one draw to the next.
func (p Palette) At(index int, rng *rand.Rand) color.Color {
	if index >= 0 && index < len(p) && p[index] != nil {
		return p[index]
	}
	return RandomColor(rng)
}

// RandomColor returns an opaque color with RGB drawn uniformly from
// 0x000000 to 0xFFFFFE.
func RandomColor(rng *rand.Rand) color.RGBA {
	v := rng.Int31n(0xFFFFFF)
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xFF,
	}
}
