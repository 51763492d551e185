package style

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrUnknownColor is returned for a color that is neither hex nor a known name.
var ErrUnknownColor = errors.New("unknown color")

var namedColors = map[string]color.RGBA{
	"black":     {A: 0xFF},
	"white":     {R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	"red":       {R: 0xFF, A: 0xFF},
	"green":     {G: 0xFF, A: 0xFF},
	"blue":      {B: 0xFF, A: 0xFF},
	"yellow":    {R: 0xFF, G: 0xFF, A: 0xFF},
	"cyan":      {G: 0xFF, B: 0xFF, A: 0xFF},
	"magenta":   {R: 0xFF, B: 0xFF, A: 0xFF},
	"gray":      {R: 0x88, G: 0x88, B: 0x88, A: 0xFF},
	"darkgray":  {R: 0x44, G: 0x44, B: 0x44, A: 0xFF},
	"lightgray": {R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF},
	"orange":    {R: 0xFF, G: 0xA5, A: 0xFF},
	"purple":    {R: 0x80, B: 0x80, A: 0xFF},
	"teal":      {G: 0x80, B: 0x80, A: 0xFF},
	"navy":      {B: 0x80, A: 0xFF},
	"maroon":    {R: 0x80, A: 0xFF},
	"olive":     {R: 0x80, G: 0x80, A: 0xFF},
}

// ParseColor parses "#RRGGBB", "#AARRGGBB" or a color name. Colors with
// alpha are returned premultiplied, as image/color expects.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}

	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	if len(hex) == 6 {
		v |= 0xFF000000
	}

	nrgba := color.NRGBA{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
	return color.RGBAModel.Convert(nrgba).(color.RGBA), nil
}
