// Package style reads the chart's styling attributes from a YAML resource
// and resolves them into a chart.Style.
//
// A resource looks like:
//
//	text_size: 20      # density units
//	stroke_width: 5    # density units
//	text_color: "#212121"
//	color1: "#FFE53935"
//	color2: teal
//
// Sizes are multiplied by the display density. Any color slot left unset gets
// an independently generated random opaque color when the style is resolved.
package style

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/statsview/internal/chart"
)

const (
	// DefaultTextSize is the label size in density units.
	DefaultTextSize = 20
	// DefaultStrokeWidth is the ring stroke width in density units.
	DefaultStrokeWidth = 5
)

// Attributes are the raw styling attributes. Nil sizes and empty colors are
// unset.
type Attributes struct {
	TextSize    *float64 `yaml:"text_size"`
	StrokeWidth *float64 `yaml:"stroke_width"`
	TextColor   string   `yaml:"text_color"`
	Color1      string   `yaml:"color1"`
	Color2      string   `yaml:"color2"`
	Color3      string   `yaml:"color3"`
	Color4      string   `yaml:"color4"`
}

// Parse decodes attributes from a YAML document. An empty document yields
// unset attributes.
func Parse(data []byte) (Attributes, error) {
	var attrs Attributes
	if err := yaml.Unmarshal(data, &attrs); err != nil {
		return Attributes{}, fmt.Errorf("parse style: %w", err)
	}
	return attrs, nil
}

// Load reads attributes from a YAML file.
func Load(path string) (Attributes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Attributes{}, fmt.Errorf("read style: %w", err)
	}
	return Parse(data)
}

// Resolve turns attributes into a chart style. density scales sizes; a
// non-positive density means 1. rng supplies the colors of unset slots.
func Resolve(attrs Attributes, density float64, rng *rand.Rand) (chart.Style, error) {
	if density <= 0 {
		density = 1
	}

	s := chart.Style{
		TextSize:    DefaultTextSize * density,
		StrokeWidth: DefaultStrokeWidth * density,
		TextColor:   color.Black,
		Palette:     make(chart.Palette, chart.PaletteSize),
	}
	if attrs.TextSize != nil {
		s.TextSize = *attrs.TextSize * density
	}
	if attrs.StrokeWidth != nil {
		s.StrokeWidth = *attrs.StrokeWidth * density
	}
	if attrs.TextColor != "" {
		c, err := ParseColor(attrs.TextColor)
		if err != nil {
			return chart.Style{}, fmt.Errorf("text_color: %w", err)
		}
		s.TextColor = c
	}

	slots := [chart.PaletteSize]string{attrs.Color1, attrs.Color2, attrs.Color3, attrs.Color4}
	var errs []error
	for i, raw := range slots {
		if raw == "" {
			s.Palette[i] = chart.RandomColor(rng)
			continue
		}
		c, err := ParseColor(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("color%d: %w", i+1, err))
			continue
		}
		s.Palette[i] = c
	}
	if err := errors.Join(errs...); err != nil {
		return chart.Style{}, err
	}
	return s, nil
}
