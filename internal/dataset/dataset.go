// Package dataset loads value series for the chart from YAML files.
//
// Both a bare sequence and a mapping with a "data" key are accepted:
//
//	[500, 500, 500, 500]
//
//	data:
//	  - 12.5
//	  - 40
package dataset

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNoValues is returned for a file that holds no values.
var ErrNoValues = errors.New("no values")

type document struct {
	Data []float64 `yaml:"data"`
}

// Parse decodes a value series from YAML.
func Parse(data []byte) ([]float64, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("parse values: %w", err)
	}
	if len(node.Content) == 0 {
		return nil, ErrNoValues
	}

	var values []float64
	root := node.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&values); err != nil {
			return nil, fmt.Errorf("parse values: %w", err)
		}
	case yaml.MappingNode:
		var doc document
		if err := root.Decode(&doc); err != nil {
			return nil, fmt.Errorf("parse values: %w", err)
		}
		values = doc.Data
	default:
		return nil, fmt.Errorf("parse values: expected a list or a data mapping, got %s", root.Tag)
	}
	if len(values) == 0 {
		return nil, ErrNoValues
	}
	return values, nil
}

// Load reads a value series from a YAML file.
func Load(path string) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read values: %w", err)
	}
	values, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return values, nil
}

// Random returns between 2 and 6 values in [1, 1000], rounded to whole numbers.
func Random(rng *rand.Rand) []float64 {
	n := 2 + rng.Intn(5)
	values := make([]float64, n)
	for i := range values {
		values[i] = math.Round(1 + rng.Float64()*999)
	}
	return values
}
