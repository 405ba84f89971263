package config

import (
	_ "embed"
)

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

//go:embed defaults/compact.yaml
var defaultCompactYAML []byte

// Variant names selectable on the command line.
const (
	VariantClassic = "classic"
	VariantCompact = "compact"
)

// Default returns the classic configuration, built in code as a fallback
// for when the embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Canvas: Canvas{Width: 600, Height: 800},
		Tick:   Tick{IntervalMS: 10},
		Frog:   Frog{StartX: 280, StartY: 740, Width: 40, Height: 40, Step: 60},
		Goal:   Zone{X: 0, Y: 40, Width: 600, Height: 60},
		Water:  Band{Top: 100, Bottom: 400},
		Logs: []Lane{
			{X: 0, Y: 100, Width: 180, Height: 40, Speed: 2},
			{X: 250, Y: 160, Width: 150, Height: 40, Speed: -3},
			{X: 100, Y: 220, Width: 200, Height: 40, Speed: 2},
			{X: 350, Y: 280, Width: 150, Height: 40, Speed: -2},
			{X: 50, Y: 340, Width: 180, Height: 40, Speed: 3},
		},
		Cars: []Lane{
			{X: 0, Y: 450, Width: 130, Height: 50, Speed: 3},
			{X: 300, Y: 510, Width: 110, Height: 50, Speed: -4},
			{X: 400, Y: 570, Width: 130, Height: 50, Speed: 3},
			{X: 150, Y: 630, Width: 110, Height: 50, Speed: -3},
			{X: 500, Y: 690, Width: 90, Height: 50, Speed: 4},
		},
		Policies: Policies{
			InclusiveOverlap: false,
			Wrap:             WrapGradual,
			Collision:        CollidePostAdvance,
			Restart:          true,
		},
	}
}

// defaultYAML returns the embedded default YAML for a variant, or nil for an
// unknown variant.
func defaultYAML(variant string) []byte {
	switch variant {
	case VariantClassic, "":
		return defaultClassicYAML
	case VariantCompact:
		return defaultCompactYAML
	default:
		return nil
	}
}
