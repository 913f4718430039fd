package config

import (
	"fmt"
	"image/color"
	"log"

	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed stacks.yaml
var stacksYAML []byte

// StackDef describes how one sprite type's layer stack is loaded and drawn.
// Values omitted in the YAML fall back to the global Shadow/Outline defaults
// at lookup time.
type StackDef struct {
	Image           string  `yaml:"image"`
	Layers          int     `yaml:"layers"`
	LayerOffset     float64 `yaml:"layer_offset"`
	LayerFilePrefix string  `yaml:"layer_file_prefix"`
	Kind            string  `yaml:"kind"` // procedural fallback: car, submarine, kelp, rock
	TiltMultiplier  float64 `yaml:"tilt_multiplier"`

	Shadow struct {
		LengthFactor float64 `yaml:"length_factor"`
	} `yaml:"shadow"`

	Outline struct {
		Enabled     bool    `yaml:"enabled"`
		Color       string  `yaml:"color"` // "#RRGGBB"
		Thickness   float32 `yaml:"thickness"`
		OffsetRatio float64 `yaml:"offset_ratio"`
	} `yaml:"outline"`
}

// Stacks maps sprite type name to its stack definition, loaded from the
// embedded stacks.yaml at startup.
var Stacks map[string]StackDef

// ParseStacks decodes stack definitions and validates the fields the loaders
// rely on.
func ParseStacks(data []byte) (map[string]StackDef, error) {
	var defs map[string]StackDef
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("parse stack definitions: %w", err)
	}
	for name, def := range defs {
		if def.Layers <= 0 {
			return nil, fmt.Errorf("stack %q: layers must be positive, got %d", name, def.Layers)
		}
		if def.LayerOffset < 0 {
			return nil, fmt.Errorf("stack %q: layer_offset must not be negative", name)
		}
	}
	return defs, nil
}

// Stack returns the definition for the named sprite type; unknown names fall
// back to a small generic stack so a typo degrades to placeholder art instead
// of a crash.
func Stack(name string) StackDef {
	if def, ok := Stacks[name]; ok {
		return def
	}
	log.Printf("Warning: no stack definition for %q, using generic placeholder", name)
	return StackDef{Layers: 8, LayerOffset: 1}
}

// HexColor parses "#RRGGBB"; empty or malformed strings return the fallback.
func HexColor(s string, fallback color.NRGBA) color.NRGBA {
	if len(s) != 7 || s[0] != '#' {
		return fallback
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return fallback
	}
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func init() {
	defs, err := ParseStacks(stacksYAML)
	if err != nil {
		log.Fatal(err)
	}
	Stacks = defs
}
