package cubes

import "strconv"

// Config controls a lattice simulation driven through the registry.
type Config struct {
	// Input is a seed pattern file. When empty a random patch is generated.
	Input string
	Dims  int
	Rule  string

	// Width and Height size the viewport onto the x/y plane.
	Width  int
	Height int

	Patch   int
	Density float64
	Seed    int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Dims:    3,
		Rule:    "B3/S23",
		Width:   64,
		Height:  64,
		Patch:   8,
		Density: 0.4,
		Seed:    17,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["input"]; ok {
		c.Input = v
	}
	if v, ok := cfg["rule"]; ok && v != "" {
		c.Rule = v
	}
	if v, ok := cfg["dims"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Dims = parsed
		}
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["patch"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Patch = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
