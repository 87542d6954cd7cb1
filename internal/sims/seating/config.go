package seating

import "strconv"

// Config controls the seating simulation when driven through the registry.
type Config struct {
	// Input is a layout file. When empty a random layout is generated.
	Input string
	Rule  string

	Width      int
	Height     int
	SeatChance float64
	Seed       int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Rule:       "adjacent",
		Width:      96,
		Height:     96,
		SeatChance: 0.7,
		Seed:       42,
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
	if v, ok := cfg["seat_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.SeatChance = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
