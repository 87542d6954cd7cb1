package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim   string
	Input string
	Rule  string
	Dims  int
	Scale int
	TPS   int
	// GPS is the number of generations per second, independent of TPS.
	GPS  int
	Seed int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "seating", Scale: 6, TPS: 60, GPS: 8, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.StringVar(&c.Input, "input", c.Input, "layout or seed pattern file")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule override (seating: adjacent|los, lattices: B/S notation)")
	fs.IntVar(&c.Dims, "dims", c.Dims, "lattice dimensions (0 keeps the sim default)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.GPS, "gps", c.GPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
}

// SimConfig converts the set options into a factory configuration map.
func (c *Config) SimConfig() map[string]string {
	m := map[string]string{"seed": strconv.FormatInt(c.Seed, 10)}
	if c.Input != "" {
		m["input"] = c.Input
	}
	if c.Rule != "" {
		m["rule"] = c.Rule
	}
	if c.Dims > 0 {
		m["dims"] = strconv.Itoa(c.Dims)
	}
	return m
}
