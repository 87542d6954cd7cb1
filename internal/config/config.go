// Package config loads the YAML run file used by the headless runner.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"lattice-ca/internal/lattice"
	"lattice-ca/internal/sims/seating"
)

// ErrInvalid marks a run configuration that cannot be executed.
var ErrInvalid = errors.New("config: invalid")

// Simulation kinds understood by the runner.
const (
	SimSeating = "seating"
	SimCubes   = "cubes"
)

// File is one run of either the seating loop or a lattice automaton.
type File struct {
	Sim   string `yaml:"sim"`
	Input string `yaml:"input"`
	// Rule is a seating rule name ("adjacent", "los") or, for cubes, B/S
	// notation. Birth and Survive take precedence over a cubes Rule.
	Rule           string `yaml:"rule"`
	Dims           int    `yaml:"dims"`
	Generations    int    `yaml:"generations"`
	MaxGenerations int    `yaml:"max_generations"`
	Birth          []int  `yaml:"birth"`
	Survive        []int  `yaml:"survive"`

	Chart     string `yaml:"chart"`
	Print     bool   `yaml:"print"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Default returns the configuration used when neither file nor flags say
// otherwise.
func Default() File {
	return File{
		Sim:         SimSeating,
		Dims:        3,
		Generations: 6,
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// Load reads path on top of Default.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	f, err := Parse(bytes.NewReader(data))
	if err != nil {
		return File{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes YAML from r on top of Default. Unknown keys are rejected.
func Parse(r io.Reader) (File, error) {
	f := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("decode: %w", err)
	}
	return f, nil
}

// Overrides holds values given on the command line. A nil field was not
// given and leaves the file value alone; a non-nil zero value still applies.
type Overrides struct {
	Sim            *string
	Input          *string
	Rule           *string
	Dims           *int
	Generations    *int
	MaxGenerations *int
	Birth          []int
	Survive        []int
	Chart          *string
	Print          *bool
	LogLevel       *string
	LogFormat      *string
}

// Merge returns f with every set field of o applied.
func (f File) Merge(o Overrides) File {
	setString(&f.Sim, o.Sim)
	setString(&f.Input, o.Input)
	setString(&f.Rule, o.Rule)
	setInt(&f.Dims, o.Dims)
	setInt(&f.Generations, o.Generations)
	setInt(&f.MaxGenerations, o.MaxGenerations)
	if o.Birth != nil {
		f.Birth = o.Birth
	}
	if o.Survive != nil {
		f.Survive = o.Survive
	}
	setString(&f.Chart, o.Chart)
	if o.Print != nil {
		f.Print = *o.Print
	}
	setString(&f.LogLevel, o.LogLevel)
	setString(&f.LogFormat, o.LogFormat)
	return f
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

// SeatingRule resolves the seating rule.
func (f File) SeatingRule() (seating.Rule, error) {
	return seating.RuleByName(f.Rule)
}

// LatticeRule resolves the lattice rule: explicit Birth/Survive lists, then
// B/S notation in Rule, then Conway's B3/S23.
func (f File) LatticeRule() (lattice.Rule, error) {
	if f.Birth != nil || f.Survive != nil {
		r := lattice.Rule{Birth: f.Birth, Survive: f.Survive}
		return r, r.Validate()
	}
	if f.Rule != "" {
		return lattice.ParseRule(f.Rule)
	}
	return lattice.Conway(), nil
}

// Validate reports every problem found, joined, each wrapping ErrInvalid.
func (f File) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	switch f.Sim {
	case SimSeating:
		if _, err := f.SeatingRule(); err != nil {
			bad("rule: %v", err)
		}
		if f.MaxGenerations < 0 {
			bad("max_generations must not be negative, got %d", f.MaxGenerations)
		}
	case SimCubes:
		if f.Dims < 2 || f.Dims > lattice.MaxDims {
			bad("dims must be within 2..%d, got %d", lattice.MaxDims, f.Dims)
		}
		if f.Generations < 0 {
			bad("generations must not be negative, got %d", f.Generations)
		}
		if _, err := f.LatticeRule(); err != nil {
			bad("rule: %v", err)
		}
	default:
		bad("unknown sim %q (want %s or %s)", f.Sim, SimSeating, SimCubes)
	}

	if _, err := ParseLevel(f.LogLevel); err != nil {
		bad("log_level must be debug, info, warn or error, got %q", f.LogLevel)
	}
	if _, err := ParseFormat(f.LogFormat); err != nil {
		bad("log_format must be text or json, got %q", f.LogFormat)
	}
	return errors.Join(errs...)
}

// Log output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ParseLevel maps a log_level value to its slog level. Case is ignored.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: log level %q", ErrInvalid, s)
}

// ParseFormat normalises a log_format value.
func ParseFormat(s string) (string, error) {
	switch f := strings.ToLower(s); f {
	case FormatText, FormatJSON:
		return f, nil
	}
	return FormatText, fmt.Errorf("%w: log format %q", ErrInvalid, s)
}
