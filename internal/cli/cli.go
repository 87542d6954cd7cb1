package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"lattice-ca/internal/config"
	"lattice-ca/internal/lattice"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns the merged run
// configuration, a boolean indicating if the program should exit cleanly, or
// an ExitError.
func Parse(args []string, output io.Writer) (*config.File, bool, error) {
	flagSet := flag.NewFlagSet("settle", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
settle - run a seating layout to its fixed point or a lattice automaton for N generations.

Usage:
  settle [options] [INPUT]

Arguments:
  INPUT
    Layout or seed pattern file. Standard input is read when omitted.

Options:
`)
		flagSet.PrintDefaults()
	}

	def := config.Default()
	configFlag := flagSet.String("config", "", "Path to a YAML run file. Flags given explicitly override its values.")
	simFlag := flagSet.String("sim", def.Sim, "Simulation: 'seating' or 'cubes'.")
	ruleFlag := flagSet.String("rule", "", "Seating rule ('adjacent', 'los') or lattice rule in B/S notation.")
	dimsFlag := flagSet.Int("dims", def.Dims, "Lattice dimensions (cubes only).")
	genFlag := flagSet.Int("generations", def.Generations, "Generations to run (cubes only).")
	maxGenFlag := flagSet.Int("max-generations", 0, "Give up after this many generations (seating only). 0 is unbounded.")
	birthFlag := flagSet.String("birth", "", "Neighbour counts that activate a cube, e.g. '3' or '3,6'.")
	surviveFlag := flagSet.String("survive", "", "Neighbour counts that keep a cube active, e.g. '23'.")
	chartFlag := flagSet.String("chart", "", "Write an HTML chart of the statistic per generation to this path.")
	printFlag := flagSet.Bool("print", false, "Print the final grid before the statistic.")
	logLevelFlag := flagSet.String("log-level", def.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", def.LogFormat, "Log output format. Options: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected at most one INPUT, got %d", flagSet.NArg())}
	}

	base := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		base = loaded
	}

	var o config.Overrides
	var birthSet, surviveSet bool
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "birth":
			birthSet = true
		case "survive":
			surviveSet = true
		case "sim":
			o.Sim = simFlag
		case "rule":
			o.Rule = ruleFlag
		case "dims":
			o.Dims = dimsFlag
		case "generations":
			o.Generations = genFlag
		case "max-generations":
			o.MaxGenerations = maxGenFlag
		case "chart":
			o.Chart = chartFlag
		case "print":
			o.Print = printFlag
		case "log-level":
			o.LogLevel = logLevelFlag
		case "log-format":
			o.LogFormat = logFormatFlag
		}
	})
	if flagSet.NArg() == 1 {
		input := flagSet.Arg(0)
		o.Input = &input
	}
	var err error
	if birthSet {
		if o.Birth, err = countsFlag("birth", *birthFlag); err != nil {
			return nil, false, err
		}
	}
	if surviveSet {
		if o.Survive, err = countsFlag("survive", *surviveFlag); err != nil {
			return nil, false, err
		}
	}

	merged := base.Merge(o)
	if err := merged.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return &merged, false, nil
}

// countsFlag parses an explicitly given count list. An empty value is an
// empty list, not an unset one.
func countsFlag(name, v string) ([]int, error) {
	counts, err := lattice.ParseCounts(v)
	if err != nil {
		return nil, &ExitError{Code: 2, Message: fmt.Sprintf("invalid -%s %q: %v", name, v, err)}
	}
	return counts, nil
}
