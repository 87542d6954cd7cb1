package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"lattice-ca/internal/config"
	"lattice-ca/internal/core"
	"lattice-ca/internal/lattice"
	"lattice-ca/internal/report"
	"lattice-ca/internal/sims/cubes"
	"lattice-ca/internal/sims/seating"
)

// Result summarises a headless run.
type Result struct {
	RunID string
	Sim   string
	// Value is the final statistic: occupied seats or active cubes.
	Value       int
	Generations int
	History     []int
	// Final is the rendered last state. For lattices it is the plane
	// through the origin.
	Final string
}

// Runner executes one configured run without a window.
type Runner struct {
	cfg    config.File
	in     io.Reader
	outW   io.Writer
	logger *slog.Logger
	runID  string
}

// NewRunner prepares a run. in is read when cfg.Input is empty; results go to
// outW and logs to logW.
func NewRunner(cfg config.File, in io.Reader, outW, logW io.Writer) *Runner {
	runID := uuid.NewString()
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW).
		With("run_id", runID)
	return &Runner{cfg: cfg, in: in, outW: outW, logger: logger, runID: runID}
}

// RunID returns the identifier attached to every log line of this run.
func (r *Runner) RunID() string { return r.runID }

// Run validates the configuration, executes it and prints the final
// statistic to the output writer.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	if err := r.cfg.Validate(); err != nil {
		return Result{}, err
	}
	r.logger.Info("Run starting.", "sim", r.cfg.Sim, "input", r.cfg.Input)

	in, closeIn, err := r.input()
	if err != nil {
		return Result{}, err
	}
	defer closeIn()

	var res Result
	switch r.cfg.Sim {
	case config.SimSeating:
		res, err = r.runSeating(ctx, in)
	case config.SimCubes:
		res, err = r.runCubes(ctx, in)
	}
	if err != nil {
		r.logger.Error("Run failed.", "error", err)
		return res, err
	}
	res.RunID = r.runID
	res.Sim = r.cfg.Sim

	if r.cfg.Print {
		fmt.Fprint(r.outW, res.Final)
	}
	fmt.Fprintln(r.outW, res.Value)

	if r.cfg.Chart != "" {
		if err := r.writeChart(res); err != nil {
			return res, err
		}
	}
	r.logger.Info("Run finished.", "value", res.Value, "generations", res.Generations)
	return res, nil
}

func (r *Runner) input() (io.Reader, func(), error) {
	if r.cfg.Input == "" {
		return r.in, func() {}, nil
	}
	f, err := os.Open(r.cfg.Input)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return f, func() { f.Close() }, nil
}

func (r *Runner) runSeating(ctx context.Context, in io.Reader) (Result, error) {
	rule, err := r.cfg.SeatingRule()
	if err != nil {
		return Result{}, err
	}
	g, err := core.FromReader(in, seating.DecodeSeat)
	if err != nil {
		return Result{}, fmt.Errorf("parse layout: %w", err)
	}
	r.logger.Debug("Layout parsed.", "w", g.W(), "h", g.H(), "rule", rule.Name)

	out, err := seating.Settle(g, rule,
		seating.WithMaxGenerations(r.cfg.MaxGenerations),
		seating.WithObserver(func(gen, occupied int) {
			r.logger.Debug("Generation.", "gen", gen, "occupied", occupied)
		}),
	)
	res := Result{Value: out.Occupied, Generations: out.Generations, History: out.History}
	if out.Final != nil {
		res.Final = out.Final.String()
	}
	if err != nil {
		return res, err
	}
	return res, ctx.Err()
}

func (r *Runner) runCubes(ctx context.Context, in io.Reader) (Result, error) {
	rule, err := r.cfg.LatticeRule()
	if err != nil {
		return Result{}, err
	}
	g, err := core.FromReader(in, cubes.DecodeCube)
	if err != nil {
		return Result{}, fmt.Errorf("parse seed: %w", err)
	}
	l, err := cubes.Seed(g, r.cfg.Dims, rule)
	if err != nil {
		return Result{}, err
	}
	r.logger.Debug("Seed parsed.", "w", g.W(), "h", g.H(), "dims", r.cfg.Dims, "rule", rule.String())

	history := []int{l.Len()}
	for gen := 1; gen <= r.cfg.Generations; gen++ {
		if err := ctx.Err(); err != nil {
			return Result{Value: l.Len(), Generations: gen - 1, History: history}, err
		}
		l = l.Step()
		history = append(history, l.Len())
		r.logger.Debug("Generation.", "gen", gen, "active", l.Len())
	}
	plane, _ := lattice.Plane(l, lattice.Point{}, cubes.Active)
	return Result{
		Value:       l.Len(),
		Generations: r.cfg.Generations,
		History:     history,
		Final:       plane.String(),
	}, nil
}

func (r *Runner) writeChart(res Result) error {
	f, err := os.Create(r.cfg.Chart)
	if err != nil {
		return fmt.Errorf("create chart: %w", err)
	}
	title := r.cfg.Sim
	if r.cfg.Sim == config.SimCubes {
		title = fmt.Sprintf("%s %dd", r.cfg.Sim, r.cfg.Dims)
	}
	if err := report.WriteChart(f, title, "run "+r.runID, res.History); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close chart: %w", err)
	}
	r.logger.Info("Chart written.", "path", r.cfg.Chart)
	return nil
}
