package cubes

import (
	"fmt"
	"image/color"
	"os"

	"lattice-ca/internal/core"
	"lattice-ca/internal/lattice"
)

// Sim shows the plane through the origin of a lattice automaton. The
// viewport is fixed on reset with the seed pattern at its centre.
type Sim struct {
	name    string
	cfg     Config
	rule    lattice.Rule
	pattern *core.Grid[Cube]

	cur     *lattice.Lattice
	gen     int
	ox, oy  int
	display []uint8
}

// NewWithConfig builds a Sim named name from cfg, reading cfg.Input when set.
func NewWithConfig(name string, cfg Config) (*Sim, error) {
	rule, err := lattice.ParseRule(cfg.Rule)
	if err != nil {
		return nil, err
	}
	if cfg.Dims < 2 || cfg.Dims > lattice.MaxDims {
		return nil, fmt.Errorf("%w: %d (want 2..%d)", lattice.ErrDims, cfg.Dims, lattice.MaxDims)
	}
	s := &Sim{name: name, cfg: cfg, rule: rule}
	if cfg.Input != "" {
		pattern, err := LoadPattern(cfg.Input)
		if err != nil {
			return nil, err
		}
		s.pattern = pattern
	}
	s.display = make([]uint8, cfg.Width*cfg.Height)
	if err := s.restart(s.seedPattern(cfg.Seed)); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadPattern parses a seed pattern file.
func LoadPattern(path string) (*core.Grid[Cube], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cubes: open pattern: %w", err)
	}
	defer f.Close()
	g, err := core.FromReader(f, DecodeCube)
	if err != nil {
		return nil, fmt.Errorf("cubes: parse %s: %w", path, err)
	}
	return g, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return s.name }

// Size returns the viewport dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Cells exposes the viewport buffer, one Cube value per cell.
func (s *Sim) Cells() []uint8 { return s.display }

// Lattice returns the current generation.
func (s *Sim) Lattice() *lattice.Lattice { return s.cur }

// Generation returns the number of generations computed since the last reset.
func (s *Sim) Generation() int { return s.gen }

// Reset restores the loaded pattern, or draws a new random patch from seed
// (the configured seed when zero).
func (s *Sim) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	// The rule and dims were validated in NewWithConfig.
	_ = s.restart(s.seedPattern(seed))
}

// Step advances one generation.
func (s *Sim) Step() {
	s.cur = s.cur.Step()
	s.gen++
	s.refresh()
}

// Palette maps Cube values to display colors.
func (s *Sim) Palette() []color.RGBA {
	return []color.RGBA{
		Inactive: {R: 12, G: 14, B: 22, A: 255},
		Active:   {R: 120, G: 200, B: 255, A: 255},
	}
}

// Parameters reports the run state for the HUD.
func (s *Sim) Parameters() core.ParameterSnapshot {
	lo, hi := s.cur.Bounds()
	dims := s.cur.Dims()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Lattice",
			Params: []core.Parameter{
				core.IntParam("dims", "Dimensions", dims),
				core.StringParam("rule", "Rule", s.rule.String()),
				core.StringParam("input", "Input", s.cfg.Input),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				core.IntParam("gen", "Generation", s.gen),
				core.IntParam("active", "Active", s.cur.Len()),
				core.StringParam("lo", "Min", lo.Format(dims)),
				core.StringParam("hi", "Max", hi.Format(dims)),
			},
		},
	}}
}

func (s *Sim) seedPattern(seed int64) *core.Grid[Cube] {
	if s.pattern != nil {
		return s.pattern
	}
	density := s.cfg.Density
	return core.Fill(core.NewRNG(seed), s.cfg.Patch, s.cfg.Patch, func(r *core.RNG) Cube {
		if r.Chance(density) {
			return Active
		}
		return Inactive
	})
}

func (s *Sim) restart(pattern *core.Grid[Cube]) error {
	l, err := Seed(pattern, s.cfg.Dims, s.rule)
	if err != nil {
		return err
	}
	s.cur = l
	s.gen = 0
	s.ox = (s.cfg.Width - pattern.W()) / 2
	s.oy = (s.cfg.Height - pattern.H()) / 2
	s.refresh()
	return nil
}

func (s *Sim) refresh() {
	w := s.cfg.Width
	for i := range s.display {
		x, y := i%w, i/w
		if s.cur.IsActive(lattice.P(x-s.ox, y-s.oy)) {
			s.display[i] = uint8(Active)
		} else {
			s.display[i] = uint8(Inactive)
		}
	}
}

func register(name string, dims int) {
	core.Register(name, func(cfg map[string]string) (core.Sim, error) {
		c := FromMap(cfg)
		if _, ok := cfg["dims"]; !ok {
			c.Dims = dims
		}
		return NewWithConfig(name, c)
	})
}

func init() {
	register("life", 2)
	register("cubes", 3)
	register("hypercubes", 4)
}
