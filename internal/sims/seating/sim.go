package seating

import (
	"fmt"
	"image/color"
	"os"

	"lattice-ca/internal/core"
)

// Sim steps a seating layout one generation at a time for the viewer.
type Sim struct {
	cfg    Config
	rule   Rule
	layout *core.Grid[Seat]

	cur      *core.Grid[Seat]
	gen      int
	occupied int
	stable   bool
	display  []uint8
}

// New returns a Sim that replays layout under rule.
func New(layout *core.Grid[Seat], rule Rule) *Sim {
	s := &Sim{cfg: DefaultConfig(), rule: rule, layout: layout}
	s.cfg.Rule = rule.Name
	s.cfg.Width, s.cfg.Height = layout.W(), layout.H()
	s.restart(layout)
	return s
}

// NewWithConfig builds a Sim from cfg, reading cfg.Input when set.
func NewWithConfig(cfg Config) (*Sim, error) {
	rule, err := RuleByName(cfg.Rule)
	if err != nil {
		return nil, err
	}
	s := &Sim{cfg: cfg, rule: rule}
	if cfg.Input != "" {
		layout, err := LoadLayout(cfg.Input)
		if err != nil {
			return nil, err
		}
		s.layout = layout
		s.cfg.Width, s.cfg.Height = layout.W(), layout.H()
		s.restart(layout)
		return s, nil
	}
	s.restart(s.randomLayout(cfg.Seed))
	return s, nil
}

// LoadLayout parses a layout file.
func LoadLayout(path string) (*core.Grid[Seat], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seating: open layout: %w", err)
	}
	defer f.Close()
	g, err := core.FromReader(f, DecodeSeat)
	if err != nil {
		return nil, fmt.Errorf("seating: parse %s: %w", path, err)
	}
	return g, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string {
	if s.rule.Name == LineOfSight.Name {
		return "seating-los"
	}
	return "seating"
}

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size { return s.cur.Size() }

// Cells exposes the display buffer, one Seat value per cell.
func (s *Sim) Cells() []uint8 { return s.display }

// Grid returns the current generation.
func (s *Sim) Grid() *core.Grid[Seat] { return s.cur }

// Generation returns the number of generations computed since the last reset.
func (s *Sim) Generation() int { return s.gen }

// Occupied returns the occupied seat count of the current generation.
func (s *Sim) Occupied() int { return s.occupied }

// Stable reports whether the last step left the occupied count unchanged.
func (s *Sim) Stable() bool { return s.stable }

// Reset restores the loaded layout. Without one, a new random layout is drawn
// from seed (or the configured seed when seed is zero).
func (s *Sim) Reset(seed int64) {
	if s.layout != nil {
		s.restart(s.layout)
		return
	}
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.restart(s.randomLayout(seed))
}

// Step advances one generation. Once stable, further steps are no-ops.
func (s *Sim) Step() {
	if s.stable {
		return
	}
	next := Next(s.cur, s.rule)
	occupied := CountOccupied(next)
	s.stable = occupied == s.occupied
	s.cur = next
	s.occupied = occupied
	s.gen++
	s.refresh()
}

// Palette maps Seat values to display colors.
func (s *Sim) Palette() []color.RGBA {
	return []color.RGBA{
		Floor:    {R: 24, G: 24, B: 28, A: 255},
		Empty:    {R: 70, G: 160, B: 90, A: 255},
		Occupied: {R: 220, G: 80, B: 60, A: 255},
	}
}

// Parameters reports the run state for the HUD.
func (s *Sim) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Layout",
			Params: []core.Parameter{
				core.IntParam("w", "Width", s.cur.W()),
				core.IntParam("h", "Height", s.cur.H()),
				core.StringParam("input", "Input", s.cfg.Input),
			},
		},
		{
			Name: "Rule",
			Params: []core.Parameter{
				core.StringParam("rule", "Rule", s.rule.Name),
				core.IntParam("tolerance", "Tolerance", s.rule.Tolerance),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				core.IntParam("gen", "Generation", s.gen),
				core.IntParam("occupied", "Occupied", s.occupied),
				core.BoolParam("stable", "Stable", s.stable),
			},
		},
	}}
}

func (s *Sim) restart(g *core.Grid[Seat]) {
	s.cur = g.Clone()
	s.gen = 0
	s.occupied = CountOccupied(s.cur)
	s.stable = false
	s.display = make([]uint8, s.cur.Len())
	s.refresh()
}

func (s *Sim) refresh() {
	for i, seat := range s.cur.Cells() {
		s.display[i] = uint8(seat)
	}
}

func (s *Sim) randomLayout(seed int64) *core.Grid[Seat] {
	chance := s.cfg.SeatChance
	return core.Fill(core.NewRNG(seed), s.cfg.Width, s.cfg.Height, func(r *core.RNG) Seat {
		if r.Chance(chance) {
			return Empty
		}
		return Floor
	})
}

func init() {
	core.Register("seating", func(cfg map[string]string) (core.Sim, error) {
		return NewWithConfig(FromMap(cfg))
	})
	core.Register("seating-los", func(cfg map[string]string) (core.Sim, error) {
		c := FromMap(cfg)
		c.Rule = LineOfSight.Name
		return NewWithConfig(c)
	})
}
