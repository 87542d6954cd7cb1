package seating

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lattice-ca/internal/core"
)

const waitingRoom = `L.LL.LL.LL
LLLLLLL.LL
L.L.L..L..
LLLL.LL.LL
L.LL.LL.LL
L.LLLLL.LL
..L.L.....
LLLLLLLLLL
L.LLLLLL.L
L.LLLLL.LL
`

func parseRoom(t *testing.T, s string) *core.Grid[Seat] {
	t.Helper()
	g, err := core.Parse(s, DecodeSeat)
	require.NoError(t, err)
	return g
}

func TestSettleAdjacent(t *testing.T) {
	res, err := Settle(parseRoom(t, waitingRoom), Adjacent)
	require.NoError(t, err)
	assert.Equal(t, 37, res.Occupied)
	assert.Equal(t, 37, CountOccupied(res.Final))
	assert.Equal(t, len(res.History)-1, res.Generations)
}

func TestSettleLineOfSight(t *testing.T) {
	res, err := Settle(parseRoom(t, waitingRoom), LineOfSight)
	require.NoError(t, err)
	assert.Equal(t, 26, res.Occupied)
}

func TestFirstGenerationFillsEverySeat(t *testing.T) {
	g := parseRoom(t, waitingRoom)
	seats := g.Count(Empty)
	next := Next(g, Adjacent)
	assert.Equal(t, seats, CountOccupied(next))
	assert.Zero(t, next.Count(Empty))
}

func TestNextLeavesInputUntouched(t *testing.T) {
	g := parseRoom(t, waitingRoom)
	before := g.String()
	_ = Next(g, Adjacent)
	_ = Next(g, LineOfSight)
	assert.Equal(t, before, g.String())
}

func TestFloorNeverChanges(t *testing.T) {
	g := parseRoom(t, waitingRoom)
	cur := g
	for gen := 0; gen < 6; gen++ {
		cur = Next(cur, LineOfSight)
		g.Each(func(p core.Point, s Seat) {
			got, _ := cur.Get(p)
			if s == Floor {
				assert.Equal(t, Floor, got, "gen %d at %v", gen, p)
			} else {
				assert.NotEqual(t, Floor, got, "gen %d at %v", gen, p)
			}
		})
	}
}

func TestFixedPointIsStable(t *testing.T) {
	for _, r := range []Rule{Adjacent, LineOfSight} {
		t.Run(r.Name, func(t *testing.T) {
			res, err := Settle(parseRoom(t, waitingRoom), r)
			require.NoError(t, err)
			again := Next(res.Final, r)
			assert.Equal(t, res.Occupied, CountOccupied(again))
			assert.True(t, again.Equal(res.Final))
		})
	}
}

func TestSettleAllFloor(t *testing.T) {
	res, err := Settle(parseRoom(t, "...\n...\n"), Adjacent)
	require.NoError(t, err)
	assert.Zero(t, res.Occupied)
	assert.Equal(t, 1, res.Generations)
	assert.Equal(t, []int{0, 0}, res.History)
}

func TestSettleGenerationLimit(t *testing.T) {
	res, err := Settle(parseRoom(t, waitingRoom), Adjacent, WithMaxGenerations(1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoFixedPoint))
	assert.Equal(t, 1, res.Generations)
	assert.Equal(t, 71, res.Occupied)
}

func TestSettleObserver(t *testing.T) {
	var gens, counts []int
	res, err := Settle(parseRoom(t, waitingRoom), Adjacent, WithObserver(func(gen, occupied int) {
		gens = append(gens, gen)
		counts = append(counts, occupied)
	}))
	require.NoError(t, err)
	assert.Equal(t, res.History, counts)
	require.Len(t, gens, res.Generations+1)
	for i, g := range gens {
		assert.Equal(t, i, g)
	}
	assert.Equal(t, 0, counts[0])
	assert.Equal(t, 71, counts[1])
}

func TestRuleByName(t *testing.T) {
	cases := map[string]string{
		"":              "adjacent",
		"adjacent":      "adjacent",
		" Adjacent ":    "adjacent",
		"los":           "los",
		"line-of-sight": "los",
		"LineOfSight":   "los",
	}
	for in, want := range cases {
		r, err := RuleByName(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, r.Name, in)
	}

	_, err := RuleByName("diagonal")
	assert.ErrorIs(t, err, ErrUnknownRule)
}

func TestDecodeSeat(t *testing.T) {
	for b, want := range map[byte]Seat{'.': Floor, 'L': Empty, '#': Occupied} {
		got, err := DecodeSeat(b)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, b, got.Symbol())
	}

	_, err := DecodeSeat('x')
	assert.ErrorIs(t, err, core.ErrUnknownSymbol)

	_, err = core.Parse("L.\nLx\n", DecodeSeat)
	var se *core.SymbolError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 1, se.Row)
	assert.Equal(t, 1, se.Col)
}

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(map[string]string{"w": "12", "h": "8", "rule": "los", "seat_chance": "0.5", "seed": "7"})
	assert.Equal(t, 12, c.Width)
	assert.Equal(t, 8, c.Height)
	assert.Equal(t, "los", c.Rule)
	assert.Equal(t, 0.5, c.SeatChance)
	assert.Equal(t, int64(7), c.Seed)

	d := FromMap(map[string]string{"w": "-3", "seat_chance": "2"})
	assert.Equal(t, DefaultConfig().Width, d.Width)
	assert.Equal(t, DefaultConfig().SeatChance, d.SeatChance)
}

func TestSimStepsToStable(t *testing.T) {
	s := New(parseRoom(t, waitingRoom), Adjacent)
	assert.Equal(t, "seating", s.Name())
	assert.Equal(t, core.Size{W: 10, H: 10}, s.Size())

	for i := 0; i < 100 && !s.Stable(); i++ {
		s.Step()
	}
	require.True(t, s.Stable())
	assert.Equal(t, 37, s.Occupied())

	gen := s.Generation()
	s.Step()
	assert.Equal(t, gen, s.Generation())

	s.Reset(0)
	assert.Zero(t, s.Generation())
	assert.Equal(t, waitingRoom, s.Grid().String())
	assert.Equal(t, uint8(Empty), s.Cells()[0])
	assert.Equal(t, uint8(Floor), s.Cells()[1])
}

func TestSimParameters(t *testing.T) {
	s := New(parseRoom(t, waitingRoom), LineOfSight)
	assert.Equal(t, "seating-los", s.Name())
	s.Step()
	p, ok := s.Parameters().Lookup("occupied")
	require.True(t, ok)
	assert.Equal(t, "71", p.Value)
	p, ok = s.Parameters().Lookup("tolerance")
	require.True(t, ok)
	assert.Equal(t, "5", p.Value)
}

func TestSimRandomLayoutIsDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 16, 9
	a, err := NewWithConfig(cfg)
	require.NoError(t, err)
	b, err := NewWithConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, a.Grid().String(), b.Grid().String())
	assert.Equal(t, core.Size{W: 16, H: 9}, a.Size())

	a.Reset(99)
	b.Reset(99)
	assert.Equal(t, a.Grid().String(), b.Grid().String())
}

func TestSimLoadsInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "room.txt")
	require.NoError(t, os.WriteFile(path, []byte(waitingRoom), 0o644))

	factory, ok := core.Sims()["seating-los"]
	require.True(t, ok)
	sim, err := factory(map[string]string{"input": path})
	require.NoError(t, err)
	assert.Equal(t, "seating-los", sim.Name())
	assert.Equal(t, core.Size{W: 10, H: 10}, sim.Size())

	_, err = NewWithConfig(Config{Input: filepath.Join(t.TempDir(), "missing.txt")})
	assert.Error(t, err)

	_, err = NewWithConfig(Config{Rule: "nope"})
	assert.ErrorIs(t, err, ErrUnknownRule)
}
