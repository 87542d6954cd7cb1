package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lattice-ca/internal/core"
)

func TestWindowSize(t *testing.T) {
	w, h := WindowSize(core.Size{W: 10, H: 8}, 3)
	assert.Equal(t, 30+HUDWidth, w)
	assert.Equal(t, 24, h)

	w, h = WindowSize(core.Size{W: 10, H: 8}, 0)
	assert.Equal(t, 10+HUDWidth, w)
	assert.Equal(t, 8, h)
}

func TestRegisteredSimsArePaletted(t *testing.T) {
	for _, name := range core.Names() {
		sim, err := core.Sims()[name](nil)
		if !assert.NoError(t, err, name) {
			continue
		}
		ps, ok := sim.(PalettedSim)
		if !assert.True(t, ok, name) {
			continue
		}
		palette := ps.Palette()
		for _, c := range sim.Cells() {
			assert.Less(t, int(c), len(palette), "%s state %d has no color", name, c)
		}
	}
	assert.NotEmpty(t, core.Names())
}
