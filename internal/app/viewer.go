package app

import (
	"image/color"

	"lattice-ca/internal/core"
)

// HUDWidth is the width of the parameter panel right of the grid.
const HUDWidth = 220

// PalettedSim is a simulation the viewer can draw: every cell state it
// produces has a color.
type PalettedSim interface {
	core.Sim
	Palette() []color.RGBA
}

// WindowSize returns the logical screen size for a grid of size s drawn at
// scale, including the HUD panel.
func WindowSize(s core.Size, scale int) (int, int) {
	if scale <= 0 {
		scale = 1
	}
	return s.W*scale + HUDWidth, s.H * scale
}
