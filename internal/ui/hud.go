//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"lattice-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	status     string
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width}
}

// Update refreshes the cached parameter snapshot and the status line.
func (h *HUD) Update(status string) {
	if h == nil {
		return
	}
	h.status = status
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
}

// Draw paints the HUD panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawText()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawText() {
	face := basicfont.Face7x13
	titleColor := color.RGBA{R: 200, G: 200, B: 210, A: 255}
	groupColor := color.RGBA{R: 140, G: 170, B: 220, A: 255}
	valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}

	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.sim.Name(), face, panelPadding, y, titleColor)
	if h.status != "" {
		y += lineHeight
		text.Draw(h.panel, h.status, face, panelPadding, y, groupColor)
	}
	for _, group := range h.snapshot.Groups {
		y += groupGap
		text.Draw(h.panel, group.Name, face, panelPadding, y, groupColor)
		for _, p := range group.Params {
			y += lineHeight
			value := p.Value
			if value == "" {
				value = "--"
			}
			text.Draw(h.panel, fmt.Sprintf("%s: %s", p.Label, value), face, panelPadding+indent, y, valueColor)
		}
	}
}

const (
	panelPadding   = 12
	headerBaseline = 18
	lineHeight     = 16
	groupGap       = 26
	indent         = 8
)
