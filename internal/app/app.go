//go:build ebiten

package app

import (
	"fmt"
	"time"

	"lattice-ca/internal/core"
	"lattice-ca/internal/render"
	"lattice-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     PalettedSim
	painter *render.GridPainter
	hud     *ui.HUD
	timer   *core.FixedStep

	scale    int
	gps      int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation, stepping it gps times
// per second.
func New(sim PalettedSim, scale int, seed int64, gps int) *Game {
	if gps <= 0 {
		gps = 10
	}
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(sim.Size().W, sim.Size().H, sim.Palette()),
		hud:     ui.NewHUD(sim, HUDWidth),
		timer:   core.NewFixedStep(gps),
		scale:   scale,
		gps:     gps,
		seed:    seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.setRate(g.gps * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.setRate(g.gps / 2)
	}

	if g.tickOnce || (!g.paused && g.timer.ShouldStep()) {
		g.sim.Step()
		g.tickOnce = false
	}

	status := fmt.Sprintf("%d gen/s", g.gps)
	if g.paused {
		status = "paused"
	}
	g.hud.Update(status)
	return nil
}

func (g *Game) setRate(gps int) {
	if gps < 1 {
		gps = 1
	}
	if gps > 240 {
		gps = 240
	}
	g.gps = gps
	g.timer.SetRate(gps)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.scale)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return WindowSize(g.sim.Size(), g.scale)
}
