//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lattice-ca/internal/app"
	"lattice-ca/internal/core"
	_ "lattice-ca/internal/sims/cubes"
	_ "lattice-ca/internal/sims/seating"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %v)", cfg.Sim, core.Names())
	}

	built, err := factory(cfg.SimConfig())
	if err != nil {
		log.Fatal(err)
	}
	sim, ok := built.(app.PalettedSim)
	if !ok {
		log.Fatalf("sim %q has no palette", cfg.Sim)
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.Seed, cfg.GPS)

	ebiten.SetWindowTitle("lattice-ca - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(app.WindowSize(sim.Size(), cfg.Scale))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
