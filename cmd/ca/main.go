//go:build ebiten

package main

import (
	"errors"
	"flag"

	"mad-sand/internal/app"
	"mad-sand/internal/core"
	"mad-sand/internal/scene"
	"mad-sand/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := app.NewLogger("mad-sand", cfg.Verbose)

	factory, ok := core.Lookup(cfg.Sim)
	if !ok {
		logger.Fatal("unknown sim", "sim", cfg.Sim, "available", core.Names())
	}

	sim := factory(cfg.SimOptions())
	sim.Reset(cfg.Seed)

	if cfg.Scene != "" {
		sb, ok := sim.(*sand.Sandbox)
		if !ok {
			logger.Fatal("scenes need the sand sim", "sim", sim.Name())
		}
		sc, err := scene.Load(cfg.Scene)
		if err != nil {
			logger.Fatal("load scene", "err", err)
		}
		sc.Apply(sb.Grid())
		logger.Info("scene loaded", "name", sc.Name, "w", sc.Width, "h", sc.Height)
	}

	game := app.New(sim, cfg, logger)
	size := sim.Size()
	logger.Info("starting", "sim", sim.Name(), "w", size.W, "h", size.H, "tps", cfg.TPS)

	ebiten.SetWindowTitle("mad-sand - " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale+max(cfg.Panel, 0), size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("run", "err", err)
	}
}
