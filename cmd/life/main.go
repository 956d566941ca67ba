//go:build ebiten

package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/integrii/flaggy"

	"lifegrid/internal/app"
)

func main() {
	cfg := app.NewConfig()
	p := flaggy.NewParser("life")
	p.Description = "Conway's Game of Life in a window. Space pauses, N steps, C clears, R reseeds, G grid, H status, click toggles a cell."
	cfg.Bind(p)
	if err := p.Parse(); err != nil {
		p.ShowHelpAndExit(err.Error())
	}

	logger := app.NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err := run(cfg, logger); err != nil {
		logger.Error("life exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg *app.Config, logger *slog.Logger) error {
	if err := app.LoadTemplates(cfg.Templates, logger); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	sim, err := cfg.NewSim()
	if err != nil {
		return err
	}

	game := app.New(sim, cfg.Scale, cfg.Seeder(), logger)
	size := sim.Size()
	logger.Info("starting", "width", size.W, "height", size.H, "pattern", cfg.Pattern, "tps", cfg.TPS)

	ebiten.SetWindowTitle("life - " + cfg.Pattern)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.WindowSize(size))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
