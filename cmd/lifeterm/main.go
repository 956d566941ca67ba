package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/integrii/flaggy"

	"lifegrid/internal/app"
	"lifegrid/internal/core"
	"lifegrid/internal/term"
)

func main() {
	cfg := app.NewConfig()
	p := flaggy.NewParser("lifeterm")
	p.Description = "Conway's Game of Life in the terminal."
	cfg.Bind(p)
	if err := p.Parse(); err != nil {
		p.ShowHelpAndExit(err.Error())
	}

	logger := app.NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdout, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("lifeterm exited", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *app.Config, out io.Writer, logger *slog.Logger) error {
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

	pacer := core.NewFixedStep(cfg.TPS)
	if cfg.Interactive {
		ui, err := term.NewUI(sim, cfg.Seeder(), pacer.Interval(), logger)
		if err != nil {
			return err
		}
		return ui.Run()
	}

	logger.Info("starting", "width", cfg.Width, "height", cfg.Height, "pattern", cfg.Pattern, "steps", cfg.Steps)
	return term.Batch(ctx, out, sim, term.NewPrinter(cfg.Color), cfg.Steps, pacer, logger)
}
