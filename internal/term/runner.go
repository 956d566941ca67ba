package term

import (
	"context"
	"io"
	"log/slog"
	"time"

	"lifegrid/pkg/core"
)

// Pacer decides when the next generation is due.
type Pacer interface {
	ShouldStep() bool
	Remaining() time.Duration
}

// Batch writes the initial frame and then one frame per generation to w. It
// stops after steps generations (0 means no limit), when the population dies
// out, or when ctx is cancelled. A nil pacer advances as fast as possible.
func Batch(ctx context.Context, w io.Writer, sim core.Sim, p *Printer, steps int, pacer Pacer, logger *slog.Logger) error {
	if err := p.WriteFrame(w, sim); err != nil {
		return err
	}
	start := time.Now()
	wait := time.NewTimer(0)
	defer wait.Stop()
	<-wait.C
	for done := 0; steps == 0 || done < steps; {
		if pacer != nil && !pacer.ShouldStep() {
			wait.Reset(pacer.Remaining())
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-wait.C:
			}
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		sim.Step()
		done++
		if err := p.WriteFrame(w, sim); err != nil {
			return err
		}
		if sim.Population() == 0 {
			logger.Info("population died out", "generation", sim.Generation())
			return nil
		}
		if done%100 == 0 {
			logger.Debug("progress", "generation", sim.Generation(), "elapsed", time.Since(start).Round(time.Millisecond))
		}
	}
	logger.Info("finished", "generation", sim.Generation(), "population", sim.Population(),
		"elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}
