package term

import (
	"log/slog"

	"lifegrid/pkg/core"
	"lifegrid/pkg/life"
)

// session holds the state behind the interactive commands. It does no I/O
// and must only be used from one goroutine (the gocui main loop).
type session struct {
	sim    core.Sim
	editor core.Editor
	seed   core.Seeder
	logger *slog.Logger

	running bool
	stop    chan struct{}
}

func newSession(sim core.Sim, seed core.Seeder, logger *slog.Logger) *session {
	s := &session{sim: sim, seed: seed, logger: logger}
	s.editor, _ = sim.(core.Editor)
	return s
}

// start begins a run. It reports the channel closed by halt, or false when a
// run is already in progress.
func (s *session) start() (<-chan struct{}, bool) {
	if s.running {
		return nil, false
	}
	s.running = true
	s.stop = make(chan struct{})
	s.logger.Debug("run started", "generation", s.sim.Generation())
	return s.stop, true
}

// halt ends the current run, if any.
func (s *session) halt() {
	if !s.running {
		return
	}
	s.running = false
	close(s.stop)
	s.logger.Debug("run stopped", "generation", s.sim.Generation())
}

func (s *session) step() { s.sim.Step() }

// advance is one tick of a run. The run halts once the population dies out.
func (s *session) advance() {
	s.sim.Step()
	if s.sim.Population() == 0 {
		s.halt()
	}
}

func (s *session) clear() {
	if s.editor != nil {
		s.editor.Clear()
	}
}

func (s *session) reseed() {
	if s.editor != nil {
		s.editor.Seed(s.seed)
	}
}

func (s *session) randomize(rng int64) {
	if s.editor != nil {
		s.editor.Seed(life.Random(rng))
	}
}

// toggle flips the cell under the field-view position (x, y). Positions past
// the grid are ignored.
func (s *session) toggle(x, y int) {
	if s.editor == nil {
		return
	}
	size := s.sim.Size()
	if row, col, ok := cursorCell(x, y, size.W, size.H); ok {
		s.editor.ToggleCell(row, col)
	}
}
