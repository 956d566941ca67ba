//go:build ebiten

package app

import (
	"image/color"
	"log/slog"

	"lifegrid/internal/render"
	"lifegrid/internal/ui"
	"lifegrid/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	editor  core.Editor
	seed    core.Seeder
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	logger  *slog.Logger

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided simulation. seed is applied when the
// user asks for a reseed.
func New(sim core.Sim, scale int, seed core.Seeder, logger *slog.Logger) *Game {
	size := sim.Size()
	editor, _ := sim.(core.Editor)
	return &Game{
		sim:      sim,
		editor:   editor,
		seed:     seed,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(sim, scale),
		hud:      ui.NewHUD(sim, size.W*scale),
		logger:   logger,
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.logger.Debug("pause toggled", "paused", g.paused, "generation", g.sim.Generation())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	g.overlay.Update()

	if g.editor != nil {
		if inpututil.IsKeyJustPressed(ebiten.KeyC) {
			g.editor.Clear()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.editor.Seed(g.seed)
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			x, y := ebiten.CursorPosition()
			size := g.sim.Size()
			if row, col, ok := render.CellAt(x, y, g.scale, size.W, size.H); ok {
				g.editor.ToggleCell(row, col)
			}
		}
	}

	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state. The cell buffer is re-acquired
// every frame because Step swaps it.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.paused)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return max(s.W, 1) * g.scale, max(s.H, 1) * g.scale
}
