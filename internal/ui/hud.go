//go:build ebiten

package ui

import (
	"image/color"

	"lifegrid/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const hudHeight = 16

// HUD draws a translucent status strip along the top of the view.
type HUD struct {
	sim   core.Sim
	strip *ebiten.Image
	shown bool
}

// NewHUD constructs a HUD for the provided simulation and view width.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{sim: sim, shown: true}
	if width > 0 {
		h.strip = ebiten.NewImage(width, hudHeight)
	}
	return h
}

// Toggle shows or hides the strip.
func (h *HUD) Toggle() {
	if h != nil {
		h.shown = !h.shown
	}
}

// Draw renders the status strip.
func (h *HUD) Draw(screen *ebiten.Image, paused bool) {
	if h == nil || !h.shown || h.strip == nil {
		return
	}
	h.strip.Fill(color.RGBA{A: 160})
	text.Draw(h.strip, StatusLine(h.sim, paused), basicfont.Face7x13, 4, 12, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	screen.DrawImage(h.strip, nil)
}
