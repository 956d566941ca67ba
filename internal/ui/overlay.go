//go:build ebiten

package ui

import (
	"image/color"

	"lifegrid/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional grid lines on top of the cells. G toggles it.
type Overlay struct {
	sim   core.Sim
	scale int
	show  bool
	pixel *ebiten.Image
	col   color.RGBA
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale, col: color.RGBA{R: 60, G: 60, B: 60, A: 255}}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.show = !o.show
	}
}

// Draw renders the grid lines onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	size := o.sim.Size()
	width := float64(size.W * o.scale)
	height := float64(size.H * o.scale)
	for _, x := range GridLines(size.W, o.scale) {
		o.drawRect(screen, float64(x), 0, 1, height)
	}
	for _, y := range GridLines(size.H, o.scale) {
		o.drawRect(screen, 0, float64(y), width, 1)
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(o.col)
	screen.DrawImage(o.pixel, op)
}
