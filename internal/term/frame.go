package term

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"

	"lifegrid/pkg/core"
)

// Printer draws simulation frames as text. Without colour its frames match
// life.Universe.Render byte for byte.
type Printer struct {
	au   aurora.Aurora
	live string
	dead string
}

// NewPrinter returns a Printer, colourising glyphs when color is set.
func NewPrinter(color bool) *Printer {
	au := aurora.NewAurora(color)
	return &Printer{
		au:   au,
		live: au.Green("◼").String(),
		dead: au.BrightBlack("◻").String(),
	}
}

// Frame renders the current cells, one line per row.
func (p *Printer) Frame(sim core.Sim) string {
	return gridText(sim.Cells(), sim.Size().W, sim.Size().H, -1, -1, p.live, p.dead)
}

// Status renders a one-line summary of the simulation.
func (p *Printer) Status(sim core.Sim) string {
	size := sim.Size()
	return fmt.Sprintf("%s %d  %s %d  %s %dx%d",
		p.au.Cyan("generation"), sim.Generation(),
		p.au.Cyan("population"), sim.Population(),
		p.au.Cyan("size"), size.W, size.H)
}

// WriteFrame writes the status line followed by the frame and a blank line.
func (p *Printer) WriteFrame(w io.Writer, sim core.Sim) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n\n", p.Status(sim), p.Frame(sim))
	return err
}

// gridText renders w*h cells, cropped to maxW columns and maxH rows when
// those are non-negative.
func gridText(cells []uint8, w, h, maxW, maxH int, live, dead string) string {
	if len(cells) != w*h {
		return ""
	}
	rows, cols := h, w
	if maxH >= 0 && rows > maxH {
		rows = maxH
	}
	if maxW >= 0 && cols > maxW {
		cols = maxW
	}

	var b strings.Builder
	for y := 0; y < rows; y++ {
		if y != 0 {
			b.WriteByte('\n')
		}
		for _, c := range cells[y*w : y*w+cols] {
			if c != 0 {
				b.WriteString(live)
			} else {
				b.WriteString(dead)
			}
		}
	}
	return b.String()
}
