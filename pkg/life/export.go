package life

import "strings"

const (
	deadGlyph  = '◻'
	aliveGlyph = '◼'
)

// Cells exposes the current grid without copying: width*height bytes in
// row-major order, each 0 (Dead) or 1 (Alive).
//
// The slice aliases engine memory. Tick swaps buffers, so after any Tick,
// ToggleCell, Set, Clear, Seed or Settle a previously returned slice may hold
// another generation or be overwritten mid-read. Re-acquire after every
// mutation.
func (u *Universe) Cells() []uint8 { return u.cur }

// View is a borrowed, read-only alias of the cell buffer that remembers the
// mutation epoch it was taken at.
type View struct {
	u     *Universe
	cells []uint8
	epoch uint64
}

// View borrows the current buffer. See Cells for the validity rule.
func (u *Universe) View() View {
	return View{u: u, cells: u.cur, epoch: u.epoch}
}

// Bytes returns the aliased buffer. Callers must not write to it.
func (v View) Bytes() []uint8 { return v.cells }

// Len returns the number of cells in the view.
func (v View) Len() int { return len(v.cells) }

// Stale reports whether the universe has mutated since the view was taken.
// A stale view must be re-acquired before it is read again.
func (v View) Stale() bool {
	return v.u == nil || v.u.epoch != v.epoch
}

// Render draws the grid as text: one glyph per cell, rows separated by '\n'
// without a trailing newline.
func (u *Universe) Render() string {
	if u.width == 0 || u.height == 0 {
		return ""
	}
	w := int(u.width)
	var b strings.Builder
	b.Grow(len(u.cur)*len(string(aliveGlyph)) + int(u.height))
	for row := 0; row < int(u.height); row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for _, c := range u.cur[row*w : (row+1)*w] {
			if c == uint8(Alive) {
				b.WriteRune(aliveGlyph)
			} else {
				b.WriteRune(deadGlyph)
			}
		}
	}
	return b.String()
}

func (u *Universe) String() string { return u.Render() }
