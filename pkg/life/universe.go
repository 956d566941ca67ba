package life

import (
	"fmt"

	"lifegrid/pkg/core"
)

const (
	DefaultWidth  = 64
	DefaultHeight = 64
)

// Seeder is re-exported so callers of this package need not import core.
type Seeder = core.Seeder

// Universe implements Conway's Game of Life on a toroidal grid stored as a
// row-major byte buffer. It is not safe for concurrent use; independent
// universes share no state.
type Universe struct {
	width, height uint32
	cur           []uint8
	nxt           []uint8

	generation uint64
	// epoch advances on every mutation and invalidates outstanding views.
	epoch uint64
}

// New returns a Universe with the provided dimensions. The grid starts dead
// and is then handed to seed, when non-nil. Any non-zero byte a seeder
// writes is stored as Alive.
func New(width, height uint32, seed Seeder) *Universe {
	n := int(width) * int(height)
	u := &Universe{
		width:  width,
		height: height,
		cur:    make([]uint8, n),
		nxt:    make([]uint8, n),
	}
	if seed != nil {
		seed(width, height, u.cur)
		normalize(u.cur)
	}
	return u
}

// normalize folds every non-zero byte to Alive so the buffer only holds 0 or 1.
func normalize(cells []uint8) {
	for i, c := range cells {
		if c != 0 {
			cells[i] = uint8(Alive)
		}
	}
}

// NewDefault returns a 64x64 universe seeded with DefaultSeed.
func NewDefault() *Universe {
	return New(DefaultWidth, DefaultHeight, DefaultSeed)
}

// Name returns the simulation identifier.
func (u *Universe) Name() string { return "life" }

// Width returns the number of columns.
func (u *Universe) Width() uint32 { return u.width }

// Height returns the number of rows.
func (u *Universe) Height() uint32 { return u.height }

// Size returns the grid dimensions.
func (u *Universe) Size() core.Size { return core.Size{W: int(u.width), H: int(u.height)} }

// Generation returns the number of completed ticks.
func (u *Universe) Generation() uint64 { return u.generation }

// Index returns the linear buffer index for (row, col). It does not check bounds.
func (u *Universe) Index(row, col uint32) int {
	return int(row)*int(u.width) + int(col)
}

func (u *Universe) mustIndex(row, col uint32) int {
	if row >= u.height || col >= u.width {
		panic(&OutOfRangeError{Row: row, Col: col, Width: u.width, Height: u.height})
	}
	return u.Index(row, col)
}

// Get returns the state at (row, col). It panics outside the grid.
func (u *Universe) Get(row, col uint32) Cell {
	return Cell(u.cur[u.mustIndex(row, col)])
}

// Set writes the state at (row, col). It panics outside the grid or on a
// value other than Dead or Alive.
func (u *Universe) Set(row, col uint32, c Cell) {
	if c != Dead && c != Alive {
		panic(fmt.Errorf("%w: %d", ErrInvalidCell, uint8(c)))
	}
	u.cur[u.mustIndex(row, col)] = uint8(c)
	u.epoch++
}

// ToggleCell flips the state at (row, col) in place. Coordinates are not
// clamped: a point outside the grid panics with an *OutOfRangeError.
func (u *Universe) ToggleCell(row, col uint32) {
	idx := u.mustIndex(row, col)
	u.cur[idx] = uint8(Cell(u.cur[idx]).Toggle())
	u.epoch++
}

// Clear kills every cell.
func (u *Universe) Clear() {
	clear(u.cur)
	u.epoch++
}

// Seed clears the grid and applies s. Non-zero bytes are stored as Alive.
func (u *Universe) Seed(s Seeder) {
	clear(u.cur)
	if s != nil {
		s(u.width, u.height, u.cur)
		normalize(u.cur)
	}
	u.epoch++
}

// Population returns the number of live cells.
func (u *Universe) Population() int {
	n := 0
	for _, c := range u.cur {
		n += int(c)
	}
	return n
}

// LiveNeighborCount returns how many of the eight toroidal neighbours of
// (row, col) are alive. It panics outside the grid.
func (u *Universe) LiveNeighborCount(row, col uint32) uint8 {
	u.mustIndex(row, col)
	return u.neighbors(row, col)
}

func (u *Universe) neighbors(row, col uint32) uint8 {
	w, h := u.width, u.height
	north := row - 1
	if row == 0 {
		north = h - 1
	}
	south := row + 1
	if south == h {
		south = 0
	}
	west := col - 1
	if col == 0 {
		west = w - 1
	}
	east := col + 1
	if east == w {
		east = 0
	}

	cells := u.cur
	return cells[u.Index(north, west)] +
		cells[u.Index(north, col)] +
		cells[u.Index(north, east)] +
		cells[u.Index(row, west)] +
		cells[u.Index(row, east)] +
		cells[u.Index(south, west)] +
		cells[u.Index(south, col)] +
		cells[u.Index(south, east)]
}

// nextState applies the B3/S23 rule.
func nextState(c Cell, n uint8) Cell {
	switch {
	case c == Alive && (n < 2 || n > 3):
		return Dead
	case c == Dead && n == 3:
		return Alive
	}
	return c
}

// Tick advances the universe by one generation. Every neighbour read sees the
// previous generation: the next state is written to the spare buffer and the
// buffers are swapped once the pass completes.
func (u *Universe) Tick() {
	w, h := u.width, u.height
	for row := uint32(0); row < h; row++ {
		for col := uint32(0); col < w; col++ {
			idx := u.Index(row, col)
			u.nxt[idx] = uint8(nextState(Cell(u.cur[idx]), u.neighbors(row, col)))
		}
	}
	u.cur, u.nxt = u.nxt, u.cur
	u.generation++
	u.epoch++
}

// Step advances the simulation by one generation.
func (u *Universe) Step() { u.Tick() }
