package life

import (
	"errors"
	"fmt"
)

// Cell is the state of a single grid position. Its numeric value is the byte
// stored in the exported buffer.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// Toggle returns the opposite state.
func (c Cell) Toggle() Cell {
	if c == Alive {
		return Dead
	}
	return Alive
}

func (c Cell) String() string {
	switch c {
	case Dead:
		return "dead"
	case Alive:
		return "alive"
	}
	return fmt.Sprintf("Cell(%d)", uint8(c))
}

var (
	// ErrOutOfRange marks coordinates outside the grid. Engine operations panic
	// with an *OutOfRangeError wrapping it instead of clamping.
	ErrOutOfRange = errors.New("life: coordinates out of range")
	// ErrInvalidCell marks a cell value other than Dead or Alive.
	ErrInvalidCell = errors.New("life: invalid cell state")
)

// OutOfRangeError reports the offending coordinates together with the grid
// dimensions.
type OutOfRangeError struct {
	Row, Col      uint32
	Width, Height uint32
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("life: cell (%d,%d) outside %dx%d grid", e.Row, e.Col, e.Width, e.Height)
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }
