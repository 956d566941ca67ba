package life

import "lifegrid/pkg/core"

// DefaultSeed marks index i alive when i is even or a multiple of seven.
func DefaultSeed(width, height uint32, cells []uint8) {
	for i := range cells {
		if i%2 == 0 || i%7 == 0 {
			cells[i] = uint8(Alive)
		}
	}
}

// EveryNth returns a seeder that marks every n-th index alive, starting at 0.
// n <= 1 fills the grid.
func EveryNth(n int) Seeder {
	if n < 1 {
		n = 1
	}
	return func(width, height uint32, cells []uint8) {
		for i := 0; i < len(cells); i += n {
			cells[i] = uint8(Alive)
		}
	}
}

// Random returns a seeder that fills the grid with a coin flip per cell. The
// pattern is fully determined by seed.
func Random(seed int64) Seeder {
	return func(width, height uint32, cells []uint8) {
		core.FillBinary(core.NewRNG(seed).Source(), cells)
	}
}

// Sparse returns a seeder that marks roughly one cell in n alive.
func Sparse(seed int64, n int) Seeder {
	return func(width, height uint32, cells []uint8) {
		rng := core.NewRNG(seed)
		for i := range cells {
			if rng.Chance(n) {
				cells[i] = uint8(Alive)
			}
		}
	}
}

// FromTemplate returns a seeder that places t in the middle of the grid,
// wrapping when the template is larger than the grid.
func FromTemplate(t Template) Seeder {
	return func(width, height uint32, cells []uint8) {
		if width == 0 || height == 0 {
			return
		}
		rows, cols := t.Bounds()
		originRow := (int(height) - int(rows)) / 2
		originCol := (int(width) - int(cols)) / 2
		if originRow < 0 {
			originRow = 0
		}
		if originCol < 0 {
			originCol = 0
		}
		stamp(width, height, cells, t, uint32(originRow), uint32(originCol))
	}
}

func stamp(width, height uint32, cells []uint8, t Template, row, col uint32) {
	for _, rc := range t.Cells {
		r := (uint64(row) + uint64(rc[0])) % uint64(height)
		c := (uint64(col) + uint64(rc[1])) % uint64(width)
		cells[r*uint64(width)+c] = uint8(Alive)
	}
}

// Settle places t with its origin at (row, col), wrapping toroidally. The
// origin must lie inside the grid.
func (u *Universe) Settle(t Template, row, col uint32) {
	u.mustIndex(row, col)
	stamp(u.width, u.height, u.cur, t, row, col)
	u.epoch++
}

func init() {
	core.RegisterSeeder("default", DefaultSeed)
	core.RegisterSeeder("third", EveryNth(3))
	core.RegisterSeeder("empty", func(uint32, uint32, []uint8) {})
	core.RegisterSeeder("random", Random(42))
	core.RegisterSeeder("sparse", Sparse(42, 5))
	RegisterTemplates(Builtins())
}
