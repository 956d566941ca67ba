package life

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func aliveSet(u *Universe) map[[2]uint32]bool {
	out := map[[2]uint32]bool{}
	for row := uint32(0); row < u.Height(); row++ {
		for col := uint32(0); col < u.Width(); col++ {
			if u.Get(row, col) == Alive {
				out[[2]uint32{row, col}] = true
			}
		}
	}
	return out
}

func TestBlinkerOscillation(t *testing.T) {
	u := New(5, 5, nil)
	u.Set(2, 1, Alive)
	u.Set(2, 2, Alive)
	u.Set(2, 3, Alive)

	u.Tick()
	require.Equal(t, map[[2]uint32]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}, aliveSet(u),
		"horizontal blinker should turn vertical")

	u.Tick()
	require.Equal(t, map[[2]uint32]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}, aliveSet(u),
		"blinker should return to horizontal after the second tick")
	assert.Equal(t, uint64(2), u.Generation())
}

func TestBlockStillLife(t *testing.T) {
	u := New(6, 6, nil)
	u.Settle(Builtins()[0], 2, 2)
	before := append([]uint8(nil), u.Cells()...)

	for i := 0; i < 5; i++ {
		u.Tick()
		if diff := cmp.Diff(before, u.Cells()); diff != "" {
			t.Fatalf("block changed at generation %d (-want +got):\n%s", u.Generation(), diff)
		}
	}
	assert.Equal(t, 4, u.Population())
}

func TestToroidalNeighbors(t *testing.T) {
	const w, h = 5, 4
	u := New(w, h, nil)
	u.Set(0, 0, Alive)

	for _, rc := range [][2]uint32{{h - 1, w - 1}, {h - 1, 0}, {0, w - 1}, {1, 1}, {1, 0}, {0, 1}} {
		assert.Equalf(t, uint8(1), u.LiveNeighborCount(rc[0], rc[1]), "neighbour count at %v", rc)
	}
	assert.Equal(t, uint8(0), u.LiveNeighborCount(0, 0), "a cell is not its own neighbour")
	assert.Equal(t, uint8(0), u.LiveNeighborCount(2, 2))

	v := New(w, h, nil)
	v.Set(h-1, w-1, Alive)
	v.Set(h-1, 0, Alive)
	v.Set(0, w-1, Alive)
	assert.Equal(t, uint8(3), v.LiveNeighborCount(0, 0), "corner cells wrap onto (0,0)")
}

func TestLiveNeighborCountFullGrid(t *testing.T) {
	u := New(3, 3, EveryNth(1))
	for row := uint32(0); row < 3; row++ {
		for col := uint32(0); col < 3; col++ {
			require.Equal(t, uint8(8), u.LiveNeighborCount(row, col))
		}
	}
	u.Tick()
	assert.Zero(t, u.Population(), "overpopulation kills every cell")
}

func TestGliderWrapsAroundTorus(t *testing.T) {
	u := New(8, 8, nil)
	u.Settle(Template{Cells: [][2]uint32{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}}, 0, 0)
	start := append([]uint8(nil), u.Cells()...)

	for i := 0; i < 4; i++ {
		u.Tick()
	}
	shifted := New(8, 8, nil)
	shifted.Settle(Template{Cells: [][2]uint32{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}}, 1, 1)
	require.Empty(t, cmp.Diff(shifted.Cells(), u.Cells()), "glider should move one cell diagonally every four generations")

	for i := 4; i < 32; i++ {
		u.Tick()
	}
	require.Empty(t, cmp.Diff(start, u.Cells()), "glider should return to its origin after crossing the torus")
}

func TestTickDeterministic(t *testing.T) {
	a := New(40, 30, Random(7))
	b := New(40, 30, Random(7))
	require.Empty(t, cmp.Diff(a.Cells(), b.Cells()))

	for i := 0; i < 50; i++ {
		a.Tick()
		b.Tick()
	}
	if diff := cmp.Diff(a.Cells(), b.Cells()); diff != "" {
		t.Fatalf("identical universes diverged (-a +b):\n%s", diff)
	}

	c := New(40, 30, Random(8))
	assert.NotEqual(t, a.Cells(), c.Cells(), "different seeds should produce different patterns")
}

func TestToggleCellTwiceRestores(t *testing.T) {
	u := New(7, 5, DefaultSeed)
	before := append([]uint8(nil), u.Cells()...)

	u.ToggleCell(3, 6)
	require.NotEqual(t, Cell(before[u.Index(3, 6)]), u.Get(3, 6))
	u.ToggleCell(3, 6)

	require.Empty(t, cmp.Diff(before, u.Cells()))
}

func TestExportInvariant(t *testing.T) {
	const w, h = 13, 9
	u := New(w, h, Random(3))
	check := func() {
		t.Helper()
		cells := u.Cells()
		require.Len(t, cells, w*h)
		for i, c := range cells {
			if c > 1 {
				t.Fatalf("cell %d has value %d", i, c)
			}
		}
	}

	check()
	for i := uint32(0); i < 40; i++ {
		u.ToggleCell(i%h, (i*7)%w)
		check()
		u.Tick()
		check()
	}
}

func TestSeederBytesFoldToAlive(t *testing.T) {
	loud := func(_, _ uint32, cells []uint8) {
		cells[4] = 2
		cells[5] = 0xff
	}
	want := []uint8{0, 0, 0, 0, 1, 1, 0, 0, 0}

	u := New(3, 3, loud)
	require.Equal(t, want, u.Cells(), "New")
	assert.Equal(t, uint8(1), u.LiveNeighborCount(1, 1), "a folded neighbour counts once")

	u = New(3, 3, nil)
	u.Seed(loud)
	require.Equal(t, want, u.Cells(), "Seed")

	u.Tick()
	for i, c := range u.Cells() {
		assert.LessOrEqualf(t, c, uint8(1), "cell %d after tick", i)
	}
}

func TestEmptyGrid(t *testing.T) {
	for _, dims := range [][2]uint32{{0, 0}, {0, 5}, {5, 0}} {
		u := New(dims[0], dims[1], DefaultSeed)
		require.NotPanics(t, u.Tick)
		require.NotPanics(t, u.Clear)
		assert.Empty(t, u.Cells())
		assert.Equal(t, 0, u.View().Len())
		assert.Equal(t, "", u.Render())
		assert.Equal(t, 0, u.Population())
	}
}

func TestOutOfRangePanics(t *testing.T) {
	u := New(4, 3, nil)

	require.PanicsWithError(t, "life: cell (3,0) outside 4x3 grid", func() { u.ToggleCell(3, 0) })
	require.Panics(t, func() { u.ToggleCell(0, 4) })
	require.Panics(t, func() { u.Get(0, 4) })
	require.Panics(t, func() { u.Set(5, 5, Alive) })
	require.Panics(t, func() { u.LiveNeighborCount(3, 3) })
	require.Panics(t, func() { New(0, 0, nil).ToggleCell(0, 0) })

	defer func() {
		r := recover()
		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error, got %T", r)
		assert.True(t, errors.Is(err, ErrOutOfRange))
		var oor *OutOfRangeError
		require.ErrorAs(t, err, &oor)
		assert.Equal(t, OutOfRangeError{Row: 1, Col: 9, Width: 4, Height: 3}, *oor)
	}()
	u.ToggleCell(1, 9)
}

func TestSetRejectsInvalidCell(t *testing.T) {
	u := New(2, 2, nil)
	defer func() {
		err, _ := recover().(error)
		require.ErrorIs(t, err, ErrInvalidCell)
		assert.Zero(t, u.Population())
	}()
	u.Set(0, 0, Cell(2))
}

func TestViewStaleness(t *testing.T) {
	u := New(4, 4, DefaultSeed)

	v := u.View()
	require.False(t, v.Stale())
	require.Equal(t, u.Cells(), v.Bytes())
	require.Equal(t, 16, v.Len())

	u.Tick()
	assert.True(t, v.Stale(), "tick invalidates views")

	v = u.View()
	u.ToggleCell(0, 0)
	assert.True(t, v.Stale(), "toggle invalidates views")

	v = u.View()
	u.Seed(EveryNth(2))
	assert.True(t, v.Stale(), "reseed invalidates views")

	v = u.View()
	u.Set(1, 1, Alive)
	assert.True(t, v.Stale(), "set invalidates views")

	v = u.View()
	u.Clear()
	assert.True(t, v.Stale(), "clear invalidates views")

	assert.True(t, View{}.Stale())
}

func TestRender(t *testing.T) {
	u := New(3, 2, nil)
	u.Set(0, 1, Alive)
	u.Set(1, 2, Alive)

	assert.Equal(t, "◻◼◻\n◻◻◼", u.Render())
	assert.Equal(t, u.Render(), u.String())
}

func TestDefaultSeed(t *testing.T) {
	u := NewDefault()
	require.Equal(t, uint32(64), u.Width())
	require.Equal(t, uint32(64), u.Height())

	cells := u.Cells()
	for _, i := range []int{0, 2, 7, 14, 21, 4094} {
		assert.Equalf(t, uint8(1), cells[i], "index %d", i)
	}
	for _, i := range []int{1, 3, 9, 15, 4093} {
		assert.Equalf(t, uint8(0), cells[i], "index %d", i)
	}
	assert.Empty(t, cmp.Diff(cells, NewDefault().Cells()))
}

func TestEveryNth(t *testing.T) {
	u := New(3, 3, EveryNth(3))
	assert.Equal(t, []uint8{1, 0, 0, 1, 0, 0, 1, 0, 0}, u.Cells())
}

func TestClearAndSeed(t *testing.T) {
	u := New(6, 6, DefaultSeed)
	u.Tick()
	u.Clear()
	assert.Zero(t, u.Population())
	assert.Equal(t, uint64(1), u.Generation(), "clear keeps the generation counter")

	u.Seed(Random(11))
	assert.Empty(t, cmp.Diff(New(6, 6, Random(11)).Cells(), u.Cells()))
}

func BenchmarkTick(b *testing.B) {
	u := New(256, 256, Random(1))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u.Tick()
	}
}
