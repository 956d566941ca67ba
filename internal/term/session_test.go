package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifegrid/pkg/life"
)

func TestSessionStartHalt(t *testing.T) {
	s := newSession(blinker(), nil, discardLogger())

	stop, ok := s.start()
	require.True(t, ok)
	assert.True(t, s.running)

	_, ok = s.start()
	assert.False(t, ok, "a second run does not start while one is active")

	s.halt()
	assert.False(t, s.running)
	select {
	case <-stop:
	default:
		t.Fatal("halt should close the stop channel")
	}

	assert.NotPanics(t, s.halt, "halting twice is a no-op")

	again, ok := s.start()
	require.True(t, ok)
	assert.NotEqual(t, stop, again)
	s.halt()
}

func TestSessionAdvanceHaltsOnExtinction(t *testing.T) {
	u := life.New(4, 4, nil)
	u.Set(1, 1, life.Alive)
	s := newSession(u, nil, discardLogger())

	stop, ok := s.start()
	require.True(t, ok)
	s.advance()

	assert.Equal(t, uint64(1), u.Generation())
	assert.False(t, s.running)
	_, open := <-stop
	assert.False(t, open)
}

func TestSessionAdvanceKeepsRunning(t *testing.T) {
	u := blinker()
	s := newSession(u, nil, discardLogger())

	_, ok := s.start()
	require.True(t, ok)
	s.advance()
	s.advance()

	assert.True(t, s.running)
	assert.Equal(t, uint64(2), u.Generation())
	s.halt()
}

func TestSessionEdits(t *testing.T) {
	u := life.New(5, 5, nil)
	s := newSession(u, life.EveryNth(5), discardLogger())

	s.step()
	assert.Equal(t, uint64(1), u.Generation())

	s.reseed()
	assert.Equal(t, life.New(5, 5, life.EveryNth(5)).Cells(), u.Cells())

	s.clear()
	assert.Zero(t, u.Population())

	s.toggle(3, 1)
	assert.Equal(t, life.Alive, u.Get(1, 3))
	s.toggle(7, 1)
	s.toggle(1, -1)
	assert.Equal(t, 1, u.Population(), "clicks past the grid are ignored")

	s.randomize(9)
	assert.Equal(t, life.New(5, 5, life.Random(9)).Cells(), u.Cells())
}
