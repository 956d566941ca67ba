package ui

import (
	"testing"

	"lifegrid/pkg/life"
)

func TestStatusLine(t *testing.T) {
	u := life.New(4, 4, life.EveryNth(2))
	if got, want := StatusLine(u, false), "gen 0  pop 8  running"; got != want {
		t.Fatalf("StatusLine = %q, want %q", got, want)
	}
	u.Tick()
	if got, want := StatusLine(u, true), "gen 1  pop 8  paused"; got != want {
		t.Fatalf("StatusLine = %q, want %q", got, want)
	}
}

func TestGridLines(t *testing.T) {
	got := GridLines(4, 8)
	want := []int{8, 16, 24}
	if len(got) != len(want) {
		t.Fatalf("GridLines = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("GridLines = %v, want %v", got, want)
		}
	}
	if lines := GridLines(4, 3); lines != nil {
		t.Fatalf("small scale should have no lines, got %v", lines)
	}
	if lines := GridLines(1, 8); lines != nil {
		t.Fatalf("single cell should have no lines, got %v", lines)
	}
}
