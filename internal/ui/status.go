package ui

import (
	"fmt"

	"lifegrid/pkg/core"
)

// StatusLine summarises the simulation for the HUD strip.
func StatusLine(sim core.Sim, paused bool) string {
	mode := "running"
	if paused {
		mode = "paused"
	}
	return fmt.Sprintf("gen %d  pop %d  %s", sim.Generation(), sim.Population(), mode)
}

// GridLines returns the pixel offsets of the lines separating n cells drawn
// at the given scale, excluding the outer edges. Scales below 4 get no lines.
func GridLines(n, scale int) []int {
	if scale < 4 || n < 2 {
		return nil
	}
	out := make([]int, 0, n-1)
	for i := 1; i < n; i++ {
		out = append(out, i*scale)
	}
	return out
}
