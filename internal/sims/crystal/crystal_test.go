package crystal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cellab/pkg/grid"
)

func TestResetSeedsCenter(t *testing.T) {
	c := New(9, 9, 1)
	c.Reset(0)

	g := c.Grid()
	total := 0
	for _, cell := range g.Cells() {
		if cell == grid.Crystal {
			total++
		}
	}
	require.Equal(t, 1, total)
	require.Equal(t, grid.Crystal, g.At(4, 4))
}

func TestGrowthFromSeed(t *testing.T) {
	c := New(9, 9, 1)
	c.Reset(0)
	c.Step()

	// Threshold 1: the full Moore neighborhood of the seed freezes.
	g := c.Grid()
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			require.Equal(t, grid.Crystal, g.At(4+dr, 4+dc), "offset (%d,%d)", dr, dc)
		}
	}
	require.Equal(t, grid.Empty, g.At(0, 0))
}

func TestGrowthIsMonotone(t *testing.T) {
	c := New(9, 9, 1)
	c.Reset(0)

	prev := append([]grid.Cell(nil), c.Cells()...)
	for step := 0; step < 6; step++ {
		c.Step()
		cur := c.Cells()
		for i := range prev {
			if prev[i] == grid.Crystal {
				require.Equal(t, grid.Crystal, cur[i], "step %d: cell %d reverted", step, i)
			}
		}
		prev = append(prev[:0], cur...)
	}
}

func TestHighThresholdStaysFrozen(t *testing.T) {
	// A lone seed can never satisfy a threshold above 1, so the grid is
	// a fixed point.
	c := New(9, 9, 3)
	c.Reset(0)
	before := append([]grid.Cell(nil), c.Cells()...)
	c.Step()
	require.Equal(t, before, c.Cells())
}
