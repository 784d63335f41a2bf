package forest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cellab/pkg/grid"
)

func testConfig() Config {
	c := DefaultConfig()
	c.Width = 16
	c.Height = 16
	c.Params.BurnRow = 8
	c.Params.BurnCol = 8
	return c
}

func TestResetDeterministic(t *testing.T) {
	cfg := testConfig()
	a := NewWithConfig(cfg)
	b := NewWithConfig(cfg)
	a.Reset(42)
	b.Reset(42)
	require.Equal(t, a.Cells(), b.Cells())

	// The ignition point always starts burning.
	require.Equal(t, grid.Burning, a.Grid().At(8, 8))
}

func TestBurningAlwaysBurnsOut(t *testing.T) {
	cfg := testConfig()
	cfg.Params.Ignition = 0
	w := NewWithConfig(cfg)
	w.Reset(7)
	w.Step()
	require.Equal(t, grid.Burnt, w.Grid().At(8, 8))
}

func TestCertainIgnitionSpreadsToAllNeighborTrees(t *testing.T) {
	cfg := testConfig()
	cfg.Params.TreeDensity = 1
	cfg.Params.Ignition = 1
	w := NewWithConfig(cfg)
	w.Reset(7)
	w.Step()

	g := w.Grid()
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			require.Equal(t, grid.Burning, g.At(8+dr, 8+dc), "offset (%d,%d)", dr, dc)
		}
	}
	// Trees out of reach are untouched.
	require.Equal(t, grid.Tree, g.At(2, 2))
}

func TestZeroIgnitionNeverSpreads(t *testing.T) {
	cfg := testConfig()
	cfg.Params.TreeDensity = 1
	cfg.Params.Ignition = 0
	w := NewWithConfig(cfg)
	w.Reset(7)

	for i := 0; i < 4; i++ {
		w.Step()
	}
	g := w.Grid()
	burning := 0
	for _, c := range g.Cells() {
		if c == grid.Burning {
			burning++
		}
	}
	require.Zero(t, burning)
	require.Equal(t, grid.Burnt, g.At(8, 8))
}

func TestNoFireWithoutIgnitionPoint(t *testing.T) {
	cfg := testConfig()
	cfg.Params.BurnRow = -1
	cfg.Params.BurnCol = -1
	cfg.Params.TreeDensity = 1
	w := NewWithConfig(cfg)
	w.Reset(7)
	w.Step()

	for _, c := range w.Cells() {
		require.Equal(t, grid.Tree, c)
	}
}
