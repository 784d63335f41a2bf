package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cellab/pkg/core"
	"cellab/pkg/grid"
	"cellab/pkg/rules"
)

// countAlive is a rule that writes the live-neighbor count into the cell,
// handy for probing the neighborhood itself.
func countAlive(neighbors []grid.Cell, _ grid.Cell) grid.Cell {
	n := grid.Cell(0)
	for _, c := range neighbors {
		if c == grid.Alive {
			n++
		}
	}
	return n
}

func TestNewUsesInitializer(t *testing.T) {
	g := grid.New(3, 4, func(r, c int) grid.Cell {
		return grid.Cell(r*4 + c)
	})
	require.Equal(t, 3, g.Rows)
	require.Equal(t, 4, g.Cols)
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			require.Equal(t, grid.Cell(r*4+c), g.At(r, c))
		}
	}
}

func TestNewNonPositiveDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {0, 0}} {
		g := grid.New(dims[0], dims[1], nil)
		require.True(t, g.Empty())
		require.Empty(t, g.Cells())
	}
	require.Empty(t, grid.NewRow(0, nil))
	require.Empty(t, grid.NewRow(-3, nil))
}

func TestNextPreservesDimensions(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {3, 7}, {20, 20}} {
		g := grid.New(dims[0], dims[1], nil)
		out := grid.Next(g, countAlive)
		require.Equal(t, dims[0], out.Rows)
		require.Equal(t, dims[1], out.Cols)
	}
}

func TestNextEmptyInput(t *testing.T) {
	out := grid.Next(grid.Grid{}, countAlive)
	require.True(t, out.Empty())
	require.Empty(t, grid.NextRow(grid.Row{}, func(l, c, r grid.Cell) grid.Cell { return c }))
}

func TestNextLeavesInputUntouched(t *testing.T) {
	rng := core.NewRNG(7)
	g := grid.New(8, 8, grid.Random(0.5, rng))
	before := append([]grid.Cell(nil), g.Cells()...)

	grid.Next(g, rules.Conway)
	require.Equal(t, before, g.Cells())
}

func TestToroidalWrap(t *testing.T) {
	// A lone live cell at (0,0) on a 3x3 torus is a Moore neighbor of
	// every other cell, including the diagonally wrapped (2,2).
	g := grid.New(3, 3, nil)
	g.Set(0, 0, grid.Alive)

	out := grid.Next(g, countAlive)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			want := grid.Cell(1)
			if r == 0 && c == 0 {
				want = 0
			}
			require.Equal(t, want, out.At(r, c), "cell (%d,%d)", r, c)
		}
	}
}

func TestNeighborOrder(t *testing.T) {
	// Cells hold 1..9 so the neighbor sequence seen by the center cell
	// pins the (dy, dx) row-major enumeration order.
	g := grid.New(3, 3, func(r, c int) grid.Cell {
		return grid.Cell(r*3 + c + 1)
	})

	var seen []grid.Cell
	grid.Next(g, func(neighbors []grid.Cell, current grid.Cell) grid.Cell {
		if current == 5 {
			seen = append([]grid.Cell(nil), neighbors...)
		}
		return current
	})
	require.Equal(t, []grid.Cell{1, 2, 3, 4, 6, 7, 8, 9}, seen)
}

func TestWrap(t *testing.T) {
	g := grid.New(4, 6, nil)
	r, c := g.Wrap(-1, -1)
	require.Equal(t, 3, r)
	require.Equal(t, 5, c)
	r, c = g.Wrap(4, 6)
	require.Equal(t, 0, r)
	require.Equal(t, 0, c)
}

func TestConwayGlider(t *testing.T) {
	glider := [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}

	g := grid.New(20, 20, nil)
	for _, p := range glider {
		g.Set(5+p[0], 5+p[1], grid.Alive)
	}

	for i := 0; i < 4; i++ {
		g = grid.Next(g, rules.Conway)
	}

	// After 4 generations the glider reappears translated one cell
	// diagonally down-right.
	want := grid.New(20, 20, nil)
	for _, p := range glider {
		want.Set(6+p[0], 6+p[1], grid.Alive)
	}
	require.Equal(t, want.Cells(), g.Cells())
}

func TestFixedRulesDeterministic(t *testing.T) {
	parsed, err := rules.ParseBS("B36/S125")
	require.NoError(t, err)

	catalog := map[string]rules.Rule2D{
		"conway":   rules.Conway,
		"seeds":    rules.Seeds,
		"highlife": rules.HighLife,
		"parsed":   parsed,
	}

	rng := core.NewRNG(99)
	g := grid.New(12, 9, grid.Random(0.4, rng))
	for name, rule := range catalog {
		first := grid.Next(g, rule)
		second := grid.Next(g, rule)
		require.Equal(t, first.Cells(), second.Cells(), "rule %s", name)
	}
}

func TestNextRowWrap(t *testing.T) {
	row := grid.Row{1, 0, 0, 0}
	passLeft := func(left, center, right grid.Cell) grid.Cell { return left }
	out := grid.NextRow(row, passLeft)
	require.Equal(t, grid.Row{0, 1, 0, 0}, out)

	passRight := func(left, center, right grid.Cell) grid.Cell { return right }
	out = grid.NextRow(row, passRight)
	require.Equal(t, grid.Row{0, 0, 0, 1}, out)
}

func TestRandomInitializerDeterministic(t *testing.T) {
	a := grid.New(10, 10, grid.Random(0.5, core.NewRNG(123)))
	b := grid.New(10, 10, grid.Random(0.5, core.NewRNG(123)))
	require.Equal(t, a.Cells(), b.Cells())

	all := grid.New(4, 4, grid.Random(1.0, core.NewRNG(1)))
	for _, c := range all.Cells() {
		require.Equal(t, grid.Alive, c)
	}
	none := grid.New(4, 4, grid.Random(0.0, core.NewRNG(1)))
	for _, c := range none.Cells() {
		require.Equal(t, grid.Dead, c)
	}

	ra := grid.NewRow(16, grid.RandomRow(0.5, core.NewRNG(5)))
	rb := grid.NewRow(16, grid.RandomRow(0.5, core.NewRNG(5)))
	require.Equal(t, ra, rb)
}

func TestSingleCenter(t *testing.T) {
	row := grid.NewRow(5, grid.SingleCenter(5))
	require.Equal(t, grid.Row{0, 0, 1, 0, 0}, row)

	row = grid.NewRow(4, grid.SingleCenter(4))
	require.Equal(t, grid.Row{0, 0, 1, 0}, row)
}

func TestForestInitializer(t *testing.T) {
	g := grid.New(5, 5, grid.Forest(1.0, core.NewRNG(1), 2, 3))
	require.Equal(t, grid.Burning, g.At(2, 3))
	require.Equal(t, grid.Tree, g.At(0, 0))

	bare := grid.New(5, 5, grid.Forest(0.0, core.NewRNG(1), -1, -1))
	for _, c := range bare.Cells() {
		require.Equal(t, grid.Empty, c)
	}
}

func TestCrystalSeed(t *testing.T) {
	g := grid.New(7, 9, grid.CrystalSeed(7, 9))
	for r := 0; r < 7; r++ {
		for c := 0; c < 9; c++ {
			want := grid.Empty
			if r == 3 && c == 4 {
				want = grid.Crystal
			}
			require.Equal(t, want, g.At(r, c))
		}
	}
}
