// Package rules is the catalog of transition rules: fixed birth/survival
// rules, the 256 elementary Wolfram-code rules, a parser for user-written
// B/S notation, and the multi-state forest-fire and crystal rules.
//
// A rule is a pure function constructed once and then applied per cell by
// the grid steppers. All validation happens at construction time; a
// successfully constructed rule never fails.
package rules

import "cellab/pkg/grid"

// Rule2D maps a cell's 8 Moore-neighborhood states and its current state
// to its next state.
type Rule2D func(neighbors []grid.Cell, current grid.Cell) grid.Cell

// Rule1D maps a 1D cell's two neighbors and its own state to its next
// state.
type Rule1D func(left, center, right grid.Cell) grid.Cell

// BS builds a binary rule from birth and survival neighbor counts: a dead
// cell becomes alive iff its live-neighbor count is in birth, a live cell
// stays alive iff the count is in survival. Counts outside 0-8 are
// ignored; duplicates are harmless.
func BS(birth, survival []int) Rule2D {
	var b, s uint16
	for _, n := range birth {
		if n >= 0 && n <= 8 {
			b |= 1 << n
		}
	}
	for _, n := range survival {
		if n >= 0 && n <= 8 {
			s |= 1 << n
		}
	}
	return func(neighbors []grid.Cell, current grid.Cell) grid.Cell {
		n := 0
		for _, c := range neighbors {
			if c == grid.Alive {
				n++
			}
		}
		mask := b
		if current == grid.Alive {
			mask = s
		}
		if mask&(1<<n) != 0 {
			return grid.Alive
		}
		return grid.Dead
	}
}

// The fixed catalog. Each entry is plain B/S notation; see ParseBS for
// the user-supplied equivalent.
var (
	// Conway is the classic Game of Life, B3/S23.
	Conway = BS([]int{3}, []int{2, 3})
	// Seeds is B2/S: every live cell dies, birth on exactly 2 neighbors.
	Seeds = BS([]int{2}, nil)
	// HighLife is B36/S23, Life plus the replicator-friendly B6.
	HighLife = BS([]int{3, 6}, []int{2, 3})
	// DayAndNight is B3678/S34678, self-complementary.
	DayAndNight = BS([]int{3, 6, 7, 8}, []int{3, 4, 6, 7, 8})
	// Maze is B3/S12345, grows stable maze-like corridors.
	Maze = BS([]int{3}, []int{1, 2, 3, 4, 5})
	// Replicator is B1357/S1357; every pattern replicates itself.
	Replicator = BS([]int{1, 3, 5, 7}, []int{1, 3, 5, 7})
	// Diamoeba is B35678/S5678, forms large amoeba-shaped diamonds.
	Diamoeba = BS([]int{3, 5, 6, 7, 8}, []int{5, 6, 7, 8})
	// TwoByTwo is B36/S125, preserves 2x2 block parity.
	TwoByTwo = BS([]int{3, 6}, []int{1, 2, 5})
	// Move is B368/S245, slow ships and stable still lifes.
	Move = BS([]int{3, 6, 8}, []int{2, 4, 5})
	// Serviettes is B2/S, an exploding lace-doily rule.
	Serviettes = BS([]int{2}, nil)
)
