package rules

import (
	"cellab/pkg/core"
	"cellab/pkg/grid"
)

// Defaults for the multi-state rule constructors.
const (
	DefaultIgnition         = 0.4
	DefaultCrystalThreshold = 3
)

// ForestFire returns the stochastic fire-spread rule over the
// Empty/Tree/Burning/Burnt states:
//
//   - Burning burns out to Burnt in one step, unconditionally.
//   - A Tree with at least one Burning neighbor ignites with probability
//     ignition (one draw per cell per step), otherwise stays a Tree.
//   - Everything else is unchanged.
//
// The ignition probability and the random source are fixed at
// construction. A nil rng draws from the process-wide generator; inject a
// seeded core.NewRNG for reproducible runs.
func ForestFire(ignition float64, rng *core.RNG) Rule2D {
	if rng == nil {
		rng = core.Global()
	}
	return func(neighbors []grid.Cell, current grid.Cell) grid.Cell {
		switch current {
		case grid.Burning:
			return grid.Burnt
		case grid.Tree:
			for _, n := range neighbors {
				if n != grid.Burning {
					continue
				}
				if rng.Float64() < ignition {
					return grid.Burning
				}
				return grid.Tree
			}
			return grid.Tree
		default:
			return current
		}
	}
}

// CrystalGrowth returns the deterministic accretion rule: an Empty cell
// crystallizes once it has at least threshold Crystal neighbors, and a
// Crystal cell never reverts. Non-positive thresholds fall back to
// DefaultCrystalThreshold.
func CrystalGrowth(threshold int) Rule2D {
	if threshold <= 0 {
		threshold = DefaultCrystalThreshold
	}
	return func(neighbors []grid.Cell, current grid.Cell) grid.Cell {
		if current != grid.Empty {
			return current
		}
		n := 0
		for _, c := range neighbors {
			if c == grid.Crystal {
				n++
			}
		}
		if n >= threshold {
			return grid.Crystal
		}
		return grid.Empty
	}
}
