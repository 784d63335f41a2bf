package grid

// Rand is the random capability the stochastic initializers draw from.
// *core.RNG satisfies it.
type Rand interface {
	Float64() float64
}

// Random returns an initializer that marks each cell Alive independently
// with probability p.
func Random(p float64, rng Rand) Initializer {
	return func(int, int) Cell {
		if rng.Float64() < p {
			return Alive
		}
		return Dead
	}
}

// RandomRow is the 1D counterpart of Random.
func RandomRow(p float64, rng Rand) RowInitializer {
	return func(int) Cell {
		if rng.Float64() < p {
			return Alive
		}
		return Dead
	}
}

// SingleCenter returns a 1D initializer with only the middle cell alive.
func SingleCenter(size int) RowInitializer {
	center := size / 2
	return func(i int) Cell {
		if i == center {
			return Alive
		}
		return Dead
	}
}

// Forest returns an initializer planting a Tree on each cell with
// probability density. The cell at (burnRow, burnCol) is forced to
// Burning; pass negative coordinates to start without a fire.
func Forest(density float64, rng Rand, burnRow, burnCol int) Initializer {
	return func(r, c int) Cell {
		if r == burnRow && c == burnCol {
			return Burning
		}
		if rng.Float64() < density {
			return Tree
		}
		return Empty
	}
}

// CrystalSeed returns an initializer that is Empty everywhere except the
// geometric center of a rows×cols grid, which starts as Crystal.
func CrystalSeed(rows, cols int) Initializer {
	cr, cc := rows/2, cols/2
	return func(r, c int) Cell {
		if r == cr && c == cc {
			return Crystal
		}
		return Empty
	}
}
