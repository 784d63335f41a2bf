// Package grid provides the dense cell containers and the generation
// steppers shared by every automaton in the lab. Grids are toroidal:
// coordinates wrap at the edges via modulo arithmetic.
package grid

// Cell is an integer cell state. Binary automata use Dead/Alive;
// multi-state automata reuse the low values under their own names.
type Cell uint8

// Binary cell states.
const (
	Dead  Cell = 0
	Alive Cell = 1
)

// Forest-fire cell states.
const (
	Empty   Cell = 0
	Tree    Cell = 1
	Burning Cell = 2
	Burnt   Cell = 3
)

// Crystal-growth cell states (Empty is shared).
const (
	Crystal Cell = 1
)

// Initializer produces the starting state for cell (row, col).
type Initializer func(row, col int) Cell

// RowInitializer produces the starting state for a 1D cell at index i.
type RowInitializer func(i int) Cell

// Grid stores a 2D lattice of cells in row-major order. Dimensions are
// fixed for the lifetime of the value; stepping allocates a fresh Grid.
type Grid struct {
	Rows, Cols int
	cells      []Cell
}

// New builds a rows×cols grid with each cell set by init. A nil init
// leaves all cells zero. Non-positive dimensions yield an empty grid.
func New(rows, cols int, init Initializer) Grid {
	if rows <= 0 || cols <= 0 {
		return Grid{}
	}
	g := Grid{Rows: rows, Cols: cols, cells: make([]Cell, rows*cols)}
	if init == nil {
		return g
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.cells[r*cols+c] = init(r, c)
		}
	}
	return g
}

// Empty reports whether the grid holds no cells.
func (g Grid) Empty() bool { return g.Rows == 0 || g.Cols == 0 }

// At returns the cell at (row, col). Coordinates are not wrapped.
func (g Grid) At(row, col int) Cell { return g.cells[row*g.Cols+col] }

// Set stores v at (row, col) in the grid's backing storage.
func (g Grid) Set(row, col int, v Cell) { g.cells[row*g.Cols+col] = v }

// Cells exposes the backing slice in row-major order.
func (g Grid) Cells() []Cell { return g.cells }

// Wrap maps coordinates onto the torus.
func (g Grid) Wrap(row, col int) (int, int) {
	row = (row%g.Rows + g.Rows) % g.Rows
	col = (col%g.Cols + g.Cols) % g.Cols
	return row, col
}

// Row is a dense 1D sequence of cells.
type Row []Cell

// NewRow builds a row of the given size with each cell set by init.
// A nil init leaves all cells zero; non-positive sizes yield an empty row.
func NewRow(size int, init RowInitializer) Row {
	if size <= 0 {
		return Row{}
	}
	r := make(Row, size)
	if init == nil {
		return r
	}
	for i := range r {
		r[i] = init(i)
	}
	return r
}

// Next computes one generation of g under rule and returns it as a fresh
// grid; g itself is never written. For every cell the rule receives the 8
// Moore-neighborhood states, wrapped toroidally, in row-major (dy, dx)
// order with the center skipped. An empty grid steps to an empty grid.
func Next(g Grid, rule func(neighbors []Cell, current Cell) Cell) Grid {
	if g.Empty() {
		return Grid{}
	}
	rows, cols := g.Rows, g.Cols
	out := Grid{Rows: rows, Cols: cols, cells: make([]Cell, rows*cols)}
	var nb [8]Cell
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			n := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nr := (r + dy + rows) % rows
					nc := (c + dx + cols) % cols
					nb[n] = g.cells[nr*cols+nc]
					n++
				}
			}
			out.cells[r*cols+c] = rule(nb[:], g.cells[r*cols+c])
		}
	}
	return out
}

// NextRow computes one generation of a 1D row under rule, wrapping the
// ends toroidally. The input row is never written.
func NextRow(row Row, rule func(left, center, right Cell) Cell) Row {
	size := len(row)
	if size == 0 {
		return Row{}
	}
	out := make(Row, size)
	for i := range row {
		left := row[(i-1+size)%size]
		right := row[(i+1)%size]
		out[i] = rule(left, row[i], right)
	}
	return out
}
