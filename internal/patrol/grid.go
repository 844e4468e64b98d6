package patrol

import "fmt"

/*
Grid is a dense rectangular field of cells addressed by a single
linear index. One canonical mapping is used everywhere:

	index = row*cols + col
	row   = index / cols
	col   = index % cols

Neighbor stepping works on (row, col) pairs with explicit bounds
checks, so walking off any edge reports "no neighbor" instead of
wrapping into an adjacent row or column.
*/
type Grid struct {
	rows, cols int
	cells      []Cell
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }
func (g *Grid) Len() int  { return len(g.cells) }

// At returns the cell at linear index i, reporting false when i lies
// outside the grid.
func (g *Grid) At(i int) (Cell, bool) {
	if i < 0 || i >= len(g.cells) {
		return 0, false
	}
	return g.cells[i], true
}

// Set writes the cell at linear index i.
//
// panics [AssertionError]
func (g *Grid) Set(i int, c Cell) {
	if i < 0 || i >= len(g.cells) {
		panic(AssertionError{fmt.Sprintf("set out of range: %d not in [0, %d)", i, len(g.cells))})
	}
	g.cells[i] = c
}

func (g *Grid) Index(row, col int) int {
	return row*g.cols + col
}

func (g *Grid) RowCol(i int) (row, col int) {
	return i / g.cols, i % g.cols
}

// Step computes the linear index one cell away from i in direction f.
// The second return value is false when that neighbor lies outside the
// grid.
func (g *Grid) Step(i int, f Facing) (int, bool) {
	row, col := g.RowCol(i)
	switch f {
	case North:
		row--
	case East:
		col++
	case South:
		row++
	case West:
		col--
	}
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return 0, false
	}
	return g.Index(row, col), true
}

// Clone deep-copies the grid so that mutating one copy can never be
// observed through another.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}
