package codenames

// Grid is a fixed-size square of string cells. The zeroth cell is the
// top-left, the fourth the top-right, and the last the bottom-right. An
// empty-string cell is unfilled. A Grid never resizes after creation.
type Grid struct {
	size  int
	cells []string
}

// NewGrid returns a size-by-size grid with every cell unfilled.
func NewGrid(size int) *Grid {
	return &Grid{
		size:  size,
		cells: make([]string, size*size),
	}
}

// Size returns the side length of the grid.
func (g *Grid) Size() int {
	return g.size
}

// At returns the cell at the given row and column.
func (g *Grid) At(row, col int) string {
	return g.cells[row*g.size+col]
}

// Set writes the cell at the given row and column.
func (g *Grid) Set(row, col int, v string) {
	g.cells[row*g.size+col] = v
}

// Rows returns a copy of the grid contents, one slice per row. Mutating the
// result doesn't touch the grid.
func (g *Grid) Rows() [][]string {
	rows := make([][]string, g.size)
	for i := 0; i < g.size; i++ {
		rows[i] = make([]string, g.size)
		copy(rows[i], g.cells[i*g.size:(i+1)*g.size])
	}
	return rows
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	out := NewGrid(g.size)
	copy(out.cells, g.cells)
	return out
}

// Equal reports whether two grids have the same size and cell contents.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.size != o.size {
		return false
	}
	for i, c := range g.cells {
		if o.cells[i] != c {
			return false
		}
	}
	return true
}

// EmptyCount returns the number of unfilled cells.
func (g *Grid) EmptyCount() int {
	n := 0
	for _, c := range g.cells {
		if c == "" {
			n++
		}
	}
	return n
}

// EnsureCapacity fails with a *CapacityError if the grid has fewer than
// count unfilled cells. Callers check this before placing markers so a
// misconfigured board surfaces an error instead of an endless retry loop.
func (g *Grid) EnsureCapacity(count int) error {
	empty := g.EmptyCount()
	if count > empty {
		return &CapacityError{Requested: count, Empty: empty}
	}
	return nil
}
