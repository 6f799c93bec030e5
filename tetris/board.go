package tetris

// Cell is a single board square. The zero value is empty.
type Cell struct {
	Filled bool
	Color  Color
}

// Board is the playfield. Row 0 is the bottom row.
type Board struct {
	width  int
	height int
	cells  [][]Cell
}

// NewBoard creates an empty board with fixed dimensions.
func NewBoard(width, height int) *Board {
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
	}
	return &Board{
		width:  width,
		height: height,
		cells:  cells,
	}
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Occupied reports whether (x, y) is filled. Out-of-range positions count as
// occupied.
func (b *Board) Occupied(x, y int) bool {
	if !b.inBounds(x, y) {
		return true
	}
	return b.cells[y][x].Filled
}

// At returns the cell at (x, y), or an empty cell when out of range.
func (b *Board) At(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y][x]
}

// Set fills (x, y) with a color.
func (b *Board) Set(x, y int, c Color) {
	b.cells[y][x] = Cell{Filled: true, Color: c}
}

// ClearRow empties every cell of row y.
func (b *Board) ClearRow(y int) {
	clear(b.cells[y])
}

// RowFull reports whether every cell of row y is filled.
func (b *Board) RowFull(y int) bool {
	for _, c := range b.cells[y] {
		if !c.Filled {
			return false
		}
	}
	return true
}

// Rows returns a deep copy of the grid, indexed [y][x].
func (b *Board) Rows() [][]Cell {
	out := make([][]Cell, b.height)
	for y := range b.cells {
		out[y] = make([]Cell, b.width)
		copy(out[y], b.cells[y])
	}
	return out
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	return &Board{
		width:  b.width,
		height: b.height,
		cells:  b.Rows(),
	}
}

// clearFullRows empties every full row, then compacts the remaining rows toward
// the bottom keeping their order. It returns the number of rows cleared.
func (b *Board) clearFullRows() int {
	erased := make([]bool, b.height)
	count := 0
	for y := 0; y < b.height; y++ {
		if b.RowFull(y) {
			b.ClearRow(y)
			erased[y] = true
			count++
		}
	}
	if count == 0 {
		return 0
	}

	// Each surviving row drops by the number of erased rows below it.
	below := 0
	for y := 0; y < b.height; y++ {
		if erased[y] {
			below++
			continue
		}
		if below > 0 {
			b.cells[y-below], b.cells[y] = b.cells[y], b.cells[y-below]
		}
	}
	return count
}
