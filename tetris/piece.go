package tetris

// Block is one cell of a piece, relative to the piece origin.
type Block struct {
	DX, DY int
	Color  Color
}

// Piece is a tetromino placed on the board at (X, Y).
type Piece struct {
	X, Y  int
	Cells []Block
}

// NewPiece builds a piece from a template at the given origin.
func NewPiece(t ShapeTemplate, x, y int) Piece {
	cells := make([]Block, len(t.Offsets))
	for i, o := range t.Offsets {
		cells[i] = Block{DX: o.DX, DY: o.DY, Color: t.Color}
	}
	return Piece{X: x, Y: y, Cells: cells}
}

// Clone returns a copy that shares no memory with p.
func (p Piece) Clone() Piece {
	cells := make([]Block, len(p.Cells))
	copy(cells, p.Cells)
	return Piece{X: p.X, Y: p.Y, Cells: cells}
}

// Translated returns a copy of p shifted by (dx, dy).
func (p Piece) Translated(dx, dy int) Piece {
	out := p.Clone()
	out.X += dx
	out.Y += dy
	return out
}

// Rotated returns a copy of p turned 90 degrees about its origin,
// mapping every offset (x, y) to (y, -x).
func (p Piece) Rotated() Piece {
	out := p.Clone()
	for i, c := range out.Cells {
		out.Cells[i].DX, out.Cells[i].DY = c.DY, -c.DX
	}
	return out
}

// Absolute returns the board coordinates covered by p, in cell order.
func (p Piece) Absolute() [][2]int {
	out := make([][2]int, len(p.Cells))
	for i, c := range p.Cells {
		out[i] = [2]int{p.X + c.DX, p.Y + c.DY}
	}
	return out
}
