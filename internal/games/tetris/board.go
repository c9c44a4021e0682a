package tetris

// Playfield dimensions. Row 0 is the top.
const (
	Rows = 20
	Cols = 10
)

// Board is the playfield. ShapeNone marks an empty cell.
type Board [Rows][Cols]Shape

// At returns the cell at (col, row), or ShapeNone when out of range.
func (b *Board) At(col, row int) Shape {
	if col < 0 || col >= Cols || row < 0 || row >= Rows {
		return ShapeNone
	}
	return b[row][col]
}

// Reset empties every cell.
func (b *Board) Reset() {
	*b = Board{}
}

// FilledCount returns the number of occupied cells.
func (b *Board) FilledCount() int {
	n := 0
	for row := range b {
		for _, s := range b[row] {
			if s != ShapeNone {
				n++
			}
		}
	}
	return n
}

// Collides reports whether the piece anchored at (ax, ay) would leave the
// side walls, reach the floor or overlap a filled cell. Cells above the
// top edge are only checked against the side walls.
func (b *Board) Collides(p *Piece, ax, ay int) bool {
	hit := false
	p.each(ax, ay, func(col, row int) {
		switch {
		case hit:
		case col < 0 || col >= Cols || row >= Rows:
			hit = true
		case row >= 0 && b[row][col] != ShapeNone:
			hit = true
		}
	})
	return hit
}

// Merge writes the piece tag into every occupied cell it covers at
// (ax, ay). Cells above the top edge are discarded.
func (b *Board) Merge(p *Piece, ax, ay int) {
	p.each(ax, ay, func(col, row int) {
		if row >= 0 && row < Rows && col >= 0 && col < Cols {
			b[row][col] = p.Shape
		}
	})
}

// ClearLines removes every full row, shifting the rows above it down and
// inserting an empty row at the top. Returns the number of rows removed.
func (b *Board) ClearLines() int {
	cleared := 0
	for row := Rows - 1; row >= 0; {
		if !b.rowFull(row) {
			row--
			continue
		}
		copy(b[1:row+1], b[0:row])
		b[0] = [Cols]Shape{}
		cleared++
		// same index now holds the row that was above
	}
	return cleared
}

func (b *Board) rowFull(row int) bool {
	for _, s := range b[row] {
		if s == ShapeNone {
			return false
		}
	}
	return true
}
