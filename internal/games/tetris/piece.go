package tetris

import "fmt"

// Piece is the falling piece: a square occupancy matrix anchored at the
// board coordinates of its top-left corner. X is the column, Y the row.
type Piece struct {
	Shape Shape
	Cells [][]bool
	X, Y  int
}

// NewPiece returns a piece of the given shape in its spawn orientation.
// The anchor is left at the origin. Panics on a shape outside the table.
func NewPiece(s Shape) *Piece {
	def, ok := shapeTable[s]
	if !ok {
		panic(fmt.Sprintf("tetris: unknown shape %d", s))
	}
	return &Piece{Shape: s, Cells: copyMatrix(def.matrix)}
}

// Size returns the side length of the matrix.
func (p *Piece) Size() int {
	return len(p.Cells)
}

// Rotated returns the matrix turned 90 degrees clockwise.
// The receiver is not modified.
func (p *Piece) Rotated() [][]bool {
	n := len(p.Cells)
	out := make([][]bool, n)
	for i := range out {
		out[i] = make([]bool, n)
	}
	for y := range n {
		for x := range n {
			out[x][n-1-y] = p.Cells[y][x]
		}
	}
	return out
}

// each calls fn with the board coordinates of every occupied cell
// when the piece is anchored at (ax, ay).
func (p *Piece) each(ax, ay int, fn func(col, row int)) {
	for y, row := range p.Cells {
		for x, filled := range row {
			if filled {
				fn(ax+x, ay+y)
			}
		}
	}
}

func (p *Piece) clone() *Piece {
	if p == nil {
		return nil
	}
	c := *p
	c.Cells = copyMatrix(p.Cells)
	return &c
}

func copyMatrix(m [][]bool) [][]bool {
	out := make([][]bool, len(m))
	for i, row := range m {
		out[i] = append([]bool(nil), row...)
	}
	return out
}
