package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rotations returns the four orientations of a shape, starting at spawn.
func rotations(s Shape) []*Piece {
	p := NewPiece(s)
	out := []*Piece{p}
	for range 3 {
		p = &Piece{Shape: s, Cells: p.Rotated()}
		out = append(out, p)
	}
	return out
}

func allShapes() []Shape {
	return VariantExtended.Alphabet()
}

func TestRotationHasOrderFour(t *testing.T) {
	for _, s := range allShapes() {
		t.Run(s.String(), func(t *testing.T) {
			p := NewPiece(s)
			orig := copyMatrix(p.Cells)
			for range 4 {
				p.Cells = p.Rotated()
			}
			assert.Equal(t, orig, p.Cells)
		})
	}
}

func TestRotatedDoesNotModifyPiece(t *testing.T) {
	p := NewPiece(ShapeT)
	before := copyMatrix(p.Cells)
	_ = p.Rotated()
	assert.Equal(t, before, p.Cells)
}

func TestNewPiecePanicsOnUnknownShape(t *testing.T) {
	assert.Panics(t, func() { NewPiece(ShapeNone) })
	assert.Panics(t, func() { NewPiece(Shape(200)) })
}

func TestPieceMatricesAreSquare(t *testing.T) {
	for _, s := range allShapes() {
		p := NewPiece(s)
		for _, row := range p.Cells {
			assert.Len(t, row, p.Size(), "shape %s", s)
		}
		assert.Contains(t, []int{2, 3, 4}, p.Size(), "shape %s", s)
	}
}

func TestCollidesEmptyBoardMatchesBounds(t *testing.T) {
	var b Board
	for _, s := range allShapes() {
		for r, p := range rotations(s) {
			for ax := -5; ax <= Cols+1; ax++ {
				for ay := -5; ay <= Rows+1; ay++ {
					want := false
					p.each(ax, ay, func(col, row int) {
						if col < 0 || col >= Cols || row >= Rows {
							want = true
						}
					})
					require.Equal(t, want, b.Collides(p, ax, ay),
						"shape %s rotation %d at (%d,%d)", s, r, ax, ay)
				}
			}
		}
	}
}

func TestCollidesWithEveryOccupiedCell(t *testing.T) {
	for _, s := range allShapes() {
		for r, p := range rotations(s) {
			n := p.Size()
			ax, ay := 3, 8
			for y := range n {
				for x := range n {
					var b Board
					b[ay+y][ax+x] = ShapeO
					assert.Equal(t, p.Cells[y][x], b.Collides(p, ax, ay),
						"shape %s rotation %d with block at matrix (%d,%d)", s, r, x, y)
				}
			}
		}
	}
}

func TestCollidesIgnoresFilledCellsAboveBoard(t *testing.T) {
	var b Board
	for col := range Cols {
		b[0][col] = ShapeZ
	}
	p := NewPiece(ShapeI) // filled row is matrix row 1

	assert.False(t, b.Collides(p, 3, -2), "cells at row -1 must not hit row 0")
	assert.True(t, b.Collides(p, 3, -1))
	assert.True(t, b.Collides(p, -1, -2), "side walls apply above the board")
}

func TestMergeDropsCellsAboveBoard(t *testing.T) {
	var b Board
	p := NewPiece(ShapeO)
	b.Merge(p, 4, -1)

	assert.Equal(t, 2, b.FilledCount())
	assert.Equal(t, ShapeO, b.At(4, 0))
	assert.Equal(t, ShapeO, b.At(5, 0))
}

func TestMergeWritesShapeTag(t *testing.T) {
	var b Board
	p := NewPiece(ShapeT)
	b.Merge(p, 0, 18)

	assert.Equal(t, ShapeT, b.At(1, 18))
	for col := range 3 {
		assert.Equal(t, ShapeT, b.At(col, 19))
	}
	assert.Equal(t, 4, b.FilledCount())
}

func fillRow(b *Board, row int, s Shape) {
	for col := range Cols {
		b[row][col] = s
	}
}

func TestClearLinesPreservesSurvivingRows(t *testing.T) {
	tests := []struct {
		name string
		full []int
	}{
		{"none", nil},
		{"bottom", []int{19}},
		{"two adjacent", []int{18, 19}},
		{"gapped", []int{15, 17, 19}},
		{"four", []int{16, 17, 18, 19}},
		{"top row", []int{0}},
		{"middle", []int{10}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var b Board
			// Partial rows carry a unique marker column so order is observable.
			for row := 8; row < Rows; row++ {
				b[row][row%Cols] = ShapeJ
			}
			for _, row := range tc.full {
				fillRow(&b, row, ShapeL)
			}

			var survivors [][Cols]Shape
			for row := range Rows {
				if !b.rowFull(row) {
					survivors = append(survivors, b[row])
				}
			}
			before := b.FilledCount()

			n := b.ClearLines()

			require.Equal(t, len(tc.full), n)
			assert.Equal(t, before-n*Cols, b.FilledCount())
			for row := range n {
				assert.Equal(t, [Cols]Shape{}, b[row], "row %d should be empty", row)
			}
			for i, row := range survivors {
				assert.Equal(t, row, b[n+i], "surviving row %d moved out of order", i)
			}
		})
	}
}

func TestClearLinesWholeBoard(t *testing.T) {
	var b Board
	for row := range Rows {
		fillRow(&b, row, ShapeS)
	}
	assert.Equal(t, Rows, b.ClearLines())
	assert.Zero(t, b.FilledCount())
}

func TestBoardAtOutOfRange(t *testing.T) {
	var b Board
	fillRow(&b, 0, ShapeI)
	assert.Equal(t, ShapeNone, b.At(-1, 0))
	assert.Equal(t, ShapeNone, b.At(Cols, 0))
	assert.Equal(t, ShapeNone, b.At(0, -1))
	assert.Equal(t, ShapeNone, b.At(0, Rows))
}

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant("")
	require.NoError(t, err)
	assert.Equal(t, VariantClassic, v)

	v, err = ParseVariant("extended")
	require.NoError(t, err)
	assert.Equal(t, VariantExtended, v)

	_, err = ParseVariant("pentomino")
	assert.Error(t, err)
	assert.Nil(t, Variant("pentomino").Alphabet())
}

func TestShapeColors(t *testing.T) {
	seen := map[Shape]bool{}
	for _, s := range allShapes() {
		assert.NotEqual(t, ShapeNone.Color(), s.Color(), "shape %s has no color", s)
		seen[s] = true
	}
	assert.Len(t, seen, 9)
}
