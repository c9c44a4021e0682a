package tetris

import "time"

// Snapshot is a read-only view of the engine for renderers.
// It shares no memory with the engine.
type Snapshot struct {
	Board        Board
	Piece        Piece
	HasPiece     bool
	Score        int
	Lines        int
	Level        int
	State        State
	DropInterval time.Duration
}

// Snapshot returns the current engine state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Board:        e.board,
		Score:        e.score,
		Lines:        e.lines,
		Level:        e.level,
		State:        e.state,
		DropInterval: e.DropInterval(),
	}
	if p := e.piece.clone(); p != nil {
		s.Piece = *p
		s.HasPiece = true
	}
	return s
}

// Cell returns what a renderer should draw at (col, row): the falling
// piece takes precedence over the board.
func (s Snapshot) Cell(col, row int) Shape {
	if s.HasPiece {
		y, x := row-s.Piece.Y, col-s.Piece.X
		if y >= 0 && y < len(s.Piece.Cells) && x >= 0 && x < len(s.Piece.Cells[y]) && s.Piece.Cells[y][x] {
			return s.Piece.Shape
		}
	}
	return s.Board.At(col, row)
}
