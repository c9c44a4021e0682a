package tetris

// Event is a notification delivered synchronously to engine listeners.
type Event interface {
	engineEvent()
}

// Listener receives engine events in the order they occur.
type Listener func(Event)

// SessionStarted is emitted by Start before the first piece spawns.
type SessionStarted struct{}

func (SessionStarted) engineEvent() {}

// SoftDropped is emitted when a drop moves the piece down without landing.
type SoftDropped struct{}

func (SoftDropped) engineEvent() {}

// PieceLanded is emitted after a piece merges into the board and full rows
// have been cleared.
type PieceLanded struct {
	Shape Shape
	Lines int // Rows cleared by this landing
	Score int // Score after the clear
}

func (PieceLanded) engineEvent() {}

// GameOver is emitted when a fresh piece cannot be placed.
type GameOver struct {
	Score int
	Lines int
	Level int
}

func (GameOver) engineEvent() {}
