package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lines    int  // Lines cleared this session
	Level    int  // Current level
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventKind classifies a gameplay event reported to the platform.
type EventKind int

const (
	EventNone EventKind = iota
	EventSessionStarted
	EventSoftDrop
	EventPieceLanded
	EventGameOver
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventSessionStarted:
		return "session_started"
	case EventSoftDrop:
		return "soft_drop"
	case EventPieceLanded:
		return "piece_landed"
	case EventGameOver:
		return "game_over"
	default:
		return "none"
	}
}

// Event is a fire-and-forget notification emitted during a tick.
// Hosts use it for sound cues, logging and score persistence.
type Event struct {
	Kind  EventKind
	Lines int // Rows cleared by a landing
	Score int // Score after the event
	Level int // Level after the event
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred, in order.
type StepResult struct {
	State  GameState
	Events []Event
}
