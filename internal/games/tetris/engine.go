package tetris

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/neontris/internal/config"
)

// State is the session lifecycle state.
type State int

const (
	StateIdle State = iota
	StateActive
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// kickOffsets are the column shifts tried, in order, after a rotation.
var kickOffsets = []int{0, -1, 1, -2, 2}

// Options configures a new Engine.
type Options struct {
	Variant Variant
	Config  config.TetrisConfig
	Seed    int64
}

// DefaultOptions returns a classic engine with the default tuning.
func DefaultOptions() Options {
	return Options{
		Variant: VariantClassic,
		Config:  config.DefaultTetrisConfig(),
		Seed:    1,
	}
}

// Engine owns one game session. It is not safe for concurrent use.
type Engine struct {
	board    Board
	piece    *Piece
	alphabet []Shape
	rng      *rand.Rand

	difficulty  *config.DifficultyManager
	autoRestart time.Duration

	score int
	lines int
	level int
	state State

	dropAcc    time.Duration
	restartAcc time.Duration

	listeners []Listener
}

// New creates an idle engine. Panics if the variant is unknown.
func New(opts Options) *Engine {
	alphabet := opts.Variant.Alphabet()
	if alphabet == nil {
		panic(fmt.Sprintf("tetris: unknown variant %q", opts.Variant))
	}
	return &Engine{
		alphabet:    alphabet,
		rng:         rand.New(rand.NewSource(opts.Seed)),
		difficulty:  config.NewDifficultyManager(opts.Config),
		autoRestart: time.Duration(opts.Config.Game.AutoRestartMs) * time.Millisecond,
		state:       StateIdle,
	}
}

// Subscribe registers a listener for engine events.
func (e *Engine) Subscribe(l Listener) {
	e.listeners = append(e.listeners, l)
}

// Reseed replaces the shape generator. Takes effect on the next spawn.
func (e *Engine) Reseed(seed int64) {
	e.rng = rand.New(rand.NewSource(seed))
}

func (e *Engine) emit(ev Event) {
	for _, l := range e.listeners {
		l(ev)
	}
}

// Start begins a fresh session from any state.
func (e *Engine) Start() {
	e.board.Reset()
	e.piece = nil
	e.score = 0
	e.lines = 0
	e.level = 0
	e.dropAcc = 0
	e.restartAcc = 0
	e.state = StateActive

	e.emit(SessionStarted{})
	e.spawn()
}

// Restart behaves like Start once a session exists. It does nothing while idle.
func (e *Engine) Restart() {
	if e.state == StateIdle {
		return
	}
	e.Start()
}

// Move shifts the piece one column in dir (-1 or +1).
// Returns false if the move was rejected.
func (e *Engine) Move(dir int) bool {
	if e.state != StateActive || e.piece == nil {
		return false
	}
	if dir < -1 || dir > 1 || dir == 0 {
		return false
	}
	if e.board.Collides(e.piece, e.piece.X+dir, e.piece.Y) {
		return false
	}
	e.piece.X += dir
	return true
}

// MoveLeft shifts the piece one column left.
func (e *Engine) MoveLeft() bool { return e.Move(-1) }

// MoveRight shifts the piece one column right.
func (e *Engine) MoveRight() bool { return e.Move(1) }

// Rotate turns the piece clockwise, trying each kick offset in turn.
// Returns false if every offset collides; the piece is then unchanged.
func (e *Engine) Rotate() bool {
	if e.state != StateActive || e.piece == nil {
		return false
	}

	candidate := &Piece{Shape: e.piece.Shape, Cells: e.piece.Rotated()}
	for _, dx := range kickOffsets {
		if !e.board.Collides(candidate, e.piece.X+dx, e.piece.Y) {
			e.piece.Cells = candidate.Cells
			e.piece.X += dx
			return true
		}
	}
	return false
}

// Drop moves the piece down one row and resets the gravity timer.
// If the row below is blocked the piece locks instead.
// Returns true when the piece landed.
func (e *Engine) Drop() bool {
	if e.state != StateActive || e.piece == nil {
		return false
	}
	e.dropAcc = 0

	if e.board.Collides(e.piece, e.piece.X, e.piece.Y+1) {
		e.lock()
		return true
	}
	e.piece.Y++
	e.emit(SoftDropped{})
	return false
}

// SoftDrop is the player-issued form of Drop.
func (e *Engine) SoftDrop() bool { return e.Drop() }

// HardDrop moves the piece straight down and locks it.
// Returns the number of rows descended.
func (e *Engine) HardDrop() int {
	if e.state != StateActive || e.piece == nil {
		return 0
	}
	e.dropAcc = 0

	rows := 0
	for !e.board.Collides(e.piece, e.piece.X, e.piece.Y+1) {
		e.piece.Y++
		rows++
	}
	e.lock()
	return rows
}

// lock merges the piece, scores cleared rows and spawns the next piece.
func (e *Engine) lock() {
	p := e.piece
	e.board.Merge(p, p.X, p.Y)
	e.piece = nil

	if n := e.board.ClearLines(); n > 0 {
		e.score += e.difficulty.Points(n, e.level)
		e.lines += n
		e.level = e.difficulty.Level(e.lines)
		e.emit(PieceLanded{Shape: p.Shape, Lines: n, Score: e.score})
	} else {
		e.emit(PieceLanded{Shape: p.Shape, Score: e.score})
	}

	e.spawn()
}

// spawn places a uniformly chosen shape or ends the session.
func (e *Engine) spawn() {
	e.spawnShape(e.alphabet[e.rng.Intn(len(e.alphabet))])
}

// spawnShape places a piece of shape s at the spawn anchor. If it does not
// fit, the session ends and the board is left untouched.
func (e *Engine) spawnShape(s Shape) {
	p := NewPiece(s)
	n := p.Size()
	p.X = Cols/2 - n/2
	p.Y = -max(1, n-2)

	if e.board.Collides(p, p.X, p.Y) {
		e.piece = nil
		e.state = StateGameOver
		e.restartAcc = 0
		e.emit(GameOver{Score: e.score, Lines: e.lines, Level: e.level})
		return
	}
	e.piece = p
}

// Tick advances the gravity timer by delta. While active, a drop happens
// once the accumulated time exceeds the current interval. After game over
// with auto-restart configured, a new session starts once the delay passes.
func (e *Engine) Tick(delta time.Duration) {
	if delta <= 0 {
		return
	}

	switch e.state {
	case StateActive:
		e.dropAcc += delta
		if e.dropAcc > e.DropInterval() {
			e.Drop()
		}
	case StateGameOver:
		if e.autoRestart <= 0 {
			return
		}
		e.restartAcc += delta
		if e.restartAcc >= e.autoRestart {
			e.Start()
		}
	}
}

// DropInterval returns the gravity interval at the current level.
func (e *Engine) DropInterval() time.Duration {
	return e.difficulty.Interval(e.level)
}

// Board returns a copy of the playfield.
func (e *Engine) Board() Board { return e.board }

// Piece returns a copy of the falling piece, or nil when there is none.
func (e *Engine) Piece() *Piece { return e.piece.clone() }

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Lines returns the rows cleared this session.
func (e *Engine) Lines() int { return e.lines }

// Level returns the current level.
func (e *Engine) Level() int { return e.level }

// State returns the session state.
func (e *Engine) State() State { return e.state }
