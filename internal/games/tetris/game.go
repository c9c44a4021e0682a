package tetris

import (
	"time"

	"github.com/vovakirdan/neontris/internal/config"
	"github.com/vovakirdan/neontris/internal/core"
	"github.com/vovakirdan/neontris/internal/registry"
)

// Registry identifiers.
const (
	IDClassic  = "tetris"
	IDExtended = "tetris_extended"
)

// Minimum screen size for the board plus HUD.
const (
	minScreenW = boardW + hudGap + hudW
	minScreenH = boardH + 1
)

// Game adapts the Engine to the platform's registry.Game interface.
// Input actions are applied in order, then one tick of time elapses.
type Game struct {
	id      string
	variant Variant
	cfg     config.TetrisConfig
	engine  *Engine

	tickRate int
	tick     time.Duration
	screenW  int
	screenH  int
	paused   bool
	tooSmall bool

	flash      string
	flashTicks int

	pending []core.Event
}

// NewClassic creates a seven-tetromino game with the default config.
func NewClassic() *Game {
	return newGame(IDClassic, VariantClassic)
}

// NewExtended creates a game that also spawns the U and X shapes.
func NewExtended() *Game {
	return newGame(IDExtended, VariantExtended)
}

// NewFromConfig creates a game whose variant comes from cfg.
func NewFromConfig(cfg config.TetrisConfig) (*Game, error) {
	v, err := ParseVariant(cfg.Game.Variant)
	if err != nil {
		return nil, err
	}
	g := NewClassic()
	if v == VariantExtended {
		g = NewExtended()
	}
	g.Configure(cfg)
	return g, nil
}

func newGame(id string, v Variant) *Game {
	g := &Game{id: id, variant: v}
	g.Configure(config.DefaultTetrisConfig())
	return g
}

func init() {
	registry.Register(IDClassic, func() registry.Game { return NewClassic() })
	registry.Register(IDExtended, func() registry.Game { return NewExtended() })
}

// Configure replaces the tuning and discards the current session.
// The variant is fixed by the registry entry; cfg.Game.Variant is ignored.
func (g *Game) Configure(cfg config.TetrisConfig) {
	g.cfg = cfg
	g.engine = New(Options{Variant: g.variant, Config: cfg, Seed: 1})
	g.engine.Subscribe(g.onEvent)
}

// ID returns the registry identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantExtended {
		return "Neontris Extended"
	}
	return "Neontris"
}

// Variant returns the shape alphabet this game spawns from.
func (g *Game) Variant() Variant {
	return g.variant
}

// Reset starts a new session sized for the screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.tick = time.Second / time.Duration(g.tickRate)
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
	g.paused = false
	g.flash = ""
	g.flashTicks = 0

	g.pending = nil
	g.engine.Reseed(cfg.Seed)
	g.engine.Start()
}

// Resize updates the screen size without touching the session.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	g.tooSmall = w < minScreenW || h < minScreenH
}

// Step applies the frame's actions in arrival order, then advances time by
// one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.paused = false
		if g.engine.State() == StateIdle {
			g.engine.Start()
		} else {
			g.engine.Restart()
		}
	}
	if in.Has(core.ActionPause) && g.engine.State() == StateActive {
		g.paused = !g.paused
	}

	if !g.paused && !g.tooSmall {
		for _, a := range in.Actions {
			switch a {
			case core.ActionLeft:
				g.engine.MoveLeft()
			case core.ActionRight:
				g.engine.MoveRight()
			case core.ActionRotate, core.ActionUp:
				g.engine.Rotate()
			case core.ActionDown:
				g.engine.SoftDrop()
			case core.ActionHardDrop:
				g.engine.HardDrop()
			}
		}
		g.engine.Tick(g.tick)

		if g.flashTicks > 0 {
			g.flashTicks--
			if g.flashTicks == 0 {
				g.flash = ""
			}
		}
	}

	events := g.pending
	g.pending = nil
	return core.StepResult{State: g.State(), Events: events}
}

// onEvent converts engine events for the platform and drives the flash label.
func (g *Game) onEvent(ev Event) {
	switch ev := ev.(type) {
	case SessionStarted:
		g.flash = ""
		g.flashTicks = 0
		g.pending = append(g.pending, core.Event{Kind: core.EventSessionStarted})
	case SoftDropped:
		g.pending = append(g.pending, core.Event{Kind: core.EventSoftDrop})
	case PieceLanded:
		if label := clearLabel(ev.Lines); label != "" {
			g.flash = label
			g.flashTicks = g.tickRate
		}
		g.pending = append(g.pending, core.Event{
			Kind:  core.EventPieceLanded,
			Lines: ev.Lines,
			Score: ev.Score,
			Level: g.engine.Level(),
		})
	case GameOver:
		g.pending = append(g.pending, core.Event{
			Kind:  core.EventGameOver,
			Lines: ev.Lines,
			Score: ev.Score,
			Level: ev.Level,
		})
	}
}

// clearLabel names a landing by the rows it cleared.
func clearLabel(lines int) string {
	switch {
	case lines <= 0:
		return ""
	case lines == 1:
		return "SINGLE"
	case lines == 2:
		return "DOUBLE"
	case lines == 3:
		return "TRIPLE"
	default:
		return "TETRIS"
	}
}

// State returns the platform view of the session.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.engine.Score(),
		Lines:    g.engine.Lines(),
		Level:    g.engine.Level(),
		GameOver: g.engine.State() == StateGameOver,
		Paused:   g.paused,
	}
}

// Snapshot returns the engine snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.engine.Snapshot()
}

// Engine exposes the underlying engine.
func (g *Game) Engine() *Engine {
	return g.engine
}
