package tetris

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/neontris/internal/config"
	"github.com/vovakirdan/neontris/internal/core"
	"github.com/vovakirdan/neontris/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345}
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestRegistryEntries(t *testing.T) {
	require.True(t, registry.Exists(IDClassic))
	require.True(t, registry.Exists(IDExtended))

	g, err := registry.Create(IDExtended)
	require.NoError(t, err)
	tg, ok := g.(*Game)
	require.True(t, ok)
	assert.Equal(t, VariantExtended, tg.Variant())
	assert.Equal(t, "Neontris Extended", g.Title())
}

func TestNewFromConfig(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	cfg.Game.Variant = config.VariantExtended
	g, err := NewFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, IDExtended, g.ID())

	cfg.Game.Variant = "nope"
	_, err = NewFromConfig(cfg)
	assert.Error(t, err)
}

func TestFirstStepReportsSessionStart(t *testing.T) {
	g := NewClassic()
	g.Reset(testRuntime())

	res := g.Step(frame())
	require.NotEmpty(t, res.Events)
	assert.Equal(t, core.EventSessionStarted, res.Events[0].Kind)

	res = g.Step(frame())
	assert.Empty(t, res.Events)
}

func TestStepAppliesActionsInOrder(t *testing.T) {
	g := NewClassic()
	g.Reset(testRuntime())
	x := g.Snapshot().Piece.X

	g.Step(frame(core.ActionLeft, core.ActionLeft, core.ActionRight))
	assert.Equal(t, x-1, g.Snapshot().Piece.X)
}

func TestStepDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		switch {
		case i%40 == 0:
			inputs[i] = frame(core.ActionHardDrop)
		case i%7 == 0:
			inputs[i] = frame(core.ActionLeft)
		case i%11 == 0:
			inputs[i] = frame(core.ActionRotate)
		case i%13 == 0:
			inputs[i] = frame(core.ActionRight, core.ActionRight)
		default:
			inputs[i] = frame()
		}
	}

	run := func() Snapshot {
		g := NewClassic()
		g.Reset(testRuntime())
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	assert.Equal(t, run(), run())
}

func TestHardDropReportsLanding(t *testing.T) {
	g := NewClassic()
	g.Reset(testRuntime())
	g.Step(frame())

	res := g.Step(frame(core.ActionHardDrop))

	kinds := make([]core.EventKind, 0, len(res.Events))
	for _, ev := range res.Events {
		kinds = append(kinds, ev.Kind)
	}
	assert.Contains(t, kinds, core.EventPieceLanded)
	assert.NotContains(t, kinds, core.EventSoftDrop)
}

func TestPauseStopsGravity(t *testing.T) {
	g := NewClassic()
	g.Reset(testRuntime())

	res := g.Step(frame(core.ActionPause))
	require.True(t, res.State.Paused)
	y := g.Snapshot().Piece.Y

	for range 200 {
		g.Step(frame(core.ActionLeft))
	}
	assert.Equal(t, y, g.Snapshot().Piece.Y)

	res = g.Step(frame(core.ActionPause))
	assert.False(t, res.State.Paused)
	for range 60 {
		g.Step(frame())
	}
	assert.Greater(t, g.Snapshot().Piece.Y, y)
}

func TestRestartAfterGameOver(t *testing.T) {
	g := NewClassic()
	g.Reset(testRuntime())
	e := g.Engine()
	e.piece = nil
	fillRow(&e.board, 0, ShapeZ)
	e.spawnShape(ShapeT)
	require.True(t, g.State().GameOver)

	res := g.Step(frame(core.ActionPause))
	assert.False(t, res.State.Paused, "pause is ignored after game over")

	res = g.Step(frame(core.ActionRestart))
	assert.False(t, res.State.GameOver)
	assert.Zero(t, res.State.Score)
}

func TestGameOverEventCarriesTotals(t *testing.T) {
	g := NewClassic()
	g.Reset(testRuntime())
	g.Step(frame())
	e := g.Engine()
	e.score, e.lines, e.level = 900, 7, 0
	e.piece = nil
	fillRow(&e.board, 0, ShapeZ)
	e.spawnShape(ShapeO)

	res := g.Step(frame())
	require.Len(t, res.Events, 1)
	assert.Equal(t, core.Event{Kind: core.EventGameOver, Score: 900, Lines: 7}, res.Events[0])
}

func TestClearLabel(t *testing.T) {
	assert.Equal(t, "", clearLabel(0))
	assert.Equal(t, "SINGLE", clearLabel(1))
	assert.Equal(t, "DOUBLE", clearLabel(2))
	assert.Equal(t, "TRIPLE", clearLabel(3))
	assert.Equal(t, "TETRIS", clearLabel(4))
}

func TestFlashLabelExpires(t *testing.T) {
	g := NewClassic()
	g.Reset(testRuntime())
	g.Step(frame())
	landWithRows(t, g.Engine(), 2)

	assert.Equal(t, "DOUBLE", g.flash)
	res := g.Step(frame())
	var landed bool
	for _, ev := range res.Events {
		if ev.Kind == core.EventPieceLanded && ev.Lines == 2 {
			landed = true
		}
	}
	assert.True(t, landed)

	for range 60 {
		g.Step(frame())
	}
	assert.Empty(t, g.flash)
}

func TestRenderShowsBoardAndHUD(t *testing.T) {
	g := NewClassic()
	g.Reset(testRuntime())
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()

	assert.Contains(t, out, "Neontris")
	assert.Contains(t, out, "SCORE")
	assert.Contains(t, out, "LEVEL")
	assert.Contains(t, out, "800ms")
	assert.Contains(t, out, "┌")
}

func TestRenderTooSmall(t *testing.T) {
	g := NewClassic()
	cfg := testRuntime()
	cfg.ScreenW, cfg.ScreenH = 30, 10
	g.Reset(cfg)
	screen := core.NewScreen(30, 10)

	g.Render(screen)
	assert.True(t, strings.Contains(screen.String(), "too small"))

	y := g.Snapshot().Piece.Y
	g.Step(frame(core.ActionHardDrop))
	assert.Equal(t, y, g.Snapshot().Piece.Y, "game is frozen while too small")
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := NewClassic()
	g.Reset(testRuntime())
	e := g.Engine()
	e.piece = nil
	fillRow(&e.board, 0, ShapeZ)
	e.spawnShape(ShapeO)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "GAME OVER")
}
