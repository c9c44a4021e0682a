package tui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neontris/internal/core"
	"github.com/vovakirdan/neontris/internal/storage"
)

// scriptedGame replays queued events and records what the model sends it.
type scriptedGame struct {
	state   core.GameState
	queued  []core.Event
	frames  [][]core.Action
	resets  int
	resized [2]int
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) { g.resets++ }

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone().Actions)
	events := g.queued
	g.queued = nil
	for _, ev := range events {
		switch ev.Kind {
		case core.EventGameOver:
			g.state.GameOver = true
		case core.EventSessionStarted:
			g.state = core.GameState{}
		}
	}
	return core.StepResult{State: g.state, Events: events}
}

func (g *scriptedGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "scripted") }
func (g *scriptedGame) State() core.GameState   { return g.state }
func (g *scriptedGame) Resize(w, h int)         { g.resized = [2]int{w, h} }

func newTestModel(t *testing.T, opts Options) (Model, *scriptedGame) {
	t.Helper()
	g := &scriptedGame{}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	m := NewModel(g, cfg, opts)
	m.Init()
	return m, g
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm
}

func TestModelForwardsKeysOnTick(t *testing.T) {
	m, g := newTestModel(t, Options{})
	if g.resets != 1 {
		t.Fatalf("Init() reset the game %d times, expected 1", g.resets)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(t, m, TickMsg{})
	update(t, m, TickMsg{})

	if len(g.frames) != 2 {
		t.Fatalf("game stepped %d times, expected 2", len(g.frames))
	}
	want := []core.Action{core.ActionLeft, core.ActionHardDrop}
	if len(g.frames[0]) != len(want) || g.frames[0][0] != want[0] || g.frames[0][1] != want[1] {
		t.Errorf("first frame = %v, expected %v", g.frames[0], want)
	}
	if len(g.frames[1]) != 0 {
		t.Errorf("second frame = %v, expected empty", g.frames[1])
	}
}

func TestModelSavesScoreOncePerSession(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m, g := newTestModel(t, Options{Store: store, Player: "alice", SessionID: "s-1"})

	g.queued = []core.Event{{Kind: core.EventGameOver, Score: 1500, Lines: 12, Level: 1}}
	m = update(t, m, TickMsg{})
	g.queued = []core.Event{{Kind: core.EventGameOver, Score: 1500, Lines: 12, Level: 1}}
	m = update(t, m, TickMsg{})

	scores, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, expected 1", len(scores))
	}
	got := scores[0]
	if got.Score != 1500 || got.Lines != 12 || got.Level != 1 || got.Player != "alice" || got.SessionID != "s-1" {
		t.Errorf("saved entry = %+v", got)
	}
	if m.best != 1500 {
		t.Errorf("best = %d, expected 1500", m.best)
	}
	if !strings.Contains(m.View(), "Best 1500") {
		t.Error("game over view should show the best score")
	}

	// A new session re-arms saving.
	g.queued = []core.Event{{Kind: core.EventSessionStarted}}
	m = update(t, m, TickMsg{})
	g.queued = []core.Event{{Kind: core.EventGameOver, Score: 300, Lines: 3}}
	update(t, m, TickMsg{})

	if all, _ := store.AllScores("scripted"); len(all) != 2 {
		t.Errorf("saved %d scores after second session, expected 2", len(all))
	}
}

func TestModelSkipsZeroScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m, g := newTestModel(t, Options{Store: store})
	g.queued = []core.Event{{Kind: core.EventGameOver}}
	update(t, m, TickMsg{})

	if all, _ := store.AllScores("scripted"); len(all) != 0 {
		t.Errorf("saved %d zero scores, expected none", len(all))
	}
}

func TestModelRingsBellOnMultiLineClear(t *testing.T) {
	var bell bytes.Buffer
	m, g := newTestModel(t, Options{Bell: &bell})

	g.queued = []core.Event{{Kind: core.EventPieceLanded, Lines: 1}}
	m = update(t, m, TickMsg{})
	if bell.Len() != 0 {
		t.Errorf("single clear rang the bell")
	}

	g.queued = []core.Event{{Kind: core.EventPieceLanded, Lines: 4}}
	update(t, m, TickMsg{})
	if bell.String() != "\a" {
		t.Errorf("bell output = %q, expected one BEL", bell.String())
	}
}

func TestModelBackKey(t *testing.T) {
	m, g := newTestModel(t, Options{})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("back during play should be ignored")
	}

	g.queued = []core.Event{{Kind: core.EventGameOver, Score: 10}}
	m = update(t, m, TickMsg{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back after game over should return to menu")
	}

	standalone, _ := newTestModel(t, Options{ExitOnBack: true})
	standalone = update(t, standalone, runeKey("b"))
	if !standalone.IsQuitting() {
		t.Error("standalone back should quit")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	next, cmd := m.Update(runeKey("q"))
	if !next.(Model).IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelResizeReservesHelpRow(t *testing.T) {
	m, g := newTestModel(t, Options{})
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if g.resized != [2]int{100, 40 - helpHeight} {
		t.Errorf("game resized to %v, expected [100 %d]", g.resized, 40-helpHeight)
	}
	if g.resets != 1 {
		t.Errorf("resizable game was reset %d times, expected 1", g.resets)
	}
	if m.screen.Height() != 40-helpHeight {
		t.Errorf("screen height = %d, expected %d", m.screen.Height(), 40-helpHeight)
	}
}
