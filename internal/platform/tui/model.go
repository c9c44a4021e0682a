package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neontris/internal/core"
	"github.com/vovakirdan/neontris/internal/registry"
	"github.com/vovakirdan/neontris/internal/storage"
)

// helpHeight is the number of rows reserved below the game for key help.
const helpHeight = 1

// Options configures a game Model.
type Options struct {
	Store     *storage.Store // nil disables score saving
	Logger    *log.Logger    // nil discards logs
	Player    string
	SessionID string
	Bell      io.Writer // receives BEL on multi-line clears; nil disables
	// ExitOnBack quits the program on the back key instead of
	// returning to a menu.
	ExitOnBack bool
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	logger     *log.Logger
	keys       *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	best       int
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		config:     cfg,
		opts:       opts,
		logger:     logger.With("game", game.ID()),
		keys:       NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
}

func gameHeight(h int) int {
	return max(h-helpHeight, 0)
}

// gameConfig is the runtime config as seen by the game: the help bar
// is not part of its screen.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = gameHeight(cfg.ScreenH)
	return cfg
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the key's action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil

	case key.Matches(msg, m.keys.Keys.Back):
		if m.opts.ExitOnBack {
			m.quitting = true
			return m, tea.Quit
		}
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize follows the terminal size. Games that cannot resize in
// place are restarted unless the session is already over.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, gameHeight(msg.Height))
	} else if !m.gameState.GameOver {
		m.game.Reset(m.gameConfig())
	}

	return m, nil
}

// handleTick runs one simulation step with the queued input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	for _, ev := range result.Events {
		m.handleEvent(ev)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// handleEvent turns game events into logs, bells and saved scores.
func (m *Model) handleEvent(ev core.Event) {
	switch ev.Kind {
	case core.EventSessionStarted:
		m.scoreSaved = false
		m.logger.Debug("session started")

	case core.EventPieceLanded:
		if ev.Lines == 0 {
			return
		}
		m.logger.Debug("lines cleared", "lines", ev.Lines, "score", ev.Score, "level", ev.Level)
		if ev.Lines >= 2 && m.opts.Bell != nil {
			//nolint:errcheck // a missed bell is harmless
			io.WriteString(m.opts.Bell, "\a")
		}

	case core.EventGameOver:
		m.logger.Info("game over", "score", ev.Score, "lines", ev.Lines, "level", ev.Level)
		if !m.scoreSaved {
			m.saveScore(ev)
			m.scoreSaved = true
		}
	}
}

// saveScore records a finished session. Best effort: failures are logged.
func (m *Model) saveScore(ev core.Event) {
	store := m.opts.Store
	if store == nil {
		return
	}
	if ev.Score > 0 {
		_, err := store.SaveScore(storage.ScoreEntry{
			GameID:    m.game.ID(),
			Player:    m.opts.Player,
			SessionID: m.opts.SessionID,
			Score:     ev.Score,
			Lines:     ev.Lines,
			Level:     ev.Level,
		})
		if err != nil {
			m.logger.Warn("could not save score", "error", err)
		}
	}

	best, err := store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not read high score", "error", err)
		return
	}
	m.best = best
}

// saveScreenshot writes the current screen as plain text under
// ~/.neontris/screenshots and returns the file path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".neontris", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the game screen and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.gameState.GameOver && m.best > 0 {
		m.screen.DrawTextCentered(m.screen.Height()-1, fmt.Sprintf("Best %d", m.best))
	}

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys))
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for one game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	if opts.Bell == nil {
		opts.Bell = os.Stdout
	}
	opts.ExitOnBack = true

	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
