package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/neontris/internal/config"
	"github.com/vovakirdan/neontris/internal/core"
	"github.com/vovakirdan/neontris/internal/games/tetris"
	"github.com/vovakirdan/neontris/internal/platform/tui"
	"github.com/vovakirdan/neontris/internal/registry"
)

// newLogger builds the process logger. When the TUI owns the terminal and
// no --log-file was given, output is discarded.
func newLogger(tuiOwnsTerminal bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var (
		w       io.Writer = os.Stderr
		cleanup           = func() {}
	)
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		cleanup = func() { _ = f.Close() }
	case tuiOwnsTerminal:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "neontris",
	})
	return logger, cleanup, nil
}

// loadConfig resolves --config and --difficulty into a validated config.
func loadConfig() (config.TetrisConfig, config.DifficultyPreset, error) {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return cfg, "", err
	}
	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return cfg, "", err
	}
	config.ApplyTetrisPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, preset, err
	}
	return cfg, preset, nil
}

// defaultGameID maps the configured variant to its registry entry.
func defaultGameID(cfg config.TetrisConfig) (string, error) {
	v, err := tetris.ParseVariant(cfg.Game.Variant)
	if err != nil {
		return "", err
	}
	if v == tetris.VariantExtended {
		return tetris.IDExtended, nil
	}
	return tetris.IDClassic, nil
}

// gameFactory creates registry games and applies the loaded tuning to them.
func gameFactory(cfg config.TetrisConfig) tui.GameFactory {
	return func(id string) (registry.Game, error) {
		game, err := registry.Create(id)
		if err != nil {
			return nil, err
		}
		if tg, ok := game.(*tetris.Game); ok {
			tg.Configure(cfg)
		}
		return game, nil
	}
}

// runtimeConfig returns the runtime config sized to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// playerName identifies the local player in score rows.
func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}
