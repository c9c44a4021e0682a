package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neontris/internal/config"
	"github.com/vovakirdan/neontris/internal/platform/tui"
	"github.com/vovakirdan/neontris/internal/registry"
	"github.com/vovakirdan/neontris/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing. Without an argument the variant comes from the
config's game.variant (classic -> tetris, extended -> tetris_extended).

Controls:
  Left/A/H, Right/D/L  - Move
  Up/W/X/Z/K           - Rotate clockwise
  Down/S/J             - Soft drop
  Space                - Hard drop
  P                    - Pause
  R                    - Restart
  Ctrl+S               - Screenshot
  Esc/B, Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Slower start (1000ms per row)
  normal - Config values as loaded
  hard   - Faster start (500ms per row)
  fixed  - No per-level speedup

Examples:
  neontris play
  neontris play tetris_extended
  neontris play --difficulty hard --seed 42
  neontris play --config ./my-tetris.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameCfg, preset, err := loadConfig()
	if err != nil {
		return err
	}

	gameID, err := defaultGameID(gameCfg)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'neontris list' to see available games", gameID)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	// Scores are best effort: the game still runs without a database
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	game, err := gameFactory(gameCfg)(gameID)
	if err != nil {
		return err
	}

	logger.Info("starting",
		"game", gameID,
		"difficulty", preset,
		"fixed_speed", config.IsFixedPreset(preset),
		"seed", flagSeed,
	)
	return tui.Run(game, runtimeConfig(), tui.Options{
		Store:  store,
		Logger: logger,
		Player: playerName(),
	})
}
