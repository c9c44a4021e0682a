package main

import (
	"testing"

	"github.com/vovakirdan/neontris/internal/config"
	"github.com/vovakirdan/neontris/internal/games/tetris"
)

func TestDefaultGameID(t *testing.T) {
	tests := []struct {
		variant string
		want    string
		wantErr bool
	}{
		{"", tetris.IDClassic, false},
		{"classic", tetris.IDClassic, false},
		{"extended", tetris.IDExtended, false},
		{"pentomino", "", true},
	}

	for _, tt := range tests {
		cfg := config.DefaultTetrisConfig()
		cfg.Game.Variant = tt.variant
		got, err := defaultGameID(cfg)
		if (err != nil) != tt.wantErr {
			t.Fatalf("defaultGameID(%q) error = %v, wantErr %v", tt.variant, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("defaultGameID(%q) = %q, expected %q", tt.variant, got, tt.want)
		}
	}
}

func TestGameFactoryAppliesConfig(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	cfg.Timing.BaseIntervalMs = 500

	game, err := gameFactory(cfg)(tetris.IDExtended)
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	tg, ok := game.(*tetris.Game)
	if !ok {
		t.Fatalf("factory returned %T, expected *tetris.Game", game)
	}
	if tg.Variant() != tetris.VariantExtended {
		t.Errorf("Variant() = %v, expected extended", tg.Variant())
	}
	if got := tg.Engine().DropInterval().Milliseconds(); got != 500 {
		t.Errorf("DropInterval() = %dms, expected 500ms", got)
	}

	if _, err := gameFactory(cfg)("snake"); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestLoadConfigRejectsUnknownDifficulty(t *testing.T) {
	flagConfig, flagDifficulty = "", "insane"
	t.Cleanup(func() { flagDifficulty = "" })

	if _, _, err := loadConfig(); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}
