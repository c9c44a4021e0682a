// Package config provides YAML-based game configuration loading and
// difficulty management for neontris.
package config

import (
	"errors"
	"fmt"
)

// Variant names accepted in the game section.
const (
	VariantClassic  = "classic"
	VariantExtended = "extended"
)

// TetrisConfig contains all configuration for the falling-block game.
type TetrisConfig struct {
	Game    TetrisGame    `yaml:"game"`
	Timing  TetrisTiming  `yaml:"timing"`
	Scoring TetrisScoring `yaml:"scoring"`
}

// TetrisGame defines session-level options.
type TetrisGame struct {
	Variant       string `yaml:"variant"`         // "classic" or "extended"
	AutoRestartMs int    `yaml:"auto_restart_ms"` // 0 = wait for restart
}

// TetrisTiming defines the gravity curve in milliseconds.
type TetrisTiming struct {
	BaseIntervalMs int `yaml:"base_interval_ms"` // Interval at level 0
	MinIntervalMs  int `yaml:"min_interval_ms"`  // Hard floor
	LevelStepMs    int `yaml:"level_step_ms"`    // Reduction per level
}

// TetrisScoring defines points and level progression.
type TetrisScoring struct {
	LinePoints    int `yaml:"line_points"`     // Points per row before the level multiplier
	LinesPerLevel int `yaml:"lines_per_level"` // Rows needed for each level
}

// Validate checks the configuration for values the engine cannot run with.
func (c TetrisConfig) Validate() error {
	var errs []error

	switch c.Game.Variant {
	case VariantClassic, VariantExtended:
	default:
		errs = append(errs, fmt.Errorf("game.variant: unknown variant %q", c.Game.Variant))
	}
	if c.Game.AutoRestartMs < 0 {
		errs = append(errs, errors.New("game.auto_restart_ms: must not be negative"))
	}
	if c.Timing.BaseIntervalMs <= 0 {
		errs = append(errs, errors.New("timing.base_interval_ms: must be positive"))
	}
	if c.Timing.MinIntervalMs <= 0 {
		errs = append(errs, errors.New("timing.min_interval_ms: must be positive"))
	}
	if c.Timing.MinIntervalMs > c.Timing.BaseIntervalMs {
		errs = append(errs, errors.New("timing.min_interval_ms: must not exceed base_interval_ms"))
	}
	if c.Timing.LevelStepMs < 0 {
		errs = append(errs, errors.New("timing.level_step_ms: must not be negative"))
	}
	if c.Scoring.LinePoints <= 0 {
		errs = append(errs, errors.New("scoring.line_points: must be positive"))
	}
	if c.Scoring.LinesPerLevel <= 0 {
		errs = append(errs, errors.New("scoring.lines_per_level: must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid tetris config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset converts a CLI value to a preset.
// The empty string means "use the config as loaded".
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IsFixedPreset returns true if the preset disables per-level speedup.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyTetrisPreset modifies the timing based on a difficulty preset.
// Normal and the empty preset leave the loaded values untouched.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.BaseIntervalMs = 1000
	case DifficultyHard:
		cfg.Timing.BaseIntervalMs = 500
	case DifficultyFixed:
		cfg.Timing.LevelStepMs = 0
	}
	if cfg.Timing.MinIntervalMs > cfg.Timing.BaseIntervalMs {
		cfg.Timing.MinIntervalMs = cfg.Timing.BaseIntervalMs
	}
}
