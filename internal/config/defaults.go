package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Game: TetrisGame{
			Variant:       VariantClassic,
			AutoRestartMs: 0,
		},
		Timing: TetrisTiming{
			BaseIntervalMs: 800,
			MinIntervalMs:  120,
			LevelStepMs:    60,
		},
		Scoring: TetrisScoring{
			LinePoints:    100,
			LinesPerLevel: 10,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultTetrisYAML
}
