package config

import "time"

// DifficultyManager derives level, gravity and line-clear points
// from the timing and scoring sections.
type DifficultyManager struct {
	timing  TetrisTiming
	scoring TetrisScoring
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg TetrisConfig) *DifficultyManager {
	return &DifficultyManager{
		timing:  cfg.Timing,
		scoring: cfg.Scoring,
	}
}

// IsEnabled returns whether the drop interval shrinks as the level rises.
func (d *DifficultyManager) IsEnabled() bool {
	return d.timing.LevelStepMs > 0
}

// Level returns the level reached after clearing the given number of lines.
func (d *DifficultyManager) Level(lines int) int {
	if lines <= 0 || d.scoring.LinesPerLevel <= 0 {
		return 0
	}
	return lines / d.scoring.LinesPerLevel
}

// Interval returns the time between automatic drops at the given level.
func (d *DifficultyManager) Interval(level int) time.Duration {
	ms := d.timing.BaseIntervalMs - max(level, 0)*d.timing.LevelStepMs
	ms = max(ms, d.timing.MinIntervalMs)
	return time.Duration(ms) * time.Millisecond
}

// Points returns the score awarded for clearing rows at the given level.
// The level is the one in effect before the clear.
func (d *DifficultyManager) Points(rows, level int) int {
	if rows <= 0 {
		return 0
	}
	return rows * d.scoring.LinePoints * (level + 1)
}
