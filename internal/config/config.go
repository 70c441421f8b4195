// Package config provides YAML-based game configuration loading and
// difficulty presets for the tetris engine.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// TetrisConfig contains the tunable rules of the tetris engine.
// The wall kick sequence is not tunable; it is always engine.DefaultKicks.
type TetrisConfig struct {
	Timing  TetrisTiming  `yaml:"timing"`
	Scoring TetrisScoring `yaml:"scoring"`
}

// TetrisTiming defines the gravity interval progression in milliseconds.
type TetrisTiming struct {
	InitialIntervalMs int `yaml:"initial_interval_ms"`
	IntervalStepMs    int `yaml:"interval_step_ms"` // Subtracted per level
	MinIntervalMs     int `yaml:"min_interval_ms"`
}

// TetrisScoring defines line clear points and level pacing.
type TetrisScoring struct {
	LineScores    []int `yaml:"line_scores"` // Points for 1..4 rows, multiplied by level
	LinesPerLevel int   `yaml:"lines_per_level"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialIntervalForPreset returns the starting gravity interval for a preset.
// Zero means keep the configured value.
func InitialIntervalForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 1000
	case DifficultyNormal:
		return 800
	case DifficultyHard:
		return 500
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables the level speed-up.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Timing.IntervalStepMs = 0
		return
	}
	if ms := InitialIntervalForPreset(preset); ms > 0 {
		cfg.Timing.InitialIntervalMs = ms
		if cfg.Timing.MinIntervalMs > ms {
			cfg.Timing.MinIntervalMs = ms
		}
	}
}

// Validate checks the config for values the engine cannot run with.
func (c TetrisConfig) Validate() error {
	t := c.Timing
	switch {
	case t.InitialIntervalMs <= 0:
		return fmt.Errorf("%w: initial_interval_ms must be positive, got %d", ErrInvalid, t.InitialIntervalMs)
	case t.MinIntervalMs <= 0:
		return fmt.Errorf("%w: min_interval_ms must be positive, got %d", ErrInvalid, t.MinIntervalMs)
	case t.IntervalStepMs < 0:
		return fmt.Errorf("%w: interval_step_ms must not be negative, got %d", ErrInvalid, t.IntervalStepMs)
	case t.MinIntervalMs > t.InitialIntervalMs:
		return fmt.Errorf("%w: min_interval_ms %d above initial_interval_ms %d", ErrInvalid, t.MinIntervalMs, t.InitialIntervalMs)
	}

	if n := len(c.Scoring.LineScores); n != 4 {
		return fmt.Errorf("%w: line_scores needs 4 entries, got %d", ErrInvalid, n)
	}
	for i, s := range c.Scoring.LineScores {
		if s < 0 {
			return fmt.Errorf("%w: line_scores[%d] is negative", ErrInvalid, i)
		}
	}
	if c.Scoring.LinesPerLevel < 1 {
		return fmt.Errorf("%w: lines_per_level must be at least 1, got %d", ErrInvalid, c.Scoring.LinesPerLevel)
	}
	return nil
}

// ToRules converts the config into engine rules.
func (c TetrisConfig) ToRules() engine.Rules {
	r := engine.Rules{
		InitialInterval: time.Duration(c.Timing.InitialIntervalMs) * time.Millisecond,
		IntervalStep:    time.Duration(c.Timing.IntervalStepMs) * time.Millisecond,
		MinInterval:     time.Duration(c.Timing.MinIntervalMs) * time.Millisecond,
		LinesPerLevel:   c.Scoring.LinesPerLevel,
		Kicks:           append([]int(nil), engine.DefaultKicks...),
	}
	copy(r.LineScores[:], c.Scoring.LineScores)
	return r
}
