package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Timing: TetrisTiming{
			InitialIntervalMs: 800,
			IntervalStepMs:    50,
			MinIntervalMs:     100,
		},
		Scoring: TetrisScoring{
			LineScores:    []int{100, 300, 500, 800},
			LinesPerLevel: 10,
		},
	}
}
