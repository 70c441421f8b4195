package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

func TestDefaultsMatchEngine(t *testing.T) {
	cfg := DefaultTetrisConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, engine.DefaultRules(), cfg.ToRules())
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseTetris(defaultTetrisYAML)
	require.NoError(t, err)
	assert.Equal(t, DefaultTetrisConfig(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TetrisConfig)
	}{
		{"zero initial", func(c *TetrisConfig) { c.Timing.InitialIntervalMs = 0 }},
		{"zero minimum", func(c *TetrisConfig) { c.Timing.MinIntervalMs = 0 }},
		{"negative step", func(c *TetrisConfig) { c.Timing.IntervalStepMs = -5 }},
		{"minimum above initial", func(c *TetrisConfig) { c.Timing.MinIntervalMs = 900 }},
		{"short score table", func(c *TetrisConfig) { c.Scoring.LineScores = []int{100, 200} }},
		{"negative score", func(c *TetrisConfig) { c.Scoring.LineScores[2] = -1 }},
		{"no lines per level", func(c *TetrisConfig) { c.Scoring.LinesPerLevel = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("timing:\n  initial_interval_ms: 600\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadTetris(path)
	require.NoError(t, err)

	assert.Equal(t, 600, cfg.Timing.InitialIntervalMs)
	assert.Equal(t, 50, cfg.Timing.IntervalStepMs, "omitted keys keep defaults")
	assert.Equal(t, 600*time.Millisecond, cfg.ToRules().InitialInterval)
}

func TestKicksAreNotConfigurable(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{
		"empty.yaml":    "kicks: []\n",
		"reversed.yaml": "kicks: [2, -2]\n",
	} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

		cfg, err := LoadTetris(path)
		require.NoError(t, err, name)
		assert.Equal(t, []int{-1, 1, -2, 2}, cfg.ToRules().Kicks, name)
	}
}

func TestToRulesKicksDoNotAlias(t *testing.T) {
	r := DefaultTetrisConfig().ToRules()
	r.Kicks[0] = 99
	assert.Equal(t, []int{-1, 1, -2, 2}, engine.DefaultKicks)
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadTetris(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("timing: [1, 2"), 0o644))
	_, err = LoadTetris(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("scoring:\n  lines_per_level: 0\n"), 0o644))
	_, err = LoadTetris(invalid)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTetrisConfig(), cfg)
}

func TestLoadLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", tetrisFile), []byte("scoring:\n  lines_per_level: 5\n"), 0o644))

	cfg, err := LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Scoring.LinesPerLevel)
}

func TestApplyTetrisPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantInitial int
		wantStep    int
	}{
		{DifficultyEasy, 1000, 50},
		{DifficultyNormal, 800, 50},
		{DifficultyHard, 500, 50},
		{DifficultyFixed, 800, 0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			ApplyTetrisPreset(&cfg, tc.preset)
			assert.Equal(t, tc.wantInitial, cfg.Timing.InitialIntervalMs)
			assert.Equal(t, tc.wantStep, cfg.Timing.IntervalStepMs)
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyNormal, p)

	p, err = ParsePreset("hard")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, p)

	_, err = ParsePreset("nightmare")
	assert.Error(t, err)
}
