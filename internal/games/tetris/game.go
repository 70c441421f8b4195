// Package tetris adapts the falling-block engine to the platform's Game
// interface: fixed ticks become elapsed time, platform actions become
// engine actions and the engine snapshot is drawn into a screen buffer.
package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic" // Gravity speeds up every level
	ModeFixed   Mode = "fixed"   // Gravity stays at the initial interval
)

// Package-level settings applied on the next Reset (set by the CLI before creation).
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	storeFactory     func(gameID string) engine.HighScoreStore
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are ignored.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetHighScoreStore sets how games obtain their high score store.
// A nil factory leaves new games without persistence.
func SetHighScoreStore(f func(gameID string) engine.HighScoreStore) {
	storeFactory = f
}

// Layout of the play area in screen cells.
const (
	cellW  = 2                      // Each board cell is two characters wide
	wellW  = engine.Width*cellW + 2 // Board plus borders
	wellH  = engine.Height + 2      // Board plus borders
	panelW = 16                     // Side panel with preview and HUD
	minW   = wellW + 2 + panelW     // Well, gap, panel
	minH   = wellH
)

// Game implements registry.Game on top of engine.Engine.
type Game struct {
	mode    Mode
	eng     *engine.Engine
	store   engine.HighScoreStore
	runtime core.RuntimeConfig
	dt      time.Duration

	tooSmall bool
}

// New creates a classic game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewFixed creates a game without the per-level speed-up.
func NewFixed() *Game {
	return &Game{mode: ModeFixed}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
	registry.Register("tetris_fixed", func() registry.Game {
		return NewFixed()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeFixed {
		return "tetris_fixed"
	}
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeFixed {
		return "Tetris (Fixed Speed)"
	}
	return "Tetris"
}

// rules loads the configured rules for this mode, falling back to defaults.
func (g *Game) rules() engine.Rules {
	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	if difficultyPreset != "" {
		config.ApplyTetrisPreset(&cfg, difficultyPreset)
	}
	if g.mode == ModeFixed {
		config.ApplyTetrisPreset(&cfg, config.DifficultyFixed)
	}
	return cfg.ToRules()
}

// Reset initializes or restarts the game.
// The first call builds the engine; later calls start a new game on it so the
// session high score carries over.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.tooSmall = runtime.ScreenW < minW || runtime.ScreenH < minH

	rate := runtime.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	g.dt = time.Second / time.Duration(rate)

	if g.eng == nil {
		if storeFactory != nil {
			g.store = storeFactory(g.ID())
		}
		g.eng = engine.New(engine.Config{
			Rules: g.rules(),
			Seed:  runtime.Seed,
			Store: g.store,
		})
	} else {
		if runtime.Seed != 0 {
			g.eng.Reseed(runtime.Seed)
		}
		g.eng.Reset()
	}
}

// Resize adapts to a new screen size without touching the game.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	g.tooSmall = w < minW || h < minH
}

// actionFor maps a platform action to an engine action.
func actionFor(a core.Action) engine.Action {
	switch a {
	case core.ActionLeft:
		return engine.ActionMoveLeft
	case core.ActionRight:
		return engine.ActionMoveRight
	case core.ActionDown:
		return engine.ActionSoftDrop
	case core.ActionDrop:
		return engine.ActionHardDrop
	case core.ActionRotate:
		return engine.ActionRotate
	case core.ActionPause:
		return engine.ActionTogglePause
	case core.ActionRestart:
		return engine.ActionReset
	case core.ActionQuit:
		return engine.ActionQuit
	default:
		return engine.ActionNone
	}
}

// Step applies this frame's actions in order, then advances gravity by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	changed := false
	for _, a := range in.Actions {
		if g.eng.Apply(actionFor(a)) {
			changed = true
		}
	}
	if g.eng.Tick(g.dt) {
		changed = true
	}

	return core.StepResult{State: g.State(), Changed: changed}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.eng == nil {
		return core.GameState{}
	}
	phase := g.eng.Phase()
	return core.GameState{
		Score:     g.eng.Score(),
		Level:     g.eng.Level(),
		Lines:     g.eng.Lines(),
		HighScore: g.eng.HighScore(),
		GameOver:  phase == engine.PhaseGameOver,
		Paused:    phase == engine.PhasePaused,
	}
}

// Snapshot returns the engine snapshot for screenshots and tests.
func (g *Game) Snapshot() engine.Snapshot {
	return g.eng.Snapshot()
}

// Close persists the session high score. Finished runs are recorded by the
// platform, so this is the only write. Safe to call more than once.
func (g *Game) Close() error {
	if g.eng != nil {
		g.eng.Close()
	}
	return nil
}
