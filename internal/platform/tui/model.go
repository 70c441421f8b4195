package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/snapshot"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// Resizer is implemented by games that can follow a window resize without restarting.
type Resizer interface {
	Resize(w, h int)
}

// Snapshotter is implemented by games that can export their board.
type Snapshotter interface {
	Snapshot() engine.Snapshot
}

// ScreenshotDir is where Ctrl+S writes screenshots.
var ScreenshotDir = filepath.Join("~", ".tetris", "screenshots")

// helpHeight is the row reserved under the game for the key help.
const helpHeight = 1

// runner drives one game: input collection, fixed ticks, score saving.
// Model and GameModel embed it.
type runner struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	scoreSaved bool // Whether score has been saved for current game over
	fixedSeed  bool // seed came from the caller; restarts replay it
	closed     bool
}

func newRunner(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) runner {
	// Use time-based seed if not specified
	fixedSeed := cfg.Seed != 0
	if !fixedSeed {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.TickRate = clampTickRate(cfg.TickRate, core.DefaultConfig().TickRate)
	cfg.ScreenH = max(cfg.ScreenH-helpHeight, 0)

	return runner{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		fixedSeed:  fixedSeed,
	}
}

// resize follows the terminal size, keeping the game running when it can.
func (r *runner) resize(w, h int) {
	r.config.ScreenW = w
	r.config.ScreenH = max(h-helpHeight, 0)
	r.screen.Resize(r.config.ScreenW, r.config.ScreenH)
	r.help.Width = w

	if rs, ok := r.game.(Resizer); ok {
		rs.Resize(r.config.ScreenW, r.config.ScreenH)
		return
	}
	if !r.gameState.GameOver {
		r.game.Reset(r.config)
	}
}

// tick runs one simulation step with the collected input.
func (r *runner) tick() {
	// Restart is honored in any state
	if r.inputFrame.Has(core.ActionRestart) {
		if !r.fixedSeed {
			r.config.Seed = time.Now().UnixNano()
		}
		r.game.Reset(r.config)
		r.gameState = r.game.State()
		r.scoreSaved = false
		r.inputFrame.Clear()
		return
	}

	result := r.game.Step(r.inputFrame)
	r.gameState = result.State

	// Save score on game over (once)
	if r.gameState.GameOver && !r.scoreSaved {
		r.saveScore()
		r.scoreSaved = true
	}

	// Clear input for next frame
	r.inputFrame.Clear()
}

// saveScore records the finished game. Empty games are not recorded.
func (r *runner) saveScore() {
	if r.store == nil || r.gameState.Score <= 0 {
		return
	}
	_, err := r.store.SaveRun(storage.Run{
		GameID: r.game.ID(),
		Score:  r.gameState.Score,
		Level:  r.gameState.Level,
		Lines:  r.gameState.Lines,
	})
	if err != nil && r.logger != nil {
		r.logger.Warn("score not saved", "game", r.game.ID(), "err", err)
	}
}

// close lets the game persist its state, once.
func (r *runner) close() {
	if r.closed {
		return
	}
	r.closed = true
	if c, ok := r.game.(io.Closer); ok {
		if err := c.Close(); err != nil && r.logger != nil {
			r.logger.Warn("game close failed", "game", r.game.ID(), "err", err)
		}
	}
}

// saveScreenshot writes the screen as text and, when the game supports it,
// the board as PNG.
func (r *runner) saveScreenshot() {
	r.game.Render(r.screen)

	dir := expandHome(ScreenshotDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		r.warn("screenshot failed", err)
		return
	}

	base := fmt.Sprintf("%s_%s", r.game.ID(), time.Now().Format("20060102_150405"))
	txt := filepath.Join(dir, base+".txt")
	if err := os.WriteFile(txt, []byte(r.screen.String()), 0o600); err != nil {
		r.warn("screenshot failed", err)
		return
	}

	if s, ok := r.game.(Snapshotter); ok {
		png := filepath.Join(dir, base+".png")
		if err := snapshot.SavePNG(png, s.Snapshot(), snapshot.DefaultCell); err != nil {
			r.warn("png screenshot failed", err)
			return
		}
	}
	if r.logger != nil {
		r.logger.Info("screenshot saved", "path", txt)
	}
}

func (r *runner) warn(msg string, err error) {
	if r.logger != nil {
		r.logger.Warn(msg, "err", err)
	}
}

// view renders the game and the help line.
func (r *runner) view() string {
	r.game.Render(r.screen)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(r.screen) + "\n" + helpStyle.Render(r.help.View(r.keys))
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// Model is the Bubble Tea model for playing one game locally.
type Model struct {
	runner
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	return Model{runner: newRunner(game, store, cfg, logger)}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		m.tick()
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case action == core.ActionBack:
		// Back leaves a finished or paused game; otherwise it pauses.
		if m.gameState.GameOver || m.gameState.Paused {
			m.quitting = true
			return m, tea.Quit
		}
		m.inputFrame.Set(core.ActionPause)
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.view()
}

// Run starts the Bubble Tea program with the given game and closes it on exit.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		m.close()
	} else {
		model.close()
	}
	return err
}
