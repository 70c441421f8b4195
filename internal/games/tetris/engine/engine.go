package engine

import (
	"math/rand"
	"time"
)

// Phase is the lifecycle state of a game.
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Action is a discrete player command.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
	ActionHardDrop
	ActionRotate
	ActionTogglePause
	ActionReset
	ActionQuit
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionRotate:
		return "Rotate"
	case ActionTogglePause:
		return "TogglePause"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// HighScoreStore persists the best score between sessions.
// LoadHighScore never fails: a missing or unreadable record reads as 0.
type HighScoreStore interface {
	LoadHighScore() int
	SaveHighScore(score int)
}

// Config configures a new Engine.
type Config struct {
	Rules Rules
	Seed  int64
	Store HighScoreStore // optional
}

// Engine is one game: the board, the falling and on-deck pieces, progress and phase.
// It is not safe for concurrent use; the caller serializes Tick and Apply.
type Engine struct {
	rules Rules
	rng   *rand.Rand
	store HighScoreStore

	board    Board
	spawner  *Spawner
	current  Piece
	progress Progress
	elapsed  time.Duration
	phase    Phase

	highScore int
	pieces    int // pieces locked this game
	softRows  int // rows descended by soft drop this game
	hardRows  int // rows descended by hard drop this game
	saved     bool
}

// New creates an engine, loads the stored high score once and starts a game.
func New(cfg Config) *Engine {
	e := &Engine{
		rules: cfg.Rules,
		rng:   rand.New(rand.NewSource(cfg.Seed)),
		store: cfg.Store,
	}
	if e.rules.LinesPerLevel == 0 {
		e.rules = DefaultRules()
	}
	if e.store != nil {
		e.highScore = max(e.store.LoadHighScore(), 0)
	}
	e.Reset()
	return e
}

// Reset starts a fresh game: empty board, zeroed counters, a new piece pair.
// The session high score and the random stream carry over.
func (e *Engine) Reset() {
	e.board = Board{}
	e.progress = newProgress(e.rules)
	e.elapsed = 0
	e.phase = PhasePlaying
	e.pieces = 0
	e.softRows = 0
	e.hardRows = 0
	e.spawner = NewSpawner(e.rng)
	e.spawn()
}

// Reseed replaces the random stream. It takes effect from the next Reset;
// the current and next pieces are left alone.
func (e *Engine) Reseed(seed int64) {
	e.rng = rand.New(rand.NewSource(seed))
}

// spawn brings the on-deck piece into play and ends the game if it does not fit.
func (e *Engine) spawn() {
	e.current = e.spawner.SpawnNext()
	if Collides(&e.board, e.current, 0, 0) {
		e.phase = PhaseGameOver
	}
}

// Tick advances the drop timer by dt. When the accumulated time reaches the
// drop interval the current piece falls one row, locking if it cannot.
// Returns true if a drop was attempted.
func (e *Engine) Tick(dt time.Duration) bool {
	if e.phase != PhasePlaying {
		return false
	}
	e.elapsed += dt
	if e.elapsed < e.progress.Interval {
		return false
	}
	e.stepDown()
	e.elapsed = 0
	return true
}

// Apply performs a player action. Returns true if the game state changed.
// Rejected moves are not errors; they simply return false.
func (e *Engine) Apply(a Action) bool {
	switch a {
	case ActionReset:
		e.Reset()
		return true
	case ActionTogglePause:
		return e.togglePause()
	case ActionNone, ActionQuit:
		return false
	}

	if e.phase != PhasePlaying {
		return false
	}

	switch a {
	case ActionMoveLeft:
		return e.shift(-1)
	case ActionMoveRight:
		return e.shift(1)
	case ActionSoftDrop:
		if e.stepDown() {
			e.softRows++
		}
		return true
	case ActionHardDrop:
		e.hardDrop()
		return true
	case ActionRotate:
		return Rotate(&e.board, &e.current, e.rules.Kicks)
	}
	return false
}

func (e *Engine) togglePause() bool {
	switch e.phase {
	case PhasePlaying:
		e.phase = PhasePaused
		return true
	case PhasePaused:
		e.phase = PhasePlaying
		return true
	}
	return false
}

func (e *Engine) shift(dx int) bool {
	if Collides(&e.board, e.current, dx, 0) {
		return false
	}
	e.current.X += dx
	return true
}

// stepDown moves the piece one row down, or settles it when blocked.
// Returns true if the piece moved.
func (e *Engine) stepDown() bool {
	if !Collides(&e.board, e.current, 0, 1) {
		e.current.Y++
		return true
	}
	e.settle()
	return false
}

func (e *Engine) hardDrop() {
	for !Collides(&e.board, e.current, 0, 1) {
		e.current.Y++
		e.hardRows++
	}
	e.settle()
	e.elapsed = 0
}

// settle locks the current piece, scores cleared rows and spawns the next piece.
// A piece that comes to rest with any cell above the well ends the game
// and is not locked.
func (e *Engine) settle() {
	for _, c := range e.current.Cells() {
		if c.Y < 0 {
			e.phase = PhaseGameOver
			return
		}
	}

	e.board.Lock(e.current)
	e.pieces++
	e.progress.Award(e.rules, e.board.ClearFullRows())
	if e.progress.Score > e.highScore {
		e.highScore = e.progress.Score
	}
	e.spawn()
}

// Close saves the high score through the store, once. Later calls do nothing.
func (e *Engine) Close() {
	if e.saved || e.store == nil {
		return
	}
	e.saved = true
	e.store.SaveHighScore(e.highScore)
}

// Cell returns the locked value at (x, y), or ErrOutOfRange.
func (e *Engine) Cell(x, y int) (uint8, error) {
	return e.board.Cell(x, y)
}

// Board returns a copy of the locked grid.
func (e *Engine) Board() Board {
	return e.board
}

// Current returns the falling piece.
func (e *Engine) Current() Piece {
	return e.current
}

// Next returns the on-deck piece.
func (e *Engine) Next() Piece {
	return e.spawner.Next()
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.progress.Score
}

// Level returns the current level, starting at 1.
func (e *Engine) Level() int {
	return e.progress.Level
}

// Lines returns the total lines cleared this game.
func (e *Engine) Lines() int {
	return e.progress.Lines
}

// Interval returns the current drop interval.
func (e *Engine) Interval() time.Duration {
	return e.progress.Interval
}

// Phase returns the current lifecycle phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// HighScore returns the best of the loaded high score and every score reached this session.
func (e *Engine) HighScore() int {
	return e.highScore
}

// Rules returns the parameters the engine was built with.
func (e *Engine) Rules() Rules {
	return e.rules
}
