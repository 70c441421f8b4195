package engine

import "time"

// Snapshot captures everything a renderer or a determinism test needs after an event.
type Snapshot struct {
	Grid         [Height][Width]uint8
	Current      Piece
	CurrentCells []Point
	GhostY       int // row the current piece would land on with a hard drop
	Next         Piece
	Score        int
	Level        int
	Lines        int
	HighScore    int
	Interval     time.Duration
	Phase        Phase
	Pieces       int
	SoftRows     int
	HardRows     int
}

// Snapshot returns the current state by value.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Grid:         e.board.Rows(),
		Current:      e.current,
		CurrentCells: e.current.Cells(),
		GhostY:       e.GhostY(),
		Next:         e.spawner.Next(),
		Score:        e.progress.Score,
		Level:        e.progress.Level,
		Lines:        e.progress.Lines,
		HighScore:    e.highScore,
		Interval:     e.progress.Interval,
		Phase:        e.phase,
		Pieces:       e.pieces,
		SoftRows:     e.softRows,
		HardRows:     e.hardRows,
	}
}

// GhostY returns the lowest row the current piece can reach by falling straight down.
func (e *Engine) GhostY() int {
	dy := 0
	for !Collides(&e.board, e.current, 0, dy+1) {
		dy++
	}
	return e.current.Y + dy
}
