package engine

import "time"

// Rules holds the tunable timing and scoring parameters.
type Rules struct {
	InitialInterval time.Duration // drop interval at level 1
	IntervalStep    time.Duration // reduction per level above 1
	MinInterval     time.Duration // floor for the drop interval
	LineScores      [4]int        // points for 1..4 rows cleared at once, times level
	LinesPerLevel   int
	Kicks           []int // horizontal wall-kick offsets, tried in order
}

// DefaultRules returns the classic parameters: 800ms start, 50ms faster per
// level down to 100ms, 100/300/500/800 points, a level every 10 lines.
func DefaultRules() Rules {
	return Rules{
		InitialInterval: 800 * time.Millisecond,
		IntervalStep:    50 * time.Millisecond,
		MinInterval:     100 * time.Millisecond,
		LineScores:      [4]int{100, 300, 500, 800},
		LinesPerLevel:   10,
		Kicks:           DefaultKicks,
	}
}

// LineScore returns the points for clearing n rows at once at the given level.
func (r Rules) LineScore(n, level int) int {
	if n <= 0 {
		return 0
	}
	if n > len(r.LineScores) {
		n = len(r.LineScores)
	}
	return r.LineScores[n-1] * level
}

// LevelFor returns the level reached after clearing the given number of lines.
func (r Rules) LevelFor(lines int) int {
	per := r.LinesPerLevel
	if per < 1 {
		per = 1
	}
	return lines/per + 1
}

// IntervalFor returns the drop interval for a level.
func (r Rules) IntervalFor(level int) time.Duration {
	d := r.InitialInterval - time.Duration(level-1)*r.IntervalStep
	return max(d, r.MinInterval)
}

// Progress tracks score, level, cleared lines and the current drop interval.
// All counters only grow during a game.
type Progress struct {
	Score    int
	Level    int
	Lines    int
	Interval time.Duration
}

func newProgress(r Rules) Progress {
	return Progress{
		Level:    1,
		Interval: r.IntervalFor(1),
	}
}

// Award applies a line clear of n rows. Returns the points gained and whether
// the level went up.
func (p *Progress) Award(r Rules, n int) (gained int, leveled bool) {
	if n <= 0 {
		return 0, false
	}
	gained = r.LineScore(n, p.Level)
	p.Score += gained
	p.Lines += n

	if level := r.LevelFor(p.Lines); level > p.Level {
		p.Level = level
		p.Interval = r.IntervalFor(level)
		leveled = true
	}
	return gained, leveled
}
