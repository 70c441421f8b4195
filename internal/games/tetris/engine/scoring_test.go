package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLineScore(t *testing.T) {
	r := DefaultRules()

	tests := []struct {
		rows, level, want int
	}{
		{0, 1, 0},
		{1, 1, 100},
		{2, 1, 300},
		{3, 1, 500},
		{4, 1, 800},
		{2, 3, 900},
		{4, 5, 4000},
		{6, 1, 800}, // capped at four rows
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, r.LineScore(tc.rows, tc.level), "rows=%d level=%d", tc.rows, tc.level)
	}
}

func TestIntervalFor(t *testing.T) {
	r := DefaultRules()

	assert.Equal(t, 800*time.Millisecond, r.IntervalFor(1))
	assert.Equal(t, 750*time.Millisecond, r.IntervalFor(2))
	assert.Equal(t, 100*time.Millisecond, r.IntervalFor(15))
	assert.Equal(t, 100*time.Millisecond, r.IntervalFor(40), "floored at the minimum")
}

func TestProgressLevelsUpAtTenLines(t *testing.T) {
	r := DefaultRules()
	p := newProgress(r)

	for _, n := range []int{4, 4, 1} {
		_, leveled := p.Award(r, n)
		assert.False(t, leveled)
	}
	assert.Equal(t, 9, p.Lines)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 800*time.Millisecond, p.Interval)

	gained, leveled := p.Award(r, 1)
	assert.True(t, leveled)
	assert.Equal(t, 100, gained, "points use the level before the clear")
	assert.Equal(t, 10, p.Lines)
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 750*time.Millisecond, p.Interval)
}

func TestProgressAwardNothing(t *testing.T) {
	r := DefaultRules()
	p := newProgress(r)

	gained, leveled := p.Award(r, 0)
	assert.Zero(t, gained)
	assert.False(t, leveled)
	assert.Equal(t, newProgress(r), p)
}

func TestProgressMultiLevelJump(t *testing.T) {
	r := DefaultRules()
	r.LinesPerLevel = 2
	p := newProgress(r)

	p.Award(r, 4)
	assert.Equal(t, 3, p.Level)
	assert.Equal(t, 700*time.Millisecond, p.Interval)
}
