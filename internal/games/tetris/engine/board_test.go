package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillRow occupies every cell of row y except the listed columns.
func fillRow(b *Board, y int, color uint8, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, x := range except {
		skip[x] = true
	}
	for x := range Width {
		if !skip[x] {
			b.cells[y][x] = color
		}
	}
}

func TestBoardCellOutOfRange(t *testing.T) {
	var b Board

	tests := []struct {
		name string
		x, y int
	}{
		{"left of well", -1, 0},
		{"right of well", Width, 0},
		{"above well", 0, -1},
		{"below well", 0, Height},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := b.Cell(tc.x, tc.y)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrOutOfRange))
			assert.Panics(t, func() { b.MustCell(tc.x, tc.y) })
		})
	}

	v, err := b.Cell(Width-1, Height-1)
	require.NoError(t, err)
	assert.Equal(t, Empty, v)
}

func TestBoardLockDropsCellsAboveWell(t *testing.T) {
	var b Board

	p := NewPiece(KindO)
	p.X, p.Y = 2, -1
	b.Lock(p)

	assert.Equal(t, 2, b.FilledCount(), "only the visible half of the O piece should lock")
	assert.Equal(t, KindO.Color(), b.MustCell(2, 0))
	assert.Equal(t, KindO.Color(), b.MustCell(3, 0))
}

func TestBoardLockWritesColorID(t *testing.T) {
	var b Board

	p := NewPiece(KindZ)
	p.X, p.Y = 0, 18
	b.Lock(p)

	assert.Equal(t, uint8(7), b.MustCell(0, 18))
	assert.Equal(t, uint8(7), b.MustCell(1, 18))
	assert.Equal(t, uint8(7), b.MustCell(1, 19))
	assert.Equal(t, uint8(7), b.MustCell(2, 19))
	assert.Equal(t, 4, b.FilledCount())
}

func TestClearFullRowsNone(t *testing.T) {
	var b Board
	fillRow(&b, Height-1, 1, 0)

	before := b.Rows()
	assert.Equal(t, 0, b.ClearFullRows())
	assert.Equal(t, before, b.Rows())
}

func TestClearFullRowsNonAdjacent(t *testing.T) {
	var b Board

	// Every row gets a distinguishable partial pattern; rows 3 and 5 are full.
	for y := range Height {
		b.cells[y][y%Width] = uint8(y%KindCount) + 1
	}
	fillRow(&b, 3, 2)
	fillRow(&b, 5, 4)

	var want [Height][Width]uint8
	src := b.Rows()
	w := Height - 1
	for y := Height - 1; y >= 0; y-- {
		if y == 3 || y == 5 {
			continue
		}
		want[w] = src[y]
		w--
	}
	require.Equal(t, 1, w, "two rows should remain to be filled with empties")

	assert.Equal(t, 2, b.ClearFullRows())
	assert.Equal(t, want, b.Rows())
	assert.Equal(t, [Width]uint8{}, b.Rows()[0])
	assert.Equal(t, [Width]uint8{}, b.Rows()[1])
}

func TestClearFullRowsTetris(t *testing.T) {
	var b Board
	for y := Height - 4; y < Height; y++ {
		fillRow(&b, y, 1)
	}
	b.cells[Height-5][0] = 3

	assert.Equal(t, 4, b.ClearFullRows())
	assert.Equal(t, 1, b.FilledCount())
	assert.Equal(t, uint8(3), b.MustCell(0, Height-1))
}
