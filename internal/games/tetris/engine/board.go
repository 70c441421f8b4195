package engine

import (
	"errors"
	"fmt"
)

// Well dimensions. They never change during a game.
const (
	Width  = 10
	Height = 20
)

// Empty is the value of a cell with no locked block.
const Empty uint8 = 0

// ErrOutOfRange is returned when a cell query falls outside the well.
var ErrOutOfRange = errors.New("engine: cell out of range")

// Board is the grid of locked cells. Each cell holds Empty or a color id 1..7.
// Rows are indexed top to bottom.
type Board struct {
	cells [Height][Width]uint8
}

// InBounds reports whether (x, y) lies inside the well.
func (b Board) InBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// Cell returns the value at (x, y), or ErrOutOfRange.
func (b Board) Cell(x, y int) (uint8, error) {
	if !b.InBounds(x, y) {
		return Empty, fmt.Errorf("%w: (%d, %d)", ErrOutOfRange, x, y)
	}
	return b.cells[y][x], nil
}

// MustCell is like Cell but panics on out-of-range coordinates.
func (b Board) MustCell(x, y int) uint8 {
	v, err := b.Cell(x, y)
	if err != nil {
		panic(err)
	}
	return v
}

// Lock writes the piece into the grid. Cells above the well (y < 0) are dropped.
func (b *Board) Lock(p Piece) {
	color := p.Color()
	for _, c := range p.Cells() {
		if c.Y < 0 {
			continue
		}
		b.cells[c.Y][c.X] = color
	}
}

// rowFull reports whether every cell of row y is occupied.
func (b Board) rowFull(y int) bool {
	for _, v := range b.cells[y] {
		if v == Empty {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row at once, shifts the remaining rows down
// and fills the top with empty rows. Returns the number of rows removed.
func (b *Board) ClearFullRows() int {
	cleared := 0
	write := Height - 1
	for read := Height - 1; read >= 0; read-- {
		if b.rowFull(read) {
			cleared++
			continue
		}
		if write != read {
			b.cells[write] = b.cells[read]
		}
		write--
	}
	for ; write >= 0; write-- {
		b.cells[write] = [Width]uint8{}
	}
	return cleared
}

// FilledCount returns the number of occupied cells.
func (b Board) FilledCount() int {
	count := 0
	for y := range Height {
		for x := range Width {
			if b.cells[y][x] != Empty {
				count++
			}
		}
	}
	return count
}

// Rows returns a copy of the grid.
func (b Board) Rows() [Height][Width]uint8 {
	return b.cells
}
