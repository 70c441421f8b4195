// Package engine implements the falling-block simulation: board, pieces,
// rotation with wall kicks, line clearing, scoring and timed descent.
// It is UI-agnostic and deterministic for a given seed; the platform drives it
// through Tick and Apply and reads it back through query methods.
package engine

// Kind identifies one of the seven tetromino shapes.
// The order is fixed so that color ids are deterministic (Kind k => color k+1).
type Kind uint8

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// KindCount is the number of shapes in the catalog.
const KindCount = 7

// String returns the conventional letter for the shape.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// Color returns the board cell value written when a piece of this kind locks.
func (k Kind) Color() uint8 {
	return uint8(k) + 1
}

// maxShapeSize bounds the side of any catalog matrix.
const maxShapeSize = 4

// Matrix is a square 0/1 occupancy matrix of side 2, 3 or 4.
// It is a value type: copying a Matrix copies its cells, so a rotated
// candidate never aliases the matrix it was derived from.
type Matrix struct {
	size  int
	cells [maxShapeSize][maxShapeSize]bool
}

// matrix builds a Matrix from rows of '#' (filled) and '.' (empty).
func matrix(rows ...string) Matrix {
	m := Matrix{size: len(rows)}
	for r, row := range rows {
		for c, ch := range row {
			m.cells[r][c] = ch == '#'
		}
	}
	return m
}

// catalog holds the canonical spawn orientation of every shape.
var catalog = [KindCount]Matrix{
	KindI: matrix(
		"####",
		"....",
		"....",
		"....",
	),
	KindJ: matrix(
		"#..",
		"###",
		"...",
	),
	KindL: matrix(
		"..#",
		"###",
		"...",
	),
	KindO: matrix(
		"##",
		"##",
	),
	KindS: matrix(
		".##",
		"##.",
		"...",
	),
	KindT: matrix(
		".#.",
		"###",
		"...",
	),
	KindZ: matrix(
		"##.",
		".##",
		"...",
	),
}

// ShapeOf returns the canonical matrix for a kind.
// The returned value is a copy; the catalog itself cannot be modified.
func ShapeOf(k Kind) Matrix {
	return catalog[k]
}

// Size returns the side length of the matrix.
func (m Matrix) Size() int {
	return m.size
}

// At reports whether the cell at row r, column c is filled.
// Coordinates outside the matrix are empty.
func (m Matrix) At(r, c int) bool {
	if r < 0 || r >= m.size || c < 0 || c >= m.size {
		return false
	}
	return m.cells[r][c]
}

// Rotated returns the matrix turned 90° clockwise: transpose, then reverse each row.
func (m Matrix) Rotated() Matrix {
	out := Matrix{size: m.size}
	n := m.size
	for r := range n {
		for c := range n {
			out.cells[r][c] = m.cells[n-1-c][r]
		}
	}
	return out
}

// Count returns the number of filled cells.
func (m Matrix) Count() int {
	count := 0
	for r := range m.size {
		for c := range m.size {
			if m.cells[r][c] {
				count++
			}
		}
	}
	return count
}

// String renders the matrix with '#' and '.', one row per line.
func (m Matrix) String() string {
	buf := make([]byte, 0, m.size*(m.size+1))
	for r := range m.size {
		if r > 0 {
			buf = append(buf, '\n')
		}
		for c := range m.size {
			if m.cells[r][c] {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
	}
	return string(buf)
}
