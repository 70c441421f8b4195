package engine

// Point is a board coordinate. Y grows downwards; negative Y lies above the
// visible well.
type Point struct {
	X, Y int
}

// Piece is a shape instance with its orientation and top-left board position.
type Piece struct {
	Kind     Kind
	Shape    Matrix
	Rotation int // 0..3, clockwise quarter turns from the spawn orientation
	X, Y     int
}

// NewPiece creates a piece of the given kind in spawn orientation at (0, 0).
func NewPiece(k Kind) Piece {
	return Piece{
		Kind:  k,
		Shape: ShapeOf(k),
	}
}

// Color returns the color id this piece writes into the board.
func (p Piece) Color() uint8 {
	return p.Kind.Color()
}

// Cells returns the board coordinates currently occupied by the piece.
func (p Piece) Cells() []Point {
	return p.cellsOf(p.Shape, 0, 0)
}

// cellsOf lists the occupied cells of shape placed at the piece position shifted by (dx, dy).
func (p Piece) cellsOf(shape Matrix, dx, dy int) []Point {
	cells := make([]Point, 0, maxShapeSize)
	for r := range shape.size {
		for c := range shape.size {
			if shape.cells[r][c] {
				cells = append(cells, Point{X: p.X + c + dx, Y: p.Y + r + dy})
			}
		}
	}
	return cells
}
