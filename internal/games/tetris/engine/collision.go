package engine

// Collides reports whether the piece, shifted by (dx, dy), would overlap a wall,
// the floor or a locked cell.
func Collides(b *Board, p Piece, dx, dy int) bool {
	return CollidesShape(b, p, p.Shape, dx, dy)
}

// CollidesShape is Collides with a candidate shape substituted for the piece's own.
// Rows above the well never hit locked cells but still respect the side walls.
func CollidesShape(b *Board, p Piece, shape Matrix, dx, dy int) bool {
	for r := range shape.size {
		for c := range shape.size {
			if !shape.cells[r][c] {
				continue
			}
			x := p.X + c + dx
			y := p.Y + r + dy
			if x < 0 || x >= Width || y >= Height {
				return true
			}
			if y >= 0 && b.cells[y][x] != Empty {
				return true
			}
		}
	}
	return false
}
