package engine

// DefaultKicks is the horizontal offset sequence tried when a rotation collides in place.
var DefaultKicks = []int{-1, 1, -2, 2}

// Rotate turns the piece clockwise if the rotated shape fits in place or after one
// of the kick offsets (tried in order, same row). On success the piece takes the
// new shape, rotation index and column. On failure it is left untouched.
func Rotate(b *Board, p *Piece, kicks []int) bool {
	candidate := p.Shape.Rotated()

	if tryRotation(b, p, candidate, 0) {
		return true
	}
	for _, dx := range kicks {
		if tryRotation(b, p, candidate, dx) {
			return true
		}
	}
	return false
}

func tryRotation(b *Board, p *Piece, candidate Matrix, dx int) bool {
	if CollidesShape(b, *p, candidate, dx, 0) {
		return false
	}
	p.Shape = candidate
	p.Rotation = (p.Rotation + 1) % 4
	p.X += dx
	return true
}
