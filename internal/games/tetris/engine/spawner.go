package engine

import "math/rand"

// Spawner hands out pieces and keeps one on deck.
// Each draw is uniform over the catalog; repeats are possible.
type Spawner struct {
	rng  *rand.Rand
	next Piece
}

// NewSpawner creates a spawner and draws the first on-deck piece.
func NewSpawner(rng *rand.Rand) *Spawner {
	s := &Spawner{rng: rng}
	s.next = s.draw()
	return s
}

func (s *Spawner) draw() Piece {
	return NewPiece(Kind(s.rng.Intn(KindCount)))
}

// Next returns the on-deck piece without consuming it.
func (s *Spawner) Next() Piece {
	return s.next
}

// SpawnNext promotes the on-deck piece to the top of the well, centered,
// and draws a replacement. The caller checks the returned piece for collision.
func (s *Spawner) SpawnNext() Piece {
	p := s.next
	p.X, p.Y = SpawnPosition(p)
	s.next = s.draw()
	return p
}

// SpawnPosition returns the spawn column and row for a piece.
func SpawnPosition(p Piece) (x, y int) {
	return Width/2 - p.Shape.Size()/2, 0
}
