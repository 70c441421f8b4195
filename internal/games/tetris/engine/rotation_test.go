package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogShapes(t *testing.T) {
	sizes := map[Kind]int{
		KindI: 4, KindJ: 3, KindL: 3, KindO: 2, KindS: 3, KindT: 3, KindZ: 3,
	}
	for k := Kind(0); k < KindCount; k++ {
		t.Run(k.String(), func(t *testing.T) {
			m := ShapeOf(k)
			assert.Equal(t, sizes[k], m.Size())
			assert.Equal(t, 4, m.Count())
			assert.Equal(t, uint8(k)+1, k.Color())
		})
	}
}

func TestMatrixRotatedClockwise(t *testing.T) {
	assert.Equal(t, ".#.\n.##\n.#.", ShapeOf(KindT).Rotated().String())
	assert.Equal(t, "...#\n...#\n...#\n...#", ShapeOf(KindI).Rotated().String())
	assert.Equal(t, ShapeOf(KindO), ShapeOf(KindO).Rotated())
}

func TestMatrixRotatedDoesNotAlias(t *testing.T) {
	orig := ShapeOf(KindL)
	rot := orig.Rotated()
	rot.cells[0][0] = !rot.cells[0][0]
	assert.Equal(t, ShapeOf(KindL), orig)
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	var b Board
	for k := Kind(0); k < KindCount; k++ {
		t.Run(k.String(), func(t *testing.T) {
			p := NewPiece(k)
			p.X, p.Y = 3, 5
			start := p

			for i := range 4 {
				require.True(t, Rotate(&b, &p, DefaultKicks), "rotation %d", i+1)
				assert.False(t, Collides(&b, p, 0, 0))
			}
			assert.Equal(t, start, p)
		})
	}
}

// leftT returns a T piece pointing left, hugging the right wall.
func leftT() Piece {
	p := NewPiece(KindT)
	p.Shape = p.Shape.Rotated().Rotated().Rotated()
	p.Rotation = 3
	p.X, p.Y = Width-2, 5
	return p
}

func TestRotateWallKickAtRightWall(t *testing.T) {
	var b Board
	p := leftT()
	require.False(t, Collides(&b, p, 0, 0))
	require.True(t, CollidesShape(&b, p, p.Shape.Rotated(), 0, 0), "naive rotation should leave the well")

	ok := Rotate(&b, &p, DefaultKicks)

	require.True(t, ok)
	assert.Equal(t, Width-3, p.X, "first kick -1 should be taken before -2")
	assert.Equal(t, 0, p.Rotation)
	assert.Equal(t, ShapeOf(KindT), p.Shape)
	assert.False(t, Collides(&b, p, 0, 0))
}

func TestRotateRejectedWhenEveryKickCollides(t *testing.T) {
	var b Board
	p := leftT()
	// (7,6) sits under both the -1 and -2 candidates; 0, +1, +2 leave the well.
	b.cells[6][7] = 1
	require.False(t, Collides(&b, p, 0, 0))

	before := p
	ok := Rotate(&b, &p, DefaultKicks)

	assert.False(t, ok)
	assert.Equal(t, before, p)
}

func TestRotateKickRight(t *testing.T) {
	var b Board
	p := NewPiece(KindI)
	p.Shape = p.Shape.Rotated()
	p.Rotation = 1
	p.X, p.Y = 3, 0 // vertical bar in column 6
	b.cells[3][3] = 1

	require.True(t, Rotate(&b, &p, DefaultKicks))
	assert.Equal(t, 4, p.X, "-1 collides at (3,3), so +1 is taken")
	assert.Equal(t, 2, p.Rotation)
}

func TestRotateWithoutKicks(t *testing.T) {
	var b Board
	p := leftT()
	before := p

	assert.False(t, Rotate(&b, &p, nil))
	assert.Equal(t, before, p)
}
