package board

import (
	"testing"

	"checkers/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultsTo8x8(t *testing.T) {
	b := New(0)
	assert.Equal(t, 8, b.Size())

	b = New(10)
	assert.Equal(t, 10, b.Size())
}

func TestSquareAtBounds(t *testing.T) {
	b := New(8)

	tests := []struct {
		name string
		x, y int
		ok   bool
	}{
		{"top-left corner", 0, 0, true},
		{"bottom-right corner", 7, 7, true},
		{"middle", 3, 4, true},
		{"x negative", -1, 0, false},
		{"y negative", 0, -1, false},
		{"x too large", 8, 0, false},
		{"y too large", 0, 8, false},
		{"both out", 100, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sq, err := b.SquareAt(tt.x, tt.y)
			if !tt.ok {
				require.ErrorIs(t, err, ErrOutOfBounds)
				assert.Nil(t, sq)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.x, sq.X())
			assert.Equal(t, tt.y, sq.Y())
		})
	}
}

func TestSquareAtReturnsSameSquare(t *testing.T) {
	b := New(8)

	first, err := b.SquareAt(2, 3)
	require.NoError(t, err)
	second, err := b.SquareAt(2, 3)
	require.NoError(t, err)

	assert.Same(t, first, second, "squares are created once and persist")
}

func TestPlaceAndClear(t *testing.T) {
	b := New(8)
	sq, err := b.SquareAt(4, 4)
	require.NoError(t, err)

	p := &Piece{Color: core.ColorRed, X: 4, Y: 4}
	require.NoError(t, b.Place(p, sq))
	assert.Same(t, p, sq.Piece())

	// At most one occupant
	other := &Piece{Color: core.ColorBlack, X: 4, Y: 4}
	err = b.Place(other, sq)
	require.ErrorIs(t, err, ErrSquareOccupied)
	assert.Same(t, p, sq.Piece(), "occupant unchanged after rejected place")

	b.Clear(sq)
	assert.Nil(t, sq.Piece())
}
