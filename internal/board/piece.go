package board

import (
	"fmt"

	"checkers/internal/core"
)

// Piece is a single checker. Its position always matches exactly one
// square's occupant; both are updated together by the game layer.
type Piece struct {
	Color core.Color
	X, Y  int
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s piece at (%d,%d)", p.Color.Name(), p.X, p.Y)
}

// Forward returns the row direction the piece advances toward:
// black decreases y, red increases y.
func (p *Piece) Forward() int {
	if p.Color == core.ColorBlack {
		return -1
	}
	return 1
}

// ValidOrdinaryMove reports whether the piece may advance to target
// without capturing: one row forward, one column sideways. Backward and
// sideways moves are never legal.
func (p *Piece) ValidOrdinaryMove(target *Square) bool {
	if target.Y()-p.Y != p.Forward() {
		return false
	}
	return abs(target.X()-p.X) == 1
}

// CapturedPiece finds the piece that would be captured by jumping to
// target: two rows forward, two columns sideways, over an occupied
// middle square. It returns nil when no capture is possible; this is a
// legality probe and never mutates the board.
func (p *Piece) CapturedPiece(b *Board, target *Square) *Piece {
	if target.Y()-p.Y != 2*p.Forward() {
		return nil
	}
	if abs(target.X()-p.X) != 2 {
		return nil
	}
	mid, err := b.SquareAt((p.X+target.X())/2, (p.Y+target.Y())/2)
	if err != nil {
		return nil
	}
	return mid.Piece()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
