// Package board provides the spatial model for a checkers game: a fixed
// grid of squares with coordinate lookup and occupancy tracking. Game
// rules do not live here.
package board

import (
	"errors"
	"fmt"
	"strings"
)

const DefaultSize = 8

var (
	ErrOutOfBounds    = errors.New("coordinate out of bounds")
	ErrSquareOccupied = errors.New("square already occupied")
)

// Square is a fixed grid coordinate with mutable occupancy. (0,0) is the
// top-left corner; squares are created once by New and live for the game.
type Square struct {
	x, y     int
	occupant *Piece
}

func (s *Square) X() int { return s.x }
func (s *Square) Y() int { return s.y }

// Piece returns the current occupant, or nil for an empty square.
func (s *Square) Piece() *Piece { return s.occupant }

func (s *Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.x, s.y)
}

type Board struct {
	size    int
	squares [][]Square
}

// New creates an empty size x size board. Size 0 means DefaultSize.
func New(size int) *Board {
	if size <= 0 {
		size = DefaultSize
	}
	b := &Board{
		size:    size,
		squares: make([][]Square, size),
	}
	for y := 0; y < size; y++ {
		b.squares[y] = make([]Square, size)
		for x := 0; x < size; x++ {
			b.squares[y][x] = Square{x: x, y: y}
		}
	}
	return b
}

func (b *Board) Size() int { return b.size }

// SquareAt looks up a square by coordinate
func (b *Board) SquareAt(x, y int) (*Square, error) {
	if x < 0 || x >= b.size || y < 0 || y >= b.size {
		return nil, fmt.Errorf("%w: (%d,%d) outside %dx%d board", ErrOutOfBounds, x, y, b.size, b.size)
	}
	return &b.squares[y][x], nil
}

// Place sets the square's occupant. The caller must guarantee the square
// is free; occupancy is never silently overwritten.
func (b *Board) Place(p *Piece, sq *Square) error {
	if sq.occupant != nil {
		return fmt.Errorf("%w: %s", ErrSquareOccupied, sq)
	}
	sq.occupant = p
	return nil
}

// Clear removes any occupant from the square.
func (b *Board) Clear(sq *Square) {
	sq.occupant = nil
}

// ToASCII creates an ASCII representation of the board
func (b *Board) ToASCII() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for x := 0; x < b.size; x++ {
		sb.WriteString(fmt.Sprintf("%d ", x))
	}
	sb.WriteString("\n")

	for y := 0; y < b.size; y++ {
		sb.WriteString(fmt.Sprintf("%d ", y))
		for x := 0; x < b.size; x++ {
			p := b.squares[y][x].occupant
			if p == nil {
				sb.WriteString(". ")
			} else {
				sb.WriteString(fmt.Sprintf("%s ", p.Color))
			}
		}
		sb.WriteString(fmt.Sprintf(" %d\n", y))
	}
	sb.WriteString("  ")
	for x := 0; x < b.size; x++ {
		sb.WriteString(fmt.Sprintf("%d ", x))
	}
	return sb.String()
}
