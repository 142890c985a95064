package game

import (
	"fmt"
	"strconv"
	"strings"

	"checkers/internal/core"
)

// MoveResult tracks the outcome of a successful move
type MoveResult struct {
	Move      string // "fx,fy-tx,ty" notation
	Player    core.Color
	FromX     int
	FromY     int
	ToX       int
	ToY       int
	Captured  *CapturedPiece
	Notice    string // informational text, e.g. the promotion stub
	GameState core.State
}

// CapturedPiece records a piece removed from play by a jump
type CapturedPiece struct {
	Color core.Color
	X, Y  int
}

// FormatMove renders a move in "fx,fy-tx,ty" notation
func FormatMove(fromX, fromY, toX, toY int) string {
	return fmt.Sprintf("%d,%d-%d,%d", fromX, fromY, toX, toY)
}

// ParseMove parses "fx,fy-tx,ty" notation
func ParseMove(s string) (fromX, fromY, toX, toY int, err error) {
	halves := strings.Split(s, "-")
	if len(halves) != 2 {
		return 0, 0, 0, 0, fmt.Errorf("invalid move %q: expected fx,fy-tx,ty", s)
	}
	from, err := parseCoord(halves[0])
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("invalid move %q: %w", s, err)
	}
	to, err := parseCoord(halves[1])
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("invalid move %q: %w", s, err)
	}
	return from[0], from[1], to[0], to[1], nil
}

func parseCoord(s string) ([2]int, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return [2]int{}, fmt.Errorf("bad coordinate %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return [2]int{}, fmt.Errorf("bad coordinate %q", s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return [2]int{}, fmt.Errorf("bad coordinate %q", s)
	}
	return [2]int{x, y}, nil
}
