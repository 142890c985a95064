package display

import (
	"fmt"
	"strings"

	"checkers/internal/core"
)

// RenderPieces draws a board from the piece list of a GameResponse.
// Red pieces render red, black pieces render cyan for dark terminals.
func RenderPieces(size int, pieces []core.PieceInfo) string {
	grid := make([][]string, size)
	for y := range grid {
		grid[y] = make([]string, size)
	}
	for _, p := range pieces {
		if p.X < 0 || p.X >= size || p.Y < 0 || p.Y >= size {
			continue
		}
		color := Cyan
		if p.Color == "r" {
			color = Red
		}
		grid[p.Y][p.X] = color + p.Color + Reset
	}

	var sb strings.Builder
	sb.WriteString("  ")
	for x := 0; x < size; x++ {
		sb.WriteString(fmt.Sprintf("%d ", x))
	}
	sb.WriteString("\n")
	for y := 0; y < size; y++ {
		sb.WriteString(fmt.Sprintf("%d ", y))
		for x := 0; x < size; x++ {
			if grid[y][x] == "" {
				sb.WriteString(". ")
			} else {
				sb.WriteString(grid[y][x] + " ")
			}
		}
		sb.WriteString(fmt.Sprintf(" %d\n", y))
	}
	sb.WriteString("  ")
	for x := 0; x < size; x++ {
		sb.WriteString(fmt.Sprintf("%d ", x))
	}
	return sb.String()
}

// FormatTurn renders whose turn it is with color
func FormatTurn(turn string) string {
	if turn == "r" {
		return Red + "Red" + Reset
	}
	return Cyan + "Black" + Reset
}
