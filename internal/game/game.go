// Package game implements the checkers rule engine: turn alternation,
// piece selection, and move/capture orchestration over a board.
package game

import (
	"fmt"

	"checkers/internal/board"
	"checkers/internal/core"
)

// Game is a single checkers session. Turn and selection state live here,
// never in package globals, so multiple games can coexist in one process.
type Game struct {
	board    *board.Board
	pieces   []*board.Piece
	turn     core.Color
	selected *board.Piece
	state    core.State
	moves    []string
	last     *MoveResult
	sink     Sink
}

// New creates a game with the standard opening layout: red on the top
// rows, black on the bottom rows, dark squares only. Black moves first.
// Size 0 means the default 8x8 board; a nil sink disables notifications.
func New(size int, sink Sink) *Game {
	if sink == nil {
		sink = NopSink{}
	}
	g := &Game{
		board: board.New(size),
		turn:  core.ColorBlack,
		state: core.StateOngoing,
		sink:  sink,
	}
	g.setupPieces()
	return g
}

func (g *Game) setupPieces() {
	size := g.board.Size()
	rows := 3
	if size < 8 {
		rows = (size - 2) / 2
	}
	for y := 0; y < size; y++ {
		var color core.Color
		switch {
		case y < rows:
			color = core.ColorRed
		case y >= size-rows:
			color = core.ColorBlack
		default:
			continue
		}
		for x := 0; x < size; x++ {
			if (x+y)%2 != 1 {
				continue
			}
			p := &board.Piece{Color: color, X: x, Y: y}
			sq, err := g.board.SquareAt(x, y)
			if err != nil {
				panic(fmt.Sprintf("setup out of bounds at (%d,%d): %v", x, y, err))
			}
			if err := g.board.Place(p, sq); err != nil {
				panic(fmt.Sprintf("setup collision at (%d,%d): %v", x, y, err))
			}
			g.pieces = append(g.pieces, p)
		}
	}
}

func (g *Game) Size() int               { return g.board.Size() }
func (g *Game) CurrentTurn() core.Color { return g.turn }
func (g *Game) State() core.State       { return g.state }
func (g *Game) Selected() *board.Piece  { return g.selected }
func (g *Game) LastResult() *MoveResult { return g.last }
func (g *Game) Board() *board.Board     { return g.board }

// SquareAt looks up a square by coordinate
func (g *Game) SquareAt(x, y int) (*board.Square, error) {
	return g.board.SquareAt(x, y)
}

// PieceAt returns the piece occupying (x,y), or ErrNoPiece.
func (g *Game) PieceAt(x, y int) (*board.Piece, error) {
	sq, err := g.board.SquareAt(x, y)
	if err != nil {
		return nil, err
	}
	p := sq.Piece()
	if p == nil {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrNoPiece, x, y)
	}
	return p, nil
}

// Pieces returns the pieces still in play.
func (g *Game) Pieces() []*board.Piece {
	out := make([]*board.Piece, len(g.pieces))
	copy(out, g.pieces)
	return out
}

// Moves returns the move history in "fx,fy-tx,ty" notation.
func (g *Game) Moves() []string {
	out := make([]string, len(g.moves))
	copy(out, g.moves)
	return out
}

// SelectPiece marks a piece as the active selection. Only the current
// turn's color is selectable; selecting replaces any previous selection.
func (g *Game) SelectPiece(p *board.Piece) error {
	if g.state != core.StateOngoing {
		return ErrGameOver
	}
	if p.Color != g.turn {
		g.sink.Message(fmt.Sprintf("It is %s's turn.", g.turn.Name()))
		return fmt.Errorf("%w: %s cannot select %s", ErrWrongTurn, g.turn.Name(), p)
	}
	g.selected = p
	return nil
}

// AttemptMove validates and executes a move of p to target. On any error
// the board, turn, and selection are left untouched; failed attempts can
// be repeated without state drift.
func (g *Game) AttemptMove(p *board.Piece, target *board.Square) (*MoveResult, error) {
	if g.state != core.StateOngoing {
		g.sink.Message(fmt.Sprintf("The game is over: %s.", g.state))
		return nil, ErrGameOver
	}
	if p.Color != g.turn {
		g.sink.Message(fmt.Sprintf("It is %s's turn.", g.turn.Name()))
		return nil, fmt.Errorf("%w: %s moved out of turn", ErrWrongTurn, p)
	}
	if target.Piece() != nil {
		g.sink.Message("That location is already occupied. Please select a different location or piece.")
		return nil, fmt.Errorf("%w: %s", ErrDestinationOccupied, target)
	}

	var result *MoveResult
	switch {
	case p.ValidOrdinaryMove(target):
		result = g.applyMove(p, target, nil)
	case p.CapturedPiece(g.board, target) != nil:
		result = g.captureMove(p, target)
	default:
		g.sink.Message("The piece can neither move nor capture to that position. Please try a different square.")
		return nil, fmt.Errorf("%w: %s to %s", ErrIllegalMove, p, target)
	}

	g.sink.BoardChanged(result)
	g.sink.TurnChanged(g.turn)
	return result, nil
}

// captureMove removes the jumped piece and then moves. Calling it for a
// target that yields no capture is a contract violation and panics.
func (g *Game) captureMove(p *board.Piece, target *board.Square) *MoveResult {
	captured := p.CapturedPiece(g.board, target)
	if captured == nil {
		panic(fmt.Sprintf("cannot capture by moving %s to %s", p, target))
	}
	g.removePiece(captured)
	return g.applyMove(p, target, captured)
}

// applyMove performs the already-validated move: old square cleared, new
// square set, coordinates updated, turn flipped, selection cleared.
func (g *Game) applyMove(p *board.Piece, target *board.Square, captured *board.Piece) *MoveResult {
	from, err := g.board.SquareAt(p.X, p.Y)
	if err != nil {
		panic(fmt.Sprintf("piece off board: %s", p))
	}
	g.board.Clear(from)
	if err := g.board.Place(p, target); err != nil {
		panic(fmt.Sprintf("validated move collided: %v", err))
	}

	result := &MoveResult{
		Move:   FormatMove(p.X, p.Y, target.X(), target.Y()),
		Player: p.Color,
		FromX:  p.X,
		FromY:  p.Y,
		ToX:    target.X(),
		ToY:    target.Y(),
	}
	if captured != nil {
		result.Captured = &CapturedPiece{Color: captured.Color, X: captured.X, Y: captured.Y}
	}

	p.X = target.X()
	p.Y = target.Y()
	g.turn = core.OppositeColor(g.turn)
	g.selected = nil
	g.moves = append(g.moves, result.Move)

	if g.reachedBackRow(p) {
		result.Notice = "Kings are not yet implemented. Sorry!"
		g.sink.Message(result.Notice)
	}
	if captured != nil && g.countPieces(captured.Color) == 0 {
		if p.Color == core.ColorRed {
			g.state = core.StateRedWins
		} else {
			g.state = core.StateBlackWins
		}
		g.sink.Message(fmt.Sprintf("%s has no pieces left. %s!", captured.Color.Name(), g.state))
	}
	result.GameState = g.state
	g.last = result
	return result
}

// reachedBackRow reports whether the piece sits on its promotion row.
// Promotion itself is a known gap; only the notice is emitted.
func (g *Game) reachedBackRow(p *board.Piece) bool {
	if p.Color == core.ColorBlack {
		return p.Y == 0
	}
	return p.Y == g.board.Size()-1
}

func (g *Game) removePiece(captured *board.Piece) {
	sq, err := g.board.SquareAt(captured.X, captured.Y)
	if err != nil {
		panic(fmt.Sprintf("captured piece off board: %s", captured))
	}
	g.board.Clear(sq)
	for i, p := range g.pieces {
		if p == captured {
			g.pieces = append(g.pieces[:i], g.pieces[i+1:]...)
			break
		}
	}
}

func (g *Game) countPieces(color core.Color) int {
	n := 0
	for _, p := range g.pieces {
		if p.Color == color {
			n++
		}
	}
	return n
}
