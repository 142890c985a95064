package game

import (
	"fmt"
	"testing"

	"checkers/internal/board"
	"checkers/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSink captures notifications for assertions
type recordingSink struct {
	messages []string
	results  []*MoveResult
	turns    []core.Color
}

func (r *recordingSink) Message(text string)          { r.messages = append(r.messages, text) }
func (r *recordingSink) BoardChanged(res *MoveResult) { r.results = append(r.results, res) }
func (r *recordingSink) TurnChanged(turn core.Color)  { r.turns = append(r.turns, turn) }

// bareGame builds a game with an empty board for scenario setups
func bareGame(sink Sink) *Game {
	if sink == nil {
		sink = NopSink{}
	}
	return &Game{
		board: board.New(8),
		turn:  core.ColorBlack,
		state: core.StateOngoing,
		sink:  sink,
	}
}

func addPiece(t *testing.T, g *Game, color core.Color, x, y int) *board.Piece {
	t.Helper()
	p := &board.Piece{Color: color, X: x, Y: y}
	sq, err := g.board.SquareAt(x, y)
	require.NoError(t, err)
	require.NoError(t, g.board.Place(p, sq))
	g.pieces = append(g.pieces, p)
	return p
}

func targetSquare(t *testing.T, g *Game, x, y int) *board.Square {
	t.Helper()
	sq, err := g.SquareAt(x, y)
	require.NoError(t, err)
	return sq
}

func TestNewStandardSetup(t *testing.T) {
	g := New(0, nil)

	require.Equal(t, 8, g.Size())
	assert.Equal(t, core.ColorBlack, g.CurrentTurn(), "black moves first")
	assert.Equal(t, core.StateOngoing, g.State())
	assert.Len(t, g.Pieces(), 24)

	for _, p := range g.Pieces() {
		assert.Equal(t, 1, (p.X+p.Y)%2, "pieces start on dark squares only")
		if p.Color == core.ColorRed {
			assert.Less(t, p.Y, 3, "red starts on the top rows")
		} else {
			assert.GreaterOrEqual(t, p.Y, 5, "black starts on the bottom rows")
		}
	}

	// Occupancy cross-reference holds for every piece
	for _, p := range g.Pieces() {
		sq, err := g.SquareAt(p.X, p.Y)
		require.NoError(t, err)
		assert.Same(t, p, sq.Piece())
	}
}

func TestOrdinaryMoveScenario(t *testing.T) {
	// Black piece at (3,5), empty target (2,4): move succeeds, turn flips to red
	sink := &recordingSink{}
	g := bareGame(sink)
	p := addPiece(t, g, core.ColorBlack, 3, 5)

	result, err := g.AttemptMove(p, targetSquare(t, g, 2, 4))
	require.NoError(t, err)

	assert.Equal(t, 2, p.X)
	assert.Equal(t, 4, p.Y)
	assert.Equal(t, "3,5-2,4", result.Move)
	assert.Nil(t, result.Captured)
	assert.Equal(t, core.ColorRed, g.CurrentTurn())

	oldSq := targetSquare(t, g, 3, 5)
	newSq := targetSquare(t, g, 2, 4)
	assert.Nil(t, oldSq.Piece(), "old square cleared")
	assert.Same(t, p, newSq.Piece(), "new square occupied")

	require.Len(t, sink.results, 1)
	require.Len(t, sink.turns, 1)
	assert.Equal(t, core.ColorRed, sink.turns[0])
}

func TestCaptureScenario(t *testing.T) {
	// Red piece at (2,2), black at (3,3), target (4,4): capture succeeds
	g := bareGame(nil)
	g.turn = core.ColorRed
	red := addPiece(t, g, core.ColorRed, 2, 2)
	black := addPiece(t, g, core.ColorBlack, 3, 3)
	// A second black piece keeps the game ongoing after the capture
	addPiece(t, g, core.ColorBlack, 0, 7)

	result, err := g.AttemptMove(red, targetSquare(t, g, 4, 4))
	require.NoError(t, err)

	assert.Equal(t, 4, red.X)
	assert.Equal(t, 4, red.Y)
	require.NotNil(t, result.Captured)
	assert.Equal(t, core.ColorBlack, result.Captured.Color)
	assert.Equal(t, 3, result.Captured.X)
	assert.Equal(t, 3, result.Captured.Y)

	midSq := targetSquare(t, g, 3, 3)
	assert.Nil(t, midSq.Piece(), "captured piece removed from board")
	assert.NotContains(t, g.Pieces(), black, "captured piece removed from play")
	assert.Equal(t, core.ColorBlack, g.CurrentTurn(), "turn flips to black")
	assert.Equal(t, core.StateOngoing, g.State())
}

func TestCaptureRequiresMidpointPiece(t *testing.T) {
	g := bareGame(nil)
	p := addPiece(t, g, core.ColorBlack, 3, 5)

	_, err := g.AttemptMove(p, targetSquare(t, g, 1, 3))
	require.ErrorIs(t, err, ErrIllegalMove, "jump over an empty square is illegal")
	assert.Equal(t, 3, p.X)
	assert.Equal(t, 5, p.Y)
	assert.Equal(t, core.ColorBlack, g.CurrentTurn())
}

func TestDestinationOccupied(t *testing.T) {
	g := bareGame(nil)
	p := addPiece(t, g, core.ColorBlack, 3, 5)
	addPiece(t, g, core.ColorRed, 2, 4)

	_, err := g.AttemptMove(p, targetSquare(t, g, 2, 4))
	require.ErrorIs(t, err, ErrDestinationOccupied)

	// No mutation of any kind
	assert.Equal(t, 3, p.X)
	assert.Equal(t, 5, p.Y)
	assert.Equal(t, core.ColorBlack, g.CurrentTurn())
	assert.Len(t, g.Pieces(), 2)
	assert.Empty(t, g.Moves())
}

func TestWrongTurnRejectedBeforeLegality(t *testing.T) {
	g := bareGame(nil)
	g.turn = core.ColorRed
	black := addPiece(t, g, core.ColorBlack, 3, 5)

	// A perfectly legal black move is still rejected on red's turn
	_, err := g.AttemptMove(black, targetSquare(t, g, 2, 4))
	require.ErrorIs(t, err, ErrWrongTurn)
	assert.Equal(t, core.ColorRed, g.CurrentTurn(), "turn unchanged on failure")
	assert.Equal(t, 3, black.X)
	assert.Equal(t, 5, black.Y)
}

func TestFailedAttemptsAreIdempotent(t *testing.T) {
	g := bareGame(nil)
	p := addPiece(t, g, core.ColorBlack, 3, 5)

	for i := 0; i < 5; i++ {
		_, err := g.AttemptMove(p, targetSquare(t, g, 3, 2))
		require.ErrorIs(t, err, ErrIllegalMove, "attempt %d", i)
		assert.Equal(t, 3, p.X)
		assert.Equal(t, 5, p.Y)
		assert.Equal(t, core.ColorBlack, g.CurrentTurn())
		assert.Empty(t, g.Moves())
	}
}

func TestTurnAlternation(t *testing.T) {
	g := bareGame(nil)
	black := addPiece(t, g, core.ColorBlack, 4, 6)
	red := addPiece(t, g, core.ColorRed, 0, 0)

	moves := []struct {
		piece  *board.Piece
		tx, ty int
		next   core.Color
	}{
		{black, 3, 5, core.ColorRed},
		{red, 1, 1, core.ColorBlack},
		{black, 2, 4, core.ColorRed},
		{red, 0, 2, core.ColorBlack},
	}

	for i, m := range moves {
		_, err := g.AttemptMove(m.piece, targetSquare(t, g, m.tx, m.ty))
		require.NoError(t, err, "move %d", i)
		assert.Equal(t, m.next, g.CurrentTurn(), "move %d", i)
	}
	assert.Len(t, g.Moves(), 4)
}

func TestSelectPiece(t *testing.T) {
	sink := &recordingSink{}
	g := bareGame(sink)
	black := addPiece(t, g, core.ColorBlack, 3, 5)
	black2 := addPiece(t, g, core.ColorBlack, 5, 5)
	red := addPiece(t, g, core.ColorRed, 2, 2)

	require.NoError(t, g.SelectPiece(black))
	assert.Same(t, black, g.Selected())

	// Selecting another piece replaces the previous selection
	require.NoError(t, g.SelectPiece(black2))
	assert.Same(t, black2, g.Selected())

	// Off-turn color is not selectable
	err := g.SelectPiece(red)
	require.ErrorIs(t, err, ErrWrongTurn)
	assert.Same(t, black2, g.Selected())
	assert.NotEmpty(t, sink.messages)
}

func TestMoveClearsSelection(t *testing.T) {
	g := bareGame(nil)
	p := addPiece(t, g, core.ColorBlack, 3, 5)

	require.NoError(t, g.SelectPiece(p))
	_, err := g.AttemptMove(p, targetSquare(t, g, 2, 4))
	require.NoError(t, err)
	assert.Nil(t, g.Selected())
}

func TestPromotionStubNotice(t *testing.T) {
	sink := &recordingSink{}
	g := bareGame(sink)
	p := addPiece(t, g, core.ColorBlack, 2, 1)

	result, err := g.AttemptMove(p, targetSquare(t, g, 1, 0))
	require.NoError(t, err)

	assert.Equal(t, "Kings are not yet implemented. Sorry!", result.Notice)
	assert.Contains(t, sink.messages, "Kings are not yet implemented. Sorry!")
	// The piece stays an ordinary piece and the move stands
	assert.Equal(t, 0, p.Y)
}

func TestPromotionStubNoticeRedBackRow(t *testing.T) {
	g := bareGame(nil)
	g.turn = core.ColorRed
	p := addPiece(t, g, core.ColorRed, 2, 6)

	result, err := g.AttemptMove(p, targetSquare(t, g, 3, 7))
	require.NoError(t, err)
	assert.NotEmpty(t, result.Notice)
}

func TestCapturingLastPieceWinsGame(t *testing.T) {
	sink := &recordingSink{}
	g := bareGame(sink)
	black := addPiece(t, g, core.ColorBlack, 3, 5)
	addPiece(t, g, core.ColorRed, 2, 4)

	result, err := g.AttemptMove(black, targetSquare(t, g, 1, 3))
	require.NoError(t, err)

	assert.Equal(t, core.StateBlackWins, result.GameState)
	assert.Equal(t, core.StateBlackWins, g.State())

	// Further moves are rejected
	_, err = g.AttemptMove(black, targetSquare(t, g, 0, 2))
	require.ErrorIs(t, err, ErrGameOver)
}

func TestCaptureMovePanicsWithoutCapture(t *testing.T) {
	g := bareGame(nil)
	p := addPiece(t, g, core.ColorBlack, 3, 5)

	assert.Panics(t, func() {
		g.captureMove(p, targetSquare(t, g, 1, 3))
	}, "capture helper misuse is a contract violation")
}

func TestPieceAt(t *testing.T) {
	g := bareGame(nil)
	p := addPiece(t, g, core.ColorBlack, 3, 5)

	got, err := g.PieceAt(3, 5)
	require.NoError(t, err)
	assert.Same(t, p, got)

	_, err = g.PieceAt(0, 0)
	require.ErrorIs(t, err, ErrNoPiece)

	_, err = g.PieceAt(-1, 0)
	require.ErrorIs(t, err, board.ErrOutOfBounds)
}

func TestMoveHistory(t *testing.T) {
	g := bareGame(nil)
	black := addPiece(t, g, core.ColorBlack, 4, 6)
	red := addPiece(t, g, core.ColorRed, 0, 0)

	_, err := g.AttemptMove(black, targetSquare(t, g, 3, 5))
	require.NoError(t, err)
	_, err = g.AttemptMove(red, targetSquare(t, g, 1, 1))
	require.NoError(t, err)

	assert.Equal(t, []string{"4,6-3,5", "0,0-1,1"}, g.Moves())

	last := g.LastResult()
	require.NotNil(t, last)
	assert.Equal(t, "0,0-1,1", last.Move)
	assert.Equal(t, core.ColorRed, last.Player)
}

func TestSmallBoardSetup(t *testing.T) {
	g := New(4, nil)
	require.Equal(t, 4, g.Size())

	// One row per side on a 4x4 board
	reds, blacks := 0, 0
	for _, p := range g.Pieces() {
		switch p.Color {
		case core.ColorRed:
			reds++
			assert.Equal(t, 0, p.Y)
		case core.ColorBlack:
			blacks++
			assert.Equal(t, 3, p.Y)
		}
	}
	assert.Equal(t, 2, reds)
	assert.Equal(t, 2, blacks)
}

func TestErrorsCarryContext(t *testing.T) {
	g := bareGame(nil)
	p := addPiece(t, g, core.ColorBlack, 3, 5)

	_, err := g.AttemptMove(p, targetSquare(t, g, 3, 2))
	require.Error(t, err)
	assert.Contains(t, err.Error(), fmt.Sprintf("(%d,%d)", 3, 2))
}
