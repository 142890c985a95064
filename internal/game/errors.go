package game

import "errors"

var (
	ErrWrongTurn           = errors.New("not this player's turn")
	ErrDestinationOccupied = errors.New("destination square occupied")
	ErrIllegalMove         = errors.New("piece can neither move nor capture to that square")
	ErrGameOver            = errors.New("game is over")
	ErrNoPiece             = errors.New("no piece at square")
)
