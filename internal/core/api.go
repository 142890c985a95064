package core

// Error codes
const (
	ErrGameNotFound      = "GAME_NOT_FOUND"
	ErrIllegalMove       = "ILLEGAL_MOVE"
	ErrWrongTurn         = "WRONG_TURN"
	ErrSquareOccupied    = "SQUARE_OCCUPIED"
	ErrOutOfBounds       = "OUT_OF_BOUNDS"
	ErrGameOver          = "GAME_OVER"
	ErrRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	ErrInvalidContent    = "INVALID_CONTENT_TYPE"
	ErrInvalidRequest    = "INVALID_REQUEST"
	ErrInternalError     = "INTERNAL_ERROR"
)

// Request types

type CreateGameRequest struct {
	BoardSize int `json:"boardSize,omitempty" validate:"omitempty,min=4,max=16"`
}

type MoveRequest struct {
	FromX int `json:"fromX" validate:"min=0,max=15"`
	FromY int `json:"fromY" validate:"min=0,max=15"`
	ToX   int `json:"toX" validate:"min=0,max=15"`
	ToY   int `json:"toY" validate:"min=0,max=15"`
}

// Response types

type GameResponse struct {
	GameID   string      `json:"gameId"`
	Size     int         `json:"size"`
	Turn     string      `json:"turn"`  // "r" or "b"
	State    string      `json:"state"` // "ongoing", "red wins", "black wins"
	Pieces   []PieceInfo `json:"pieces"`
	Moves    []string    `json:"moves"`
	LastMove *MoveInfo   `json:"lastMove,omitempty"`
}

type PieceInfo struct {
	Color string `json:"color"` // "r" or "b"
	X     int    `json:"x"`
	Y     int    `json:"y"`
}

type MoveInfo struct {
	Move        string     `json:"move"`
	PlayerColor string     `json:"playerColor"`
	Captured    *PieceInfo `json:"captured,omitempty"`
	Notice      string     `json:"notice,omitempty"`
}

type BoardResponse struct {
	Size  int    `json:"size"`
	Board string `json:"board"` // ASCII representation
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}
