package http

import (
	"errors"
	"strings"

	"checkers/internal/board"
	"checkers/internal/core"
	"checkers/internal/game"

	"github.com/gofiber/fiber/v2"
)

// CreateGame creates a new game with an optional board size
func (h *HTTPHandler) CreateGame(c *fiber.Ctx) error {
	var req core.CreateGameRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
			Error:   "invalid request body",
			Code:    core.ErrInvalidRequest,
			Details: err.Error(),
		})
	}

	gameID := h.svc.GenerateGameID()

	if err := h.svc.CreateGame(gameID, req.BoardSize, nil); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
			Error:   "failed to create game",
			Code:    core.ErrInvalidRequest,
			Details: err.Error(),
		})
	}

	g, _ := h.svc.GetGame(gameID)
	return c.Status(fiber.StatusCreated).JSON(buildGameResponse(gameID, g))
}

// GetGame retrieves current game state
func (h *HTTPHandler) GetGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	g, err := h.svc.GetGame(gameID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(core.ErrorResponse{
			Error: "game not found",
			Code:  core.ErrGameNotFound,
		})
	}

	return c.JSON(buildGameResponse(gameID, g))
}

// DeleteGame removes a game
func (h *HTTPHandler) DeleteGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	if err := h.svc.DeleteGame(gameID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(core.ErrorResponse{
			Error: "game not found",
			Code:  core.ErrGameNotFound,
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// MakeMove submits a move for the piece at the from coordinate
func (h *HTTPHandler) MakeMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	var req core.MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
			Error:   "invalid request body",
			Code:    core.ErrInvalidRequest,
			Details: err.Error(),
		})
	}

	result, err := h.svc.MakeMove(gameID, req.FromX, req.FromY, req.ToX, req.ToY)
	if err != nil {
		return moveError(c, err)
	}

	g, _ := h.svc.GetGame(gameID)
	response := buildGameResponse(gameID, g)
	response.LastMove = moveInfo(result)

	return c.JSON(response)
}

// GetBoard returns the ASCII board rendering
func (h *HTTPHandler) GetBoard(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	ascii, err := h.svc.GetCurrentBoard(gameID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(core.ErrorResponse{
			Error: "game not found",
			Code:  core.ErrGameNotFound,
		})
	}

	g, _ := h.svc.GetGame(gameID)
	return c.JSON(core.BoardResponse{
		Size:  g.Size(),
		Board: ascii,
	})
}

// moveError maps engine errors to API error responses
func moveError(c *fiber.Ctx, err error) error {
	status := fiber.StatusBadRequest
	code := core.ErrInvalidRequest
	message := "invalid move"

	switch {
	case strings.Contains(err.Error(), "not found"):
		status = fiber.StatusNotFound
		code = core.ErrGameNotFound
		message = "game not found"
	case errors.Is(err, game.ErrWrongTurn):
		code = core.ErrWrongTurn
		message = "not this player's turn"
	case errors.Is(err, game.ErrDestinationOccupied):
		code = core.ErrSquareOccupied
		message = "destination square occupied"
	case errors.Is(err, game.ErrIllegalMove):
		code = core.ErrIllegalMove
		message = "piece can neither move nor capture there"
	case errors.Is(err, game.ErrGameOver):
		code = core.ErrGameOver
		message = "game is over"
	case errors.Is(err, board.ErrOutOfBounds):
		code = core.ErrOutOfBounds
		message = "coordinate outside the board"
	case errors.Is(err, game.ErrNoPiece):
		message = "no piece at the from coordinate"
	}

	return c.Status(status).JSON(core.ErrorResponse{
		Error:   message,
		Code:    code,
		Details: err.Error(),
	})
}

func buildGameResponse(gameID string, g *game.Game) core.GameResponse {
	pieces := make([]core.PieceInfo, 0, len(g.Pieces()))
	for _, p := range g.Pieces() {
		pieces = append(pieces, core.PieceInfo{
			Color: p.Color.String(),
			X:     p.X,
			Y:     p.Y,
		})
	}

	return core.GameResponse{
		GameID:   gameID,
		Size:     g.Size(),
		Turn:     g.CurrentTurn().String(),
		State:    g.State().String(),
		Pieces:   pieces,
		Moves:    g.Moves(),
		LastMove: moveInfo(g.LastResult()),
	}
}

func moveInfo(result *game.MoveResult) *core.MoveInfo {
	if result == nil {
		return nil
	}
	info := &core.MoveInfo{
		Move:        result.Move,
		PlayerColor: result.Player.String(),
		Notice:      result.Notice,
	}
	if result.Captured != nil {
		info.Captured = &core.PieceInfo{
			Color: result.Captured.Color.String(),
			X:     result.Captured.X,
			Y:     result.Captured.Y,
		}
	}
	return info
}
