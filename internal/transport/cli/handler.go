package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"checkers/internal/cli"
	"checkers/internal/core"
	"checkers/internal/game"
	"checkers/internal/service"
)

type CLIHandler struct {
	svc    *service.Service
	view   *cli.CLI
	gameID string
}

func New(svc *service.Service, view *cli.CLI) *CLIHandler {
	return &CLIHandler{
		svc:  svc,
		view: view,
	}
}

// The handler doubles as the engine's presentation sink: rule rejections
// and notices land directly on the terminal.

func (h *CLIHandler) Message(text string) {
	h.view.ShowMessage(text)
}

func (h *CLIHandler) BoardChanged(result *game.MoveResult) {
	h.view.ShowMoveResult(result)
}

func (h *CLIHandler) TurnChanged(turn core.Color) {
	h.view.ShowMessage(fmt.Sprintf("%s to move.", turn.Name()))
}

// Run is the main game loop - simple synchronous command processing
func (h *CLIHandler) Run() {
	for {
		h.view.ShowPrompt(h.getPrompt())

		cmd, err := h.view.GetCommand()
		if err != nil {
			break
		}

		if !h.ProcessCommand(cmd) {
			break
		}
	}
}

// getPrompt generates the appropriate command prompt
func (h *CLIHandler) getPrompt() string {
	prompt := "> "
	if h.gameID != "" {
		g, err := h.svc.GetGame(h.gameID)
		if err == nil && g.State() == core.StateOngoing {
			prompt = fmt.Sprintf("[%s]> ", g.CurrentTurn())
		}
	}
	return prompt
}

// ProcessCommand handles user commands - returns false to exit
func (h *CLIHandler) ProcessCommand(cmd *cli.Command) bool {
	switch cmd.Type {
	case cli.CmdQuit:
		return false

	case cli.CmdNone:
		return true

	case cli.CmdNew:
		size := 0
		if len(cmd.Args) > 0 {
			n, err := strconv.Atoi(cmd.Args[0])
			if err != nil || n < 4 {
				h.view.ShowMessage("Invalid board size. Usage: new [size]")
				return true
			}
			size = n
		}
		return h.handleNewGame(size)

	case cli.CmdMove:
		if h.gameID == "" {
			h.view.ShowMessage("No active game. Use 'new' to start one.")
			return true
		}
		h.handleMove(cmd.Args)

	case cli.CmdBoard:
		if h.gameID == "" {
			h.view.ShowMessage("No active game.")
			return true
		}
		h.displayBoard()

	case cli.CmdHistory:
		if h.gameID == "" {
			h.view.ShowMessage("No active game.")
			return true
		}
		g, err := h.svc.GetGame(h.gameID)
		if err == nil {
			h.view.ShowGameHistory(g)
		}

	case cli.CmdColor:
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: color <off|brown|green|gray>")
			return true
		}
		if err := h.view.SetTheme(cli.ColorTheme(cmd.Args[0])); err != nil {
			h.view.ShowError(err)
		} else {
			h.displayBoard()
		}

	case cli.CmdHelp:
		h.view.ShowHelp()
	}

	return true
}

func (h *CLIHandler) handleNewGame(size int) bool {
	gameID := h.svc.GenerateGameID()
	if err := h.svc.CreateGame(gameID, size, h); err != nil {
		h.view.ShowError(err)
		return true
	}
	h.gameID = gameID
	h.view.ShowMessage("New game started. Black moves first.")
	h.displayBoard()
	return true
}

func (h *CLIHandler) handleMove(args []string) {
	notation := strings.Join(args, "-")
	fromX, fromY, toX, toY, err := game.ParseMove(notation)
	if err != nil {
		h.view.ShowMessage("Invalid move. Usage: move fx,fy-tx,ty (e.g. move 2,5-3,4)")
		return
	}

	result, err := h.svc.MakeMove(h.gameID, fromX, fromY, toX, toY)
	if err != nil {
		if !sinkReported(err) {
			h.view.ShowError(err)
		}
		return
	}

	h.displayBoard()

	if result.GameState != core.StateOngoing {
		h.view.ShowGameOver(result.GameState)
		h.gameID = ""
	}
}

// sinkReported filters errors the engine already surfaced through the sink
func sinkReported(err error) bool {
	return errors.Is(err, game.ErrWrongTurn) ||
		errors.Is(err, game.ErrDestinationOccupied) ||
		errors.Is(err, game.ErrIllegalMove) ||
		errors.Is(err, game.ErrGameOver)
}

func (h *CLIHandler) displayBoard() {
	g, err := h.svc.GetGame(h.gameID)
	if err != nil {
		return
	}
	h.view.DisplayBoard(g.Board())
}
