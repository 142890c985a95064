// Package main implements an interactive debugging client for the checkers server API.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"checkers/internal/client/api"
	"checkers/internal/client/display"
	"checkers/internal/core"
	"checkers/internal/game"

	"github.com/chzyer/readline"
)

type session struct {
	client      *api.Client
	currentGame string
	lastState   *core.GameResponse
}

func main() {
	baseURL := "http://localhost:8080"
	if len(os.Args) > 1 {
		baseURL = os.Args[1]
	}

	s := &session{client: api.New(baseURL)}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          display.Prompt("checkers"),
		HistoryFile:     ".checkers_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Printf("%s%s%s\n", display.Red, err.Error(), display.Reset)
		os.Exit(1)
	}
	defer rl.Close()

	fmt.Printf("%sCheckers Debug Client%s\n", display.Cyan, display.Reset)
	fmt.Printf("%sAPI: %s%s\n", display.Cyan, baseURL, display.Reset)
	fmt.Printf("Type 'help' for commands\n\n")

	for {
		rl.SetPrompt(buildPrompt(s))

		line, err := rl.Readline()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if line == "exit" || line == "quit" || line == "x" {
			break
		}

		// Check for verbose flag
		if strings.HasSuffix(line, " -v") {
			s.client.SetVerbose(true)
			line = strings.TrimSuffix(line, " -v")
		} else {
			s.client.SetVerbose(false)
		}

		execute(s, line)
	}
}

func buildPrompt(s *session) string {
	prompt := "checkers"
	if s.currentGame != "" {
		prompt += fmt.Sprintf(" [%s%s%s]", display.White, s.currentGame[:8], display.Reset)
	}
	if s.lastState != nil && s.lastState.State == "ongoing" {
		prompt += " - Turn:" + display.FormatTurn(s.lastState.Turn)
	}
	return display.Prompt(prompt)
}

func execute(s *session, line string) {
	parts := strings.Fields(line)
	cmd, args := parts[0], parts[1:]

	switch cmd {
	case "help", "?":
		showHelp()

	case "new":
		size := 0
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				fail("invalid size %q", args[0])
				return
			}
			size = n
		}
		resp, err := s.client.CreateGame(size)
		if err != nil {
			fail("%v", err)
			return
		}
		s.currentGame = resp.GameID
		s.lastState = resp
		fmt.Printf("Game created: %s\n", resp.GameID)
		showState(resp)

	case "game":
		if len(args) < 1 {
			fail("usage: game <gameId>")
			return
		}
		s.currentGame = args[0]
		s.refresh()

	case "state":
		if !s.requireGame() {
			return
		}
		s.refresh()

	case "move":
		if !s.requireGame() {
			return
		}
		if len(args) < 1 {
			fail("usage: move fx,fy-tx,ty")
			return
		}
		fromX, fromY, toX, toY, err := game.ParseMove(strings.Join(args, "-"))
		if err != nil {
			fail("%v", err)
			return
		}
		resp, err := s.client.Move(s.currentGame, fromX, fromY, toX, toY)
		if err != nil {
			fail("%v", err)
			return
		}
		s.lastState = resp
		if resp.LastMove != nil && resp.LastMove.Notice != "" {
			fmt.Printf("%s%s%s\n", display.Yellow, resp.LastMove.Notice, display.Reset)
		}
		showState(resp)

	case "board":
		if !s.requireGame() {
			return
		}
		resp, err := s.client.Board(s.currentGame)
		if err != nil {
			fail("%v", err)
			return
		}
		fmt.Println(resp.Board)

	case "delete":
		if !s.requireGame() {
			return
		}
		if err := s.client.DeleteGame(s.currentGame); err != nil {
			fail("%v", err)
			return
		}
		fmt.Printf("Game deleted: %s\n", s.currentGame)
		s.currentGame = ""
		s.lastState = nil

	case "health":
		resp, err := s.client.Health()
		if err != nil {
			fail("%v", err)
			return
		}
		fmt.Printf("%v\n", resp)

	case "url":
		if len(args) < 1 {
			fail("usage: url <baseURL>")
			return
		}
		s.client.SetBaseURL(args[0])
		fmt.Printf("API base URL set to %s\n", args[0])

	default:
		fail("unknown command %q, type 'help'", cmd)
	}
}

func (s *session) requireGame() bool {
	if s.currentGame == "" {
		fail("no active game, use 'new' or 'game <gameId>'")
		return false
	}
	return true
}

func (s *session) refresh() {
	resp, err := s.client.GetGame(s.currentGame)
	if err != nil {
		fail("%v", err)
		return
	}
	s.lastState = resp
	showState(resp)
}

func showState(resp *core.GameResponse) {
	fmt.Println(display.RenderPieces(resp.Size, resp.Pieces))
	fmt.Printf("State: %s, turn: %s, moves: %d\n",
		resp.State, display.FormatTurn(resp.Turn), len(resp.Moves))
}

func fail(format string, args ...interface{}) {
	fmt.Printf("%s%s%s\n", display.Red, fmt.Sprintf(format, args...), display.Reset)
}

func showHelp() {
	fmt.Print(`Commands:
  new [size]        - Create a game (optional board size)
  game <gameId>     - Attach to an existing game
  state             - Fetch and show current game state
  move fx,fy-tx,ty  - Move the piece at (fx,fy) to (tx,ty)
  board             - Show server-side ASCII board
  delete            - Delete the current game
  health            - Server health check
  url <baseURL>     - Change API base URL
  help/?            - This message
  exit/quit/x       - Leave

Append ' -v' to any command for request/response dumps.
`)
}
