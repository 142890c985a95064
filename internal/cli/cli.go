// Package cli implements the terminal view for local checkers play.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"checkers/internal/board"
	"checkers/internal/core"
	"checkers/internal/game"

	"golang.org/x/term"
)

type CommandType int

const (
	CmdNone CommandType = iota
	CmdNew
	CmdMove
	CmdBoard
	CmdColor
	CmdHistory
	CmdHelp
	CmdQuit
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

type ColorTheme string

const (
	ThemeOff   ColorTheme = "off"
	ThemeBrown ColorTheme = "brown"
	ThemeGreen ColorTheme = "green"
	ThemeGray  ColorTheme = "gray"
)

type themeColors struct {
	lightBg string
	darkBg  string
	red     string
	black   string
	reset   string
}

var themes = map[ColorTheme]themeColors{
	ThemeOff: {},
	ThemeBrown: {
		lightBg: "\033[48;5;230m", // Beige
		darkBg:  "\033[48;5;94m",  // Brown
		red:     "\033[91m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
	ThemeGreen: {
		lightBg: "\033[48;5;157m", // Light green
		darkBg:  "\033[48;5;22m",  // Dark green
		red:     "\033[91m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
	ThemeGray: {
		lightBg: "\033[48;5;251m", // Light gray
		darkBg:  "\033[48;5;240m", // Dark gray
		red:     "\033[91m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
}

type CLI struct {
	input  *bufio.Scanner
	output io.Writer
	theme  ColorTheme
}

func New(input io.Reader, output io.Writer) *CLI {
	theme := ThemeOff
	if f, ok := output.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		theme = ThemeBrown
	}
	return &CLI{
		input:  bufio.NewScanner(input),
		output: output,
		theme:  theme,
	}
}

// GetCommand reads a command synchronously
func (c *CLI) GetCommand() (*Command, error) {
	if !c.input.Scan() {
		if err := c.input.Err(); err != nil {
			return nil, err
		}
		return &Command{Type: CmdQuit}, nil
	}

	input := strings.TrimSpace(c.input.Text())
	if input == "" {
		return &Command{Type: CmdNone}, nil
	}

	return c.parseCommand(input), nil
}

func (c *CLI) parseCommand(input string) *Command {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return &Command{Type: CmdNone}
	}

	cmd := parts[0]
	args := parts[1:]

	switch cmd {
	case "new":
		return &Command{Type: CmdNew, Args: args}
	case "move":
		return &Command{Type: CmdMove, Args: args, Raw: input}
	case "board":
		return &Command{Type: CmdBoard}
	case "color":
		return &Command{Type: CmdColor, Args: args}
	case "history":
		return &Command{Type: CmdHistory}
	case "help", "?":
		return &Command{Type: CmdHelp}
	case "quit", "exit":
		return &Command{Type: CmdQuit}
	default:
		// Assume it's a move in fx,fy-tx,ty notation
		return &Command{Type: CmdMove, Args: parts, Raw: input}
	}
}

func (c *CLI) SetTheme(theme ColorTheme) error {
	if _, ok := themes[theme]; !ok {
		return fmt.Errorf("invalid theme: %s (use: off, brown, green, gray)", theme)
	}
	c.theme = theme
	return nil
}

func (c *CLI) ShowMessage(msg string) {
	fmt.Fprintln(c.output, msg)
}

func (c *CLI) ShowError(err error) {
	c.ShowMessage(fmt.Sprintf("Error: %v", err))
}

func (c *CLI) ShowPrompt(prompt string) {
	fmt.Fprint(c.output, prompt)
}

func (c *CLI) DisplayBoard(b *board.Board) {
	theme := themes[c.theme]
	size := b.Size()
	var sb strings.Builder

	sb.WriteString("\n  ")
	for x := 0; x < size; x++ {
		sb.WriteString(fmt.Sprintf("%d ", x))
	}
	sb.WriteString("\n")

	for y := 0; y < size; y++ {
		sb.WriteString(fmt.Sprintf("%d ", y))
		for x := 0; x < size; x++ {
			sq, _ := b.SquareAt(x, y)
			piece := sq.Piece()

			if c.theme == ThemeOff {
				if piece == nil {
					sb.WriteString(". ")
				} else {
					sb.WriteString(fmt.Sprintf("%s ", piece.Color))
				}
				continue
			}

			bg := theme.lightBg
			if (x+y)%2 == 1 {
				bg = theme.darkBg
			}

			if piece == nil {
				sb.WriteString(fmt.Sprintf("%s  %s", bg, theme.reset))
			} else {
				color := theme.black
				if piece.Color == core.ColorRed {
					color = theme.red
				}
				sb.WriteString(fmt.Sprintf("%s%s%s %s", bg, color, piece.Color, theme.reset))
			}
		}
		sb.WriteString(fmt.Sprintf(" %d\n", y))
	}
	sb.WriteString("  ")
	for x := 0; x < size; x++ {
		sb.WriteString(fmt.Sprintf("%d ", x))
	}
	sb.WriteString("\n")

	c.ShowMessage(sb.String())
}

func (c *CLI) ShowMoveResult(result *game.MoveResult) {
	msg := fmt.Sprintf("%s moved %s", result.Player.Name(), result.Move)
	if result.Captured != nil {
		msg += fmt.Sprintf(", capturing the %s piece at (%d,%d)",
			result.Captured.Color.Name(), result.Captured.X, result.Captured.Y)
	}
	c.ShowMessage(msg)
}

func (c *CLI) ShowGameOver(state core.State) {
	c.ShowMessage(fmt.Sprintf("Game over: %s", state))
}

func (c *CLI) ShowGameHistory(g *game.Game) {
	moves := g.Moves()
	if len(moves) == 0 {
		c.ShowMessage("No moves yet.")
		return
	}
	for i, move := range moves {
		c.ShowMessage(fmt.Sprintf("%3d. %s", i+1, move))
	}
}

func (c *CLI) ShowHelp() {
	help := `Commands:
  new [size]       - Start a new game (default board size 8)
  move fx,fy-tx,ty - Move the piece at (fx,fy) to (tx,ty), e.g. move 2,5-3,4
  <move>           - Bare move notation also works, e.g. 2,5-3,4
  board            - Redraw the board
  history          - Show game move history
  color <theme>    - Set board color theme (off|brown|green|gray)
  quit/exit        - Exit the program
  help/?           - Show this help message`

	c.ShowMessage(help)
}

func (c *CLI) ShowWelcome() {
	c.ShowMessage("Welcome to Checkers!")
	c.ShowMessage("Commands: new [size], move fx,fy-tx,ty, board, history, color, help/?, quit")
	c.ShowMessage("Black moves first. Black advances up the board, red advances down.")
	c.ShowMessage("")
}
