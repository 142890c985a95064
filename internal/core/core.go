package core

type State int

const (
	StateOngoing State = iota
	StateRedWins
	StateBlackWins
)

func (s State) String() string {
	switch s {
	case StateRedWins:
		return "red wins"
	case StateBlackWins:
		return "black wins"
	default:
		return "ongoing"
	}
}

type Color byte

const (
	ColorRed   Color = 'r'
	ColorBlack Color = 'b'
)

func (c Color) String() string {
	switch c {
	case ColorRed:
		return "r"
	case ColorBlack:
		return "b"
	default:
		return "-"
	}
}

// Name returns the human readable color name
func (c Color) Name() string {
	switch c {
	case ColorRed:
		return "Red"
	case ColorBlack:
		return "Black"
	default:
		return "Unknown"
	}
}

func OppositeColor(c Color) Color {
	if c == ColorRed {
		return ColorBlack
	}
	return ColorRed
}

// ParseColor converts "r"/"b" back to a Color
func ParseColor(s string) (Color, bool) {
	switch s {
	case "r":
		return ColorRed, true
	case "b":
		return ColorBlack, true
	default:
		return 0, false
	}
}
