package game

import "unicode"

// Point represents a coordinate on the game board
type Point struct {
	X int
	Y int
}

// Direction is a unit step along exactly one axis
type Direction struct {
	DX int
	DY int
}

// Movement directions
var (
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// Valid reports whether d moves exactly one cell along exactly one axis
func (d Direction) Valid() bool {
	if d.DX < -1 || d.DX > 1 || d.DY < -1 || d.DY > 1 {
		return false
	}
	return (d.DX == 0) != (d.DY == 0)
}

// Cell is the content of one board cell
type Cell byte

// Cell values painted by the game. Help text characters are stored as-is.
const (
	Floor     Cell = ' '
	SnakeBody Cell = 'X'
)

// State of the game loop
type State int

const (
	Running State = iota
	Paused
	Terminated
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Key identifies one key press. Printable keys are their rune,
// special keys live above the Unicode range.
type Key rune

// Special keys
const (
	KeyNone Key = -1

	KeyUp Key = unicode.MaxRune + 1 + iota
	KeyDown
	KeyLeft
	KeyRight
	KeyInterrupt // Ctrl-C, which raw mode delivers as a key instead of a signal
	KeyOther     // Any special key the game has no use for
)

// Command keys
const (
	KeyQuit  Key = 'q'
	KeyPause Key = 'p'
)

// Screen is the display surface the board renders onto
type Screen interface {
	// Size returns the current terminal dimensions in cells
	Size() (width, height int)
	// Draw clears the surface, writes rows top to bottom and flushes
	Draw(rows []string) error
}

// KeySource delivers pending key presses without blocking
type KeySource interface {
	// PollKey returns the next pending key, or KeyNone and false if there is none
	PollKey() (Key, bool)
}
