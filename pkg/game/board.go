package game

import (
	"fmt"

	"github.com/hartwork/dumbsnake/pkg/config"
)

// Board is a fixed-size character grid the snake paints itself onto
type Board struct {
	Width  int
	Height int
	text   []byte // width*height cells, row after row
}

// NewBoard creates a board filled with floor and the help text overlaid
// from the top-left corner. Non-positive dimensions are a programming error.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("game: invalid board size %dx%d", width, height))
	}

	b := &Board{
		Width:  width,
		Height: height,
		text:   make([]byte, width*height),
	}
	for i := range b.text {
		b.text[i] = byte(Floor)
	}

	// Truncated to the grid when the board is smaller than the text
	copy(b.text, config.HelpText)

	return b
}

// InBounds reports whether (x, y) lies on the board
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// SetCell writes a cell. Writes outside the board are ignored.
func (b *Board) SetCell(x, y int, c Cell) {
	if !b.InBounds(x, y) {
		return
	}
	b.text[y*b.Width+x] = byte(c)
}

// Cell returns the content at (x, y), or Floor outside the board
func (b *Board) Cell(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Floor
	}
	return Cell(b.text[y*b.Width+x])
}

// Rows returns the grid as one string per line
func (b *Board) Rows() []string {
	rows := make([]string, b.Height)
	for y := range rows {
		rows[y] = string(b.text[y*b.Width : (y+1)*b.Width])
	}
	return rows
}

// Render clears the screen and draws the full grid
func (b *Board) Render(s Screen) error {
	return s.Draw(b.Rows())
}
