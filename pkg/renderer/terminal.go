package renderer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// TerminalRenderer draws full frames onto an ANSI terminal
type TerminalRenderer struct {
	out     io.Writer
	fd      int
	getSize func(fd int) (width, height int, err error)
	width   int
	height  int
	buffer  strings.Builder
}

// NewTerminalRenderer creates a renderer writing to f
func NewTerminalRenderer(f *os.File) *TerminalRenderer {
	return newTerminalRenderer(f, int(f.Fd()))
}

func newTerminalRenderer(out io.Writer, fd int) *TerminalRenderer {
	return &TerminalRenderer{
		out:     out,
		fd:      fd,
		getSize: term.GetSize,
	}
}

// Size returns the terminal dimensions, or the last known ones if the
// terminal cannot be queried
func (r *TerminalRenderer) Size() (width, height int) {
	w, h, err := r.getSize(r.fd)
	if err == nil && w > 0 && h > 0 {
		r.width, r.height = w, h
	}
	return r.width, r.height
}

// clearScreen moves the cursor home and clears the terminal
func (r *TerminalRenderer) clearScreen() {
	r.buffer.WriteString("\033[H\033[2J")
}

// ShowCursor shows the cursor (call on exit)
func (r *TerminalRenderer) ShowCursor() error {
	_, err := fmt.Fprint(r.out, "\033[?25h")
	return err
}

// HideCursor hides the cursor (call on start)
func (r *TerminalRenderer) HideCursor() error {
	_, err := fmt.Fprint(r.out, "\033[?25l")
	return err
}

// Reset clears the terminal and shows the cursor again
func (r *TerminalRenderer) Reset() error {
	_, err := fmt.Fprint(r.out, "\033[H\033[2J\033[?25h")
	return err
}

// Draw clears the screen and writes rows as one buffered frame.
// The terminal is queried again right before writing, and output is
// clipped to that size: a frame built for a terminal that shrank in
// the meantime would otherwise wrap and scroll.
func (r *TerminalRenderer) Draw(rows []string) error {
	width, height := r.Size()

	r.buffer.Reset()
	r.clearScreen()

	for y, row := range rows {
		if height > 0 && y >= height {
			break
		}
		if y > 0 {
			// Explicit \r, the keyboard's raw mode may leave newline translation off
			r.buffer.WriteString("\r\n")
		}
		if width > 0 {
			row = runewidth.Truncate(row, width, "")
		}
		r.buffer.WriteString(row)
	}

	_, err := fmt.Fprint(r.out, r.buffer.String())
	return err
}
