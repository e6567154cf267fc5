package terminal

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"

	"github.com/hartwork/dumbsnake/pkg/game"
	"github.com/hartwork/dumbsnake/pkg/input"
	"github.com/hartwork/dumbsnake/pkg/renderer"
)

// ErrNotTerminal is returned when the game is not attached to a terminal
var ErrNotTerminal = errors.New("stdout is not a terminal")

// Keyboard is the raw-mode key source owned by a session
type Keyboard interface {
	game.KeySource
	Stop()
}

// Display is the screen owned by a session
type Display interface {
	game.Screen
	Reset() error
}

// Session owns the terminal for the lifetime of a game: raw keyboard
// input and the display. Close restores the terminal and is safe to
// call more than once.
type Session struct {
	Keys   Keyboard
	Screen Display

	closeOnce sync.Once
	closeErr  error
}

// Open switches the terminal into game mode
func Open() (*Session, error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, ErrNotTerminal
	}

	keys := input.NewKeyboardHandler()
	if err := keys.Start(); err != nil {
		return nil, fmt.Errorf("open keyboard: %w", err)
	}

	screen := renderer.NewTerminalRenderer(os.Stdout)
	if err := screen.HideCursor(); err != nil {
		keys.Stop()
		return nil, fmt.Errorf("hide cursor: %w", err)
	}

	return &Session{Keys: keys, Screen: screen}, nil
}

// Close gives the terminal back in the state it was found in. The
// keyboard is released even if resetting the display fails. Later
// calls do nothing and return the result of the first.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		if err := s.Screen.Reset(); err != nil {
			s.closeErr = fmt.Errorf("reset display: %w", err)
		}
		s.Keys.Stop()
	})
	return s.closeErr
}
