package input

import (
	"github.com/eiannone/keyboard"

	"github.com/hartwork/dumbsnake/pkg/config"
	"github.com/hartwork/dumbsnake/pkg/game"
)

// KeyboardHandler handles keyboard input
type KeyboardHandler struct {
	inputChan chan KeyInput
}

// KeyInput represents a keyboard input event
type KeyInput struct {
	Char rune
	Key  keyboard.Key
}

// NewKeyboardHandler creates a new keyboard input handler
func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{
		inputChan: make(chan KeyInput, config.KeyBufferSize),
	}
}

// Start puts the terminal into raw mode and begins listening for keys
func (h *KeyboardHandler) Start() error {
	if err := keyboard.Open(); err != nil {
		return err
	}

	go func() {
		for {
			char, key, err := keyboard.GetKey()
			if err != nil {
				return
			}
			h.inputChan <- KeyInput{Char: char, Key: key}
		}
	}()

	return nil
}

// Stop restores the terminal mode
func (h *KeyboardHandler) Stop() {
	keyboard.Close()
}

// PollKey returns the next pending key without blocking
func (h *KeyboardHandler) PollKey() (game.Key, bool) {
	select {
	case in := <-h.inputChan:
		return Translate(in), true
	default:
		return game.KeyNone, false
	}
}

// Translate maps a keyboard event to a game key
func Translate(input KeyInput) game.Key {
	switch input.Key {
	case keyboard.KeyArrowUp:
		return game.KeyUp
	case keyboard.KeyArrowDown:
		return game.KeyDown
	case keyboard.KeyArrowLeft:
		return game.KeyLeft
	case keyboard.KeyArrowRight:
		return game.KeyRight
	case keyboard.KeyCtrlC:
		return game.KeyInterrupt
	case keyboard.KeySpace:
		return game.Key(' ')
	}

	if input.Char != 0 {
		return game.Key(input.Char)
	}
	return game.KeyOther
}
