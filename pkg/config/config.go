package config

import "time"

// Speed settings
const (
	TickInterval = 50 * time.Millisecond // Time budget of one game tick
)

// Snake settings
const (
	FullGrownLen = 15 // Segments kept once the snake stops growing
)

// Characters for rendering
const (
	CharFloor     = ' '
	CharSnakeBody = 'X'
)

// HelpText is printed right into the top-left corner of a fresh board
const HelpText = "Press 'q' to quit, 'p' to pause."

// Input settings
const (
	KeyBufferSize = 64 // Pending key events buffered between two ticks
)
