package game

// Game holds the complete state of a running game
type Game struct {
	Board     *Board
	Snake     *Snake
	Direction Direction
	Paused    bool
	Quit      bool
}

// NewGame creates a game on a width x height board with the snake
// in the center heading up
func NewGame(width, height int) *Game {
	g := &Game{Direction: Up}
	g.Reset(width, height)
	g.Snake.Paint(g.Board)
	return g
}

// Reset replaces board and snake with fresh ones of the given size.
// Direction, pause and quit state are kept. Only the first game paints
// its snake up front; after a reset the starting cell stays floor and
// the snake appears as it moves.
func (g *Game) Reset(width, height int) {
	g.Board = NewBoard(width, height)
	g.Snake = NewSnake(width/2, height/2)
}

// Resize resets the game if the dimensions differ from the current board
// and reports whether it did
func (g *Game) Resize(width, height int) bool {
	if width == g.Board.Width && height == g.Board.Height {
		return false
	}
	g.Reset(width, height)
	return true
}

// State returns the current loop state
func (g *Game) State() State {
	switch {
	case g.Quit:
		return Terminated
	case g.Paused:
		return Paused
	default:
		return Running
	}
}

// Update advances the snake one step unless the game is paused or over
func (g *Game) Update() {
	if g.State() != Running {
		return
	}
	g.Snake.Move(g.Board, g.Direction)
}

// TogglePause toggles the pause state
func (g *Game) TogglePause() {
	if g.Quit {
		return
	}
	g.Paused = !g.Paused
}

// SetDirection turns the snake. Turns along the axis the snake is already
// moving on are rejected, which rules out reversing into the neck.
func (g *Game) SetDirection(newDir Direction) bool {
	if newDir.DX != 0 && g.Direction.DX != 0 {
		return false
	}
	if newDir.DY != 0 && g.Direction.DY != 0 {
		return false
	}
	g.Direction = newDir
	return true
}

// HandleKey applies a single key press
func (g *Game) HandleKey(k Key) {
	switch k {
	case KeyQuit, KeyInterrupt:
		g.Quit = true
	case KeyPause:
		g.TogglePause()
	case KeyLeft:
		g.SetDirection(Left)
	case KeyRight:
		g.SetDirection(Right)
	case KeyUp:
		g.SetDirection(Up)
	case KeyDown:
		g.SetDirection(Down)
	}
}
