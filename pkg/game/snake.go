package game

import (
	"fmt"

	"github.com/gammazero/deque"

	"github.com/hartwork/dumbsnake/pkg/config"
)

// Snake is the ordered body of the snake, head first
type Snake struct {
	body deque.Deque[Point]
}

// NewSnake creates a single-segment snake at (x, y)
func NewSnake(x, y int) *Snake {
	s := &Snake{}
	s.body.PushFront(Point{X: x, Y: y})
	return s
}

// Len returns the number of segments
func (s *Snake) Len() int {
	return s.body.Len()
}

// Head returns the position of the first segment
func (s *Snake) Head() Point {
	return s.body.Front()
}

// Tail returns the position of the last segment
func (s *Snake) Tail() Point {
	return s.body.Back()
}

// Segments returns all positions from head to tail
func (s *Snake) Segments() []Point {
	segments := make([]Point, s.body.Len())
	for i := range segments {
		segments[i] = s.body.At(i)
	}
	return segments
}

// Paint marks every segment on the board
func (s *Snake) Paint(b *Board) {
	for i := 0; i < s.body.Len(); i++ {
		p := s.body.At(i)
		b.SetCell(p.X, p.Y, SnakeBody)
	}
}

// Move grows the snake one cell in direction d, wrapping around the board
// edges, and cuts off the tail once the snake is longer than FullGrownLen.
// The board is updated in place.
func (s *Snake) Move(b *Board, d Direction) {
	if !d.Valid() {
		panic(fmt.Sprintf("game: invalid direction (%d,%d)", d.DX, d.DY))
	}

	head := s.body.Front()
	newHead := Point{
		X: (head.X + d.DX + b.Width) % b.Width,
		Y: (head.Y + d.DY + b.Height) % b.Height,
	}
	s.body.PushFront(newHead)
	b.SetCell(newHead.X, newHead.Y, SnakeBody)

	if s.body.Len() > config.FullGrownLen {
		tail := s.body.PopBack()
		b.SetCell(tail.X, tail.Y, Floor)
	}
}
