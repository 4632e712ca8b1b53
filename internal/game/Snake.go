package game

import (
	"image/color"
	"slices"
)

// SnakeBody is everything GameState needs from a snake.
type SnakeBody interface {
	HeadPosition() Position
	HeadDirection() Direction
	// NextHead returns the cell the head would enter. A zero Direction keeps
	// the current heading. It never mutates the body.
	NextHead(dir Direction) Position
	OverlapsBody(p Position) bool
	// MoveForward commits one step. The tail is dropped unless growth is
	// pending from RestoreTail.
	MoveForward(dir Direction)
	RestoreTail()
	Render(s Surface, c color.RGBA)
	Len() int
	Body() []Position
}

type Snake struct {
	body          []Position // head first
	direction     Direction
	pendingGrowth int
}

// NewSnake creates the canonical two-cell snake with its head at spawn,
// heading right.
func NewSnake(spawn Position) *Snake {
	return &Snake{
		body:      []Position{spawn, {X: spawn.X - 1, Y: spawn.Y}},
		direction: Right,
	}
}

func (s *Snake) HeadPosition() Position {
	return s.body[0]
}

func (s *Snake) HeadDirection() Direction {
	return s.direction
}

func (s *Snake) NextHead(dir Direction) Position {
	if dir.IsZero() {
		dir = s.direction
	}
	return s.body[0].Step(dir)
}

func (s *Snake) OverlapsBody(p Position) bool {
	return slices.Contains(s.body, p)
}

func (s *Snake) MoveForward(dir Direction) {
	if !dir.IsZero() {
		s.direction = dir
	}
	head := s.body[0].Step(s.direction)

	if s.pendingGrowth > 0 {
		s.pendingGrowth--
		s.body = slices.Insert(s.body, 0, head)
		return
	}

	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = head
}

func (s *Snake) RestoreTail() {
	s.pendingGrowth++
}

func (s *Snake) Render(surface Surface, c color.RGBA) {
	for _, p := range s.body {
		surface.DrawBlock(c, p.X, p.Y)
	}
}

func (s *Snake) Len() int {
	return len(s.body)
}

func (s *Snake) Body() []Position {
	return slices.Clone(s.body)
}
