package game

import (
	"slices"
	"testing"
)

func TestNewSnake(t *testing.T) {
	s := NewSnake(Position{X: 2, Y: 2})

	if got := s.Body(); !slices.Equal(got, []Position{{X: 2, Y: 2}, {X: 1, Y: 2}}) {
		t.Fatalf("body = %v", got)
	}
	if s.HeadDirection() != Right {
		t.Errorf("direction = %v, want right", s.HeadDirection())
	}
}

func TestSnakeNextHeadIsPure(t *testing.T) {
	s := NewSnake(Position{X: 3, Y: 3})

	cases := []struct {
		dir  Direction
		want Position
	}{
		{Direction{}, Position{X: 4, Y: 3}},
		{Up, Position{X: 3, Y: 2}},
		{Down, Position{X: 3, Y: 4}},
		{Right, Position{X: 4, Y: 3}},
	}
	for _, c := range cases {
		if got := s.NextHead(c.dir); got != c.want {
			t.Errorf("NextHead(%v) = %v, want %v", c.dir, got, c.want)
		}
	}
	if s.HeadPosition() != (Position{X: 3, Y: 3}) || s.HeadDirection() != Right {
		t.Errorf("NextHead mutated the snake: head %v heading %v", s.HeadPosition(), s.HeadDirection())
	}
}

func TestSnakeMoveForwardDropsTail(t *testing.T) {
	s := NewSnake(Position{X: 3, Y: 3})

	s.MoveForward(Direction{})
	s.MoveForward(Down)

	want := []Position{{X: 4, Y: 4}, {X: 4, Y: 3}}
	if got := s.Body(); !slices.Equal(got, want) {
		t.Fatalf("body = %v, want %v", got, want)
	}
	if s.HeadDirection() != Down {
		t.Errorf("direction = %v, want down", s.HeadDirection())
	}
}

func TestSnakeRestoreTailGrowsOnNextMove(t *testing.T) {
	s := NewSnake(Position{X: 3, Y: 3})

	s.RestoreTail()
	if s.Len() != 2 {
		t.Fatalf("length = %d before moving, want 2", s.Len())
	}

	s.MoveForward(Direction{})
	if s.Len() != 3 {
		t.Fatalf("length = %d after growth move, want 3", s.Len())
	}

	s.MoveForward(Direction{})
	if s.Len() != 3 {
		t.Fatalf("length = %d after plain move, want 3", s.Len())
	}

	want := []Position{{X: 5, Y: 3}, {X: 4, Y: 3}, {X: 3, Y: 3}}
	if got := s.Body(); !slices.Equal(got, want) {
		t.Errorf("body = %v, want %v", got, want)
	}
}

func TestSnakeOverlapsBody(t *testing.T) {
	s := NewSnake(Position{X: 3, Y: 3})

	if !s.OverlapsBody(Position{X: 3, Y: 3}) || !s.OverlapsBody(Position{X: 2, Y: 3}) {
		t.Error("expected overlap on body cells")
	}
	if s.OverlapsBody(Position{X: 4, Y: 3}) {
		t.Error("unexpected overlap ahead of the head")
	}
}

func TestSnakeBodyIsACopy(t *testing.T) {
	s := NewSnake(Position{X: 3, Y: 3})
	body := s.Body()
	body[0] = Position{X: 9, Y: 9}

	if s.HeadPosition() != (Position{X: 3, Y: 3}) {
		t.Errorf("Body() exposed internal storage")
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := [][2]Direction{{Up, Down}, {Left, Right}}
	for _, p := range pairs {
		if p[0].Opposite() != p[1] || p[1].Opposite() != p[0] {
			t.Errorf("%v and %v are not opposites", p[0], p[1])
		}
	}
}
