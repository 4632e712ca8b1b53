package game

import "fmt"

// Direction is a unit step on the grid. The zero value means "keep heading".
type Direction struct {
	Dx, Dy int
}

var (
	Up    = Direction{Dx: 0, Dy: -1}
	Down  = Direction{Dx: 0, Dy: 1}
	Left  = Direction{Dx: -1, Dy: 0}
	Right = Direction{Dx: 1, Dy: 0}
)

var Directions = []Direction{Right, Down, Left, Up}

func (d Direction) Opposite() Direction {
	return Direction{Dx: -d.Dx, Dy: -d.Dy}
}

func (d Direction) IsZero() bool {
	return d.Dx == 0 && d.Dy == 0
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Direction{}:
		return "none"
	}
	return fmt.Sprintf("(%d,%d)", d.Dx, d.Dy)
}

type Position struct {
	X, Y int
}

func (p Position) Step(d Direction) Position {
	return Position{X: p.X + d.Dx, Y: p.Y + d.Dy}
}

// Key is a host-independent key code. Hosts translate their own key events
// into one of these before calling HandleInput.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

func (k Key) Direction() (Direction, bool) {
	switch k {
	case KeyUp:
		return Up, true
	case KeyDown:
		return Down, true
	case KeyLeft:
		return Left, true
	case KeyRight:
		return Right, true
	}
	return Direction{}, false
}

// isInterior reports whether p lies inside the one-cell border of a
// width x height board.
func isInterior(p Position, width, height int) bool {
	return p.X >= 1 && p.X <= width-2 && p.Y >= 1 && p.Y <= height-2
}
