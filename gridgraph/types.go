package gridgraph

import (
	"fmt"
	"strings"
)

// Position is an immutable grid coordinate. X grows to the right, Y grows down.
type Position struct {
	X, Y int
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns p shifted by the given offset.
func (p Position) Add(o Offset) Position {
	return Position{X: p.X + o.DX, Y: p.Y + o.DY}
}

// String renders p as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Offset is a unit step on the grid.
type Offset struct {
	DX, DY int
}

// Direction names one of the four orthogonal moves.
type Direction int

const (
	// Left moves to x-1.
	Left Direction = iota
	// Right moves to x+1.
	Right
	// Up moves to y-1.
	Up
	// Down moves to y+1.
	Down
)

var directionNames = [...]string{"left", "right", "up", "down"}

var directionOffsets = [...]Offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Directions returns the four directions in a fixed order.
func Directions() []Direction {
	return []Direction{Left, Right, Up, Down}
}

// Offset returns the unit step for d.
func (d Direction) Offset() Offset {
	if d < Left || d > Down {
		return Offset{}
	}
	return directionOffsets[d]
}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

func (d Direction) String() string {
	if d < Left || d > Down {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection maps "left", "right", "up" or "down" (any case) to a Direction.
func ParseDirection(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range directionNames {
		if n == name {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadDirection, s)
}

// Edge is an undirected pair of orthogonally adjacent positions.
// CandidateEdges always orders A before B in row-major order.
type Edge struct {
	A, B Position
}

func (e Edge) String() string {
	return e.A.String() + "-" + e.B.String()
}

// Horizontal reports whether the two endpoints share a row.
func (e Edge) Horizontal() bool {
	return e.A.Y == e.B.Y
}

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|.
func Manhattan(a, b Position) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
