package gridgraph

import "fmt"

// Grid is a Rows×Cols rectangle of cells addressed by Position.
// The zero value is not usable; build one with NewGrid.
type Grid struct {
	Rows, Cols int
}

// NewGrid validates the dimensions and returns the grid.
// Returns ErrEmptyGrid if rows < 1 or cols < 1.
func NewGrid(rows, cols int) (Grid, error) {
	if rows < 1 || cols < 1 {
		return Grid{}, fmt.Errorf("%w: rows=%d, cols=%d", ErrEmptyGrid, rows, cols)
	}
	return Grid{Rows: rows, Cols: cols}, nil
}

// Size returns the number of cells.
func (g Grid) Size() int {
	return g.Rows * g.Cols
}

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.Cols && p.Y >= 0 && p.Y < g.Rows
}

// Index maps p to its row-major index y*Cols + x.
// Returns ErrOutOfBounds for positions outside the grid.
func (g Grid) Index(p Position) (int, error) {
	if !g.InBounds(p) {
		return -1, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, g.Cols, g.Rows)
	}
	return g.index(p), nil
}

func (g Grid) index(p Position) int {
	return p.Y*g.Cols + p.X
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (g Grid) Coordinate(idx int) Position {
	return Position{X: idx % g.Cols, Y: idx / g.Cols}
}

// Neighbor returns the position one step from p in direction d and whether
// that position is inside the grid.
func (g Grid) Neighbor(p Position, d Direction) (Position, bool) {
	n := p.Add(d.Offset())
	return n, g.InBounds(n) && n != p
}

// Positions lists every position in row-major order.
func (g Grid) Positions() []Position {
	out := make([]Position, 0, g.Size())
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			out = append(out, Position{X: x, Y: y})
		}
	}
	return out
}
