package core

import (
	"fmt"

	"github.com/katalvlaran/mazeworld/gridgraph"
)

// Graph owns one Cell per slot of a grid, in row-major order.
type Graph struct {
	grid  gridgraph.Grid
	cells []Cell
	edges int // undirected passages carved so far
}

// NewGraph allocates an unconnected cell for every position of grid.
// Complexity: O(Rows×Cols).
func NewGraph(grid gridgraph.Grid) *Graph {
	g := &Graph{
		grid:  grid,
		cells: make([]Cell, grid.Size()),
	}
	for i := range g.cells {
		g.cells[i].Pos = grid.Coordinate(i)
	}
	return g
}

// Grid returns the grid the cells were allocated for.
func (g *Graph) Grid() gridgraph.Grid {
	return g.grid
}

// Len returns the number of cells.
func (g *Graph) Len() int {
	return len(g.cells)
}

// Has reports whether id addresses a cell of g.
func (g *Graph) Has(id CellID) bool {
	return id >= 0 && int(id) < len(g.cells)
}

// Cell returns the cell addressed by id, or nil when id is out of range.
// The pointer stays valid for the lifetime of g.
func (g *Graph) Cell(id CellID) *Cell {
	if !g.Has(id) {
		return nil
	}
	return &g.cells[id]
}

// CellAt resolves a grid position to its CellID.
// Returns a wrapped gridgraph.ErrOutOfBounds for positions outside the grid.
func (g *Graph) CellAt(p gridgraph.Position) (CellID, error) {
	idx, err := g.grid.Index(p)
	if err != nil {
		return NoCell, fmt.Errorf("core: CellAt: %w", err)
	}
	return CellID(idx), nil
}

// Cells returns the arena in row-major order. Callers may read but must not
// append to the slice.
func (g *Graph) Cells() []Cell {
	return g.cells
}

// Connect carves a passage between two neighbouring cells, appending
// a→b to a.Out and b→a to b.Out.
func (g *Graph) Connect(a, b CellID) error {
	if !g.Has(a) || !g.Has(b) {
		return fmt.Errorf("%w: %d or %d", ErrCellNotFound, a, b)
	}
	if a == b {
		return fmt.Errorf("%w: %v", ErrSelfLoop, g.cells[a].Pos)
	}
	if gridgraph.Manhattan(g.cells[a].Pos, g.cells[b].Pos) != 1 {
		return fmt.Errorf("%w: %v and %v", ErrNotAdjacent, g.cells[a].Pos, g.cells[b].Pos)
	}
	g.cells[a].Out = append(g.cells[a].Out, Connection{From: a, To: b})
	g.cells[b].Out = append(g.cells[b].Out, Connection{From: b, To: a})
	g.edges++
	return nil
}

// EdgeCount returns the number of undirected passages carved.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Neighbors lists the cells reachable from id through one passage, in carve
// order. Returns nil for an unknown id.
func (g *Graph) Neighbors(id CellID) []CellID {
	if !g.Has(id) {
		return nil
	}
	out := make([]CellID, 0, len(g.cells[id].Out))
	for _, c := range g.cells[id].Out {
		out = append(out, c.To)
	}
	return out
}

// NeighborInDir returns the cell one passage away from id in direction d.
// The second result is false when no passage leads that way.
func (g *Graph) NeighborInDir(id CellID, d gridgraph.Direction) (CellID, bool) {
	if !g.Has(id) {
		return NoCell, false
	}
	want, ok := g.grid.Neighbor(g.cells[id].Pos, d)
	if !ok {
		return NoCell, false
	}
	for _, c := range g.cells[id].Out {
		if g.cells[c.To].Pos == want {
			return c.To, true
		}
	}
	return NoCell, false
}

// HasEdgeInDir reports whether a passage leaves id in direction d.
func (g *Graph) HasEdgeInDir(id CellID, d gridgraph.Direction) bool {
	_, ok := g.NeighborInDir(id, d)
	return ok
}

// SetState sets the search state of id. Unknown ids are ignored.
func (g *Graph) SetState(id CellID, s CellState) {
	if g.Has(id) {
		g.cells[id].State = s
	}
}

// CountState returns the number of cells currently in state s.
func (g *Graph) CountState(s CellState) int {
	n := 0
	for i := range g.cells {
		if g.cells[i].State == s {
			n++
		}
	}
	return n
}

// ResetStates marks every cell Unvisited, keeping passages and distances.
func (g *Graph) ResetStates() {
	for i := range g.cells {
		g.cells[i].State = Unvisited
	}
}

// Reset removes every passage and clears states and distances.
func (g *Graph) Reset() {
	for i := range g.cells {
		g.cells[i].reset()
	}
	g.edges = 0
}
