package maze

import (
	"github.com/katalvlaran/mazeworld/core"
	"github.com/katalvlaran/mazeworld/frontier"
	"github.com/katalvlaran/mazeworld/gridgraph"
)

// CameFrom records, per reached position, the connection it was first
// reached by.
type CameFrom map[gridgraph.Position]core.Connection

// StepSearch pops one cell from f and expands it.
//
//   - A cell that is no longer Unvisited is a duplicate entry: nothing happens.
//   - The exit cell is marked core.Path; its neighbours are not expanded.
//   - Any other cell is marked Visited, and every neighbour without a came-from
//     entry (other than the start) is pushed and recorded.
//
// Returns the popped cell, or false when f was empty.
func (m *Maze) StepSearch(f *frontier.Frontier, came CameFrom) (core.CellID, bool) {
	next, ok := f.Pop()
	if !ok {
		return core.NoCell, false
	}
	cell := m.graph.Cell(next)
	if cell == nil || cell.State != core.Unvisited {
		return next, true
	}
	if next == m.End() {
		cell.State = core.Path
		return next, true
	}
	for _, nbr := range m.graph.Neighbors(next) {
		if nbr == m.Start() {
			continue
		}
		pos := m.graph.Cell(nbr).Pos
		if _, seen := came[pos]; seen {
			continue
		}
		f.Push(nbr)
		came[pos] = core.Connection{From: next, To: nbr}
	}
	cell.State = core.Visited
	return next, true
}

// StepManual moves from current through the passage in direction dir.
// Without a passage that way current is returned unchanged. The cell moved
// into is marked Visited (a Path cell keeps its state) and gets a came-from
// entry only on its first visit; the start never gets one.
func (m *Maze) StepManual(dir gridgraph.Direction, current core.CellID, came CameFrom) core.CellID {
	next, ok := m.graph.NeighborInDir(current, dir)
	if !ok {
		return current
	}
	cell := m.graph.Cell(next)
	if cell.State == core.Unvisited {
		cell.State = core.Visited
	}
	if next != m.Start() {
		if _, seen := came[cell.Pos]; !seen {
			came[cell.Pos] = core.Connection{From: current, To: next}
		}
	}
	return next
}
