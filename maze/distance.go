package maze

import (
	"fmt"

	"github.com/katalvlaran/mazeworld/bfs"
	"github.com/katalvlaran/mazeworld/core"
)

// AssignDistancesFrom labels every cell with its tree distance from id,
// stored in the label selected by target. Cells not reachable from id (only
// possible before construction finishes) get 0.
func (m *Maze) AssignDistancesFrom(id core.CellID, target core.Target) error {
	res, err := bfs.BFS(m.graph, id)
	if err != nil {
		return fmt.Errorf("maze: distances from %d: %w", id, err)
	}
	for i := range m.graph.Cells() {
		d := res.Depth[i]
		if d < 0 {
			d = 0
		}
		m.graph.Cell(core.CellID(i)).SetDistance(target, d)
	}
	return nil
}

// AssignDistances labels every cell with its distance from the start and
// from the exit.
func (m *Maze) AssignDistances() error {
	if err := m.AssignDistancesFrom(m.Start(), core.FromStart); err != nil {
		return err
	}
	return m.AssignDistancesFrom(m.End(), core.FromExit)
}

// FarthestFrom returns the first cell, in row-major order, with the largest
// label for target.
func (m *Maze) FarthestFrom(target core.Target) core.CellID {
	best := m.Start()
	cells := m.graph.Cells()
	for i := range cells {
		if cells[i].Distance(target) > cells[best].Distance(target) {
			best = core.CellID(i)
		}
	}
	return best
}

// MaxDistance returns the largest label for target.
func (m *Maze) MaxDistance(target core.Target) int {
	return m.graph.Cell(m.FarthestFrom(target)).Distance(target)
}

// TreePath returns the unique passage path from a to b, both inclusive.
func (m *Maze) TreePath(a, b core.CellID) ([]core.CellID, error) {
	res, err := bfs.BFS(m.graph, a)
	if err != nil {
		return nil, fmt.Errorf("maze: path from %d: %w", a, err)
	}
	return res.PathTo(b)
}
