package maze

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazeworld/dfs"
	"github.com/katalvlaran/mazeworld/gridgraph"
)

// Validate checks that a constructed maze is a spanning tree: no passage
// carved twice, cells-1 passages, every cell reachable from the start and
// no cycle.
func (m *Maze) Validate() error {
	if !m.Constructed() {
		return ErrNotConstructed
	}
	carved := mapset.New[gridgraph.Edge]()
	for _, e := range m.tree {
		if carved.Has(e) {
			return fmt.Errorf("%w: %v", ErrDuplicatePassage, e)
		}
		carved.Put(e)
	}

	want := m.grid.Size() - 1
	if got := m.graph.EdgeCount(); got != want || len(m.tree) != want {
		return fmt.Errorf("%w: have %d (tree %d), want %d", ErrEdgeCount, got, len(m.tree), want)
	}
	res, err := dfs.DFS(m.graph, m.Start(), dfs.WithFullTraversal())
	if err != nil {
		return err
	}
	if res.Trees != 1 {
		return fmt.Errorf("%w: %d components", ErrDisconnected, res.Trees)
	}
	cyclic, err := dfs.HasCycle(m.graph)
	if err != nil {
		return err
	}
	if cyclic {
		return ErrCycle
	}
	return nil
}
