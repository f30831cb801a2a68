package dfs

import "github.com/katalvlaran/mazeworld/core"

// cycleFrame tracks one stack level of HasCycle. parentSkipped ensures only
// the single reciprocal of the tree edge is ignored, so a doubled passage
// still counts as a 2-cycle.
type cycleFrame struct {
	id            core.CellID
	parent        core.CellID
	nbrs          []core.CellID
	next          int
	parentSkipped bool
}

// HasCycle reports whether the undirected graph g contains a cycle.
// Every passage is expected in both directions, as core.Graph stores it.
// Returns ErrGraphNil for a nil graph.
//
// Complexity: O(V + E) time, O(V) memory.
func HasCycle(g Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	n := g.Len()
	state := make([]int, n)

	for root := 0; root < n; root++ {
		if state[root] != White {
			continue
		}
		state[root] = Gray
		stack := []cycleFrame{{id: core.CellID(root), parent: core.NoCell, nbrs: g.Neighbors(core.CellID(root))}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next == len(top.nbrs) {
				state[top.id] = Black
				stack = stack[:len(stack)-1]
				continue
			}
			nbr := top.nbrs[top.next]
			top.next++

			if nbr == top.parent && !top.parentSkipped {
				top.parentSkipped = true
				continue
			}
			if nbr == top.id || state[nbr] != White {
				return true, nil
			}
			state[nbr] = Gray
			stack = append(stack, cycleFrame{id: nbr, parent: top.id, nbrs: g.Neighbors(nbr)})
		}
	}
	return false, nil
}
