package dfs

import (
	"fmt"

	"github.com/katalvlaran/mazeworld/core"
)

// frame is one level of the explicit recursion stack.
type frame struct {
	id    core.CellID
	nbrs  []core.CellID
	next  int
	depth int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph Graph
	opts  Options
	res   *Result
}

// DFS performs depth-first search on g from start, or over every component
// when WithFullTraversal is given (start is then ignored).
// Returns the Result or an error if a hook aborted; on abort Order is nil.
func DFS(g Graph, start core.CellID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	n := g.Len()
	if !o.FullTraversal && (start < 0 || int(start) >= n) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	res := &Result{
		Order:  make([]core.CellID, 0, n),
		Depth:  make([]int, n),
		Parent: make([]core.CellID, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = -1
		res.Parent[i] = core.NoCell
	}
	w := &dfsWalker{graph: g, opts: o, res: res}

	if !o.FullTraversal {
		return res, w.traverse(start)
	}
	for i := 0; i < n; i++ {
		if res.Depth[i] < 0 {
			if err := w.traverse(core.CellID(i)); err != nil {
				return res, err
			}
		}
	}
	return res, nil
}

// traverse explores the tree rooted at root with an explicit stack,
// reproducing recursive pre-/post-order.
func (w *dfsWalker) traverse(root core.CellID) error {
	w.res.Trees++
	if err := w.discover(root, core.NoCell, 0); err != nil {
		return err
	}
	stack := []frame{{id: root, nbrs: w.graph.Neighbors(root)}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.nbrs) && (w.opts.MaxDepth < 0 || top.depth < w.opts.MaxDepth) {
			nid := top.nbrs[top.next]
			top.next++
			if w.res.Depth[nid] >= 0 {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
				continue
			}
			if err := w.discover(nid, top.id, top.depth+1); err != nil {
				return err
			}
			stack = append(stack, frame{id: nid, nbrs: w.graph.Neighbors(nid), depth: top.depth + 1})
			continue
		}

		// All neighbours handled: post-order.
		id := top.id
		stack = stack[:len(stack)-1]
		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(id); err != nil {
				w.res.Order = nil
				return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
			}
		}
		w.res.Order = append(w.res.Order, id)
	}
	return nil
}

// discover records depth and parent and runs the pre-order hook.
func (w *dfsWalker) discover(id, parent core.CellID, depth int) error {
	w.res.Depth[id] = depth
	w.res.Parent[id] = parent
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}
	return nil
}
