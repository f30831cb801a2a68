// Package dfs implements depth-first traversal and undirected cycle
// detection over a maze graph.
//
// Key features:
//   - DFS(g, start, opts...): single-source or full forest traversal
//     (WithFullTraversal), pre-order hook OnVisit, post-order hook OnExit,
//     MaxDepth and FilterNeighbor limits.
//   - HasCycle(g): reports whether an undirected graph (every passage stored
//     in both directions) contains a cycle. A perfect maze never does.
//
// Both walkers keep an explicit stack instead of recursing, so a 1000×1000
// maze whose tree degenerates into one long corridor does not exhaust the
// goroutine stack.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the stack and per-cell bookkeeping.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is not a cell of g.
//   - any error returned by OnVisit or OnExit, wrapped.
package dfs
