// Package bfs provides breadth-first search over a maze graph, returning
// unweighted shortest-path distances, parent links and visit order.
//
// What
//
//   - Explore cells in non-decreasing distance (passage count) from a start cell.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: per-cell distance from start (-1 when unreached)
//   - Parent: per-cell predecessor in the BFS tree (core.NoCell for the start)
//   - Hooks at three stages: OnEnqueue, OnDequeue, OnVisit (may abort).
//   - Neighbour filtering via WithFilterNeighbor and a MaxDepth limit.
//
// Why
//
//   - Distance labels: a maze is a spanning tree, so the BFS depth of a cell
//     is its unique tree distance from the start.
//   - Connectivity checks: a perfect maze is reached completely from any cell.
//
// Determinism
//
//	Neighbours are enqueued in the order Graph.Neighbors returns them, so the
//	visit sequence is fully reproducible.
//
// Complexity (V = cells, E = passages)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start cell does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNoPath               from Result.PathTo for an unreached destination.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
