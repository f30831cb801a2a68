// Package mazeworld generates perfect mazes over a rectangular grid and
// solves them step by step.
//
// What is in here?
//
//	gridgraph/ positions, directions, grid bounds, candidate edge list
//	dsu/       position-keyed disjoint set with full-sweep union
//	core/      the cell arena: cells, passages, search states, distances
//	kruskal/   randomized, optionally biased, candidate edge supplier
//	frontier/  LIFO/FIFO frontier for depth- and breadth-first search
//	bfs/, dfs/ traversals used for distance labels and validation
//	maze/      step-wise randomized Kruskal construction and search steps
//	solver/    the setup → search → backtrack state machine
//	cmd/mazeworld headless `solve` and terminal `play` front-ends
//
// Quick start:
//
//	m, _ := maze.New(20, 30, maze.WithBias(kruskal.Horizontal))
//	c := solver.New(m)
//	stats, err := c.Solve(solver.Breadth)
//
// Every step function is synchronous and single-threaded; a presentation
// loop calls solver.Controller.Tick once per frame.
package mazeworld
