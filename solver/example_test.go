package solver_test

import (
	"fmt"

	"github.com/katalvlaran/mazeworld/maze"
	"github.com/katalvlaran/mazeworld/solver"
)

// ExampleController_Solve shows that depth-first and breadth-first search
// trace the same path through a perfect maze.
func ExampleController_Solve() {
	m, _ := maze.New(12, 16, maze.WithSeed(7))
	c := solver.New(m)

	dfs, _ := c.Solve(solver.Depth)
	bfs, _ := c.Solve(solver.Breadth)
	fmt.Println("same length:", dfs.PathLength == bfs.PathLength)
	fmt.Println("tree distance:", dfs.PathLength == m.Cell(m.End()).DistFromStart)
	// Output:
	// same length: true
	// tree distance: true
}
