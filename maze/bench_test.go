package maze_test

import (
	"testing"

	"github.com/katalvlaran/mazeworld/maze"
)

func BenchmarkConstruct_50x50(b *testing.B) {
	log := quietLogger()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m, _ := maze.New(50, 50, maze.WithSeed(int64(i+1)), maze.WithLogger(log))
		if err := m.Construct(); err != nil {
			b.Fatal(err)
		}
	}
}
