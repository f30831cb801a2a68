package kruskal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazeworld/gridgraph"
	"github.com/katalvlaran/mazeworld/kruskal"
)

// lineEdges builds n distinct synthetic edges; index i is recoverable from A.X.
func lineEdges(n int) []gridgraph.Edge {
	edges := make([]gridgraph.Edge, n)
	for i := range edges {
		edges[i] = gridgraph.Edge{A: gridgraph.Pos(i, 0), B: gridgraph.Pos(i+1, 0)}
	}
	return edges
}

// TestSupplier_EachEdgeOnce drains suppliers for every bias and asserts
// every edge comes back exactly once.
func TestSupplier_EachEdgeOnce(t *testing.T) {
	grid, _ := gridgraph.NewGrid(7, 5)
	edges := grid.CandidateEdges()
	for _, bias := range []kruskal.Bias{kruskal.None, kruskal.Horizontal, kruskal.Vertical} {
		t.Run(bias.String(), func(t *testing.T) {
			s := kruskal.NewSupplier(edges, bias, kruskal.NewRand(42))
			seen := make(map[gridgraph.Edge]int, len(edges))
			for s.HasNext() {
				e, ok := s.Next()
				require.True(t, ok)
				seen[e]++
			}
			assert.Len(t, seen, len(edges))
			for e, n := range seen {
				assert.Equal(t, 1, n, "edge %v returned %d times", e, n)
			}
			_, ok := s.Next()
			assert.False(t, ok, "exhausted supplier must report false")
			assert.Zero(t, s.Remaining())
		})
	}
}

// TestSupplier_Deterministic: the same seed yields the same order.
func TestSupplier_Deterministic(t *testing.T) {
	edges := lineEdges(50)
	a := kruskal.NewSupplier(edges, kruskal.None, kruskal.NewRand(7))
	b := kruskal.NewSupplier(edges, kruskal.None, kruskal.NewRand(7))
	for a.HasNext() {
		ea, _ := a.Next()
		eb, _ := b.Next()
		require.Equal(t, ea, eb)
	}
}

// TestSupplier_BiasSkewsFirstDraws samples the first 1000 draws out of 2000
// edges; neither half can run dry, so the share drawn from the first half
// tracks the threshold (±~5 standard deviations).
func TestSupplier_BiasSkewsFirstDraws(t *testing.T) {
	const total, draws = 2000, 1000
	cases := []struct {
		bias   kruskal.Bias
		lo, hi int
	}{
		{kruskal.None, 420, 580},
		{kruskal.Horizontal, 620, 780},
		{kruskal.Vertical, 220, 380},
	}
	for _, tc := range cases {
		t.Run(tc.bias.String(), func(t *testing.T) {
			s := kruskal.NewSupplier(lineEdges(total), tc.bias, kruskal.NewRand(1))
			firstHalf := 0
			for i := 0; i < draws; i++ {
				e, ok := s.Next()
				require.True(t, ok)
				if e.A.X < total/2 {
					firstHalf++
				}
			}
			assert.GreaterOrEqual(t, firstHalf, tc.lo)
			assert.LessOrEqual(t, firstHalf, tc.hi)
		})
	}
}

// TestSupplier_OddSplit: the first half takes the extra element.
func TestSupplier_OddSplit(t *testing.T) {
	// Vertical bias draws the second half first whenever it can; with 3
	// edges the second half holds exactly index 2.
	s := kruskal.NewSupplier(lineEdges(3), kruskal.Vertical, kruskal.NewRand(3))
	s.SetBias(kruskal.Vertical)
	assert.Equal(t, kruskal.Vertical, s.Bias())
	assert.Equal(t, 3, s.Remaining())

	got := make(map[int]bool)
	for s.HasNext() {
		e, _ := s.Next()
		got[e.A.X] = true
	}
	assert.Equal(t, map[int]bool{0: true, 1: true, 2: true}, got)
}

func TestSupplier_Empty(t *testing.T) {
	s := kruskal.NewSupplier(nil, kruskal.None, nil)
	assert.False(t, s.HasNext())
	_, ok := s.Next()
	assert.False(t, ok)
}

func TestParseBias(t *testing.T) {
	cases := map[string]kruskal.Bias{
		"":           kruskal.None,
		"none":       kruskal.None,
		"h":          kruskal.Horizontal,
		"Horizontal": kruskal.Horizontal,
		"vert":       kruskal.Vertical,
	}
	for in, want := range cases {
		got, err := kruskal.ParseBias(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := kruskal.ParseBias("diagonal")
	assert.ErrorIs(t, err, kruskal.ErrUnknownBias)

	assert.Equal(t, 5, kruskal.None.Threshold())
	assert.Equal(t, 7, kruskal.Horizontal.Threshold())
	assert.Equal(t, 3, kruskal.Vertical.Threshold())
}
