package kruskal

import (
	"math/rand"

	"github.com/katalvlaran/mazeworld/gridgraph"
)

// Supplier hands out a fixed set of edges in random order.
// Supplier is not safe for concurrent use.
type Supplier struct {
	horizontal []gridgraph.Edge
	vertical   []gridgraph.Edge
	bias       Bias
	rng        *rand.Rand
}

// NewSupplier partitions edges into two halves by list position and returns
// a Supplier drawing from them under bias. The input slice is copied.
// A nil rng uses the default deterministic seed.
func NewSupplier(edges []gridgraph.Edge, bias Bias, rng *rand.Rand) *Supplier {
	if rng == nil {
		rng = NewRand(0)
	}
	split := (len(edges) + 1) / 2
	s := &Supplier{
		horizontal: make([]gridgraph.Edge, split),
		vertical:   make([]gridgraph.Edge, len(edges)-split),
		bias:       bias,
		rng:        rng,
	}
	copy(s.horizontal, edges[:split])
	copy(s.vertical, edges[split:])
	return s
}

// HasNext reports whether any edge remains.
func (s *Supplier) HasNext() bool {
	return len(s.horizontal)+len(s.vertical) > 0
}

// Remaining returns the number of edges not yet returned.
func (s *Supplier) Remaining() int {
	return len(s.horizontal) + len(s.vertical)
}

// Bias returns the current bias.
func (s *Supplier) Bias() Bias {
	return s.bias
}

// SetBias changes the bias for subsequent draws. The partition is unchanged.
func (s *Supplier) SetBias(b Bias) {
	s.bias = b
}

// Next removes and returns a random remaining edge. The second result is
// false once the supplier is exhausted.
func (s *Supplier) Next() (gridgraph.Edge, bool) {
	if !s.HasNext() {
		return gridgraph.Edge{}, false
	}
	preferHorizontal := s.rng.Intn(drawRange) < s.bias.Threshold()
	switch {
	case preferHorizontal && len(s.horizontal) > 0, len(s.vertical) == 0:
		return s.take(&s.horizontal), true
	default:
		return s.take(&s.vertical), true
	}
}

// take swap-removes a uniformly random element of *half.
func (s *Supplier) take(half *[]gridgraph.Edge) gridgraph.Edge {
	h := *half
	i := s.rng.Intn(len(h))
	e := h[i]
	last := len(h) - 1
	h[i] = h[last]
	*half = h[:last]
	return e
}
