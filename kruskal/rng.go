package kruskal

import "math/rand"

// defaultSeed is used when callers pass seed == 0 or a nil *rand.Rand.
const defaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ defaultSeed; otherwise the seed verbatim.
//
// math/rand.Rand is not goroutine-safe; give each maze its own.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}
