// Package dsu provides a disjoint-set (union-find) structure keyed by grid
// position, used to reject cycle-forming edges while a maze is carved.
//
// Every registered position maps directly to its representative. Union
// re-points every member of the first component at the representative of
// the second, so Find is a single map lookup and never needs compression.
//
// Complexity:
//
//   - Register, Find, SameComponent: O(1).
//   - Union: O(k), where k is the size of the component being absorbed.
//   - Memory: O(n) for n registered positions.
//
// Errors:
//
//   - ErrNotRegistered: Find, Union or SameComponent with an unknown position.
package dsu

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazeworld/gridgraph"
)

// ErrNotRegistered indicates a lookup of a position never passed to Register.
var ErrNotRegistered = errors.New("dsu: position not registered")

// Set is a partition of registered positions into components.
// Set is not safe for concurrent use.
type Set struct {
	// rep maps each registered position to its component representative.
	rep map[gridgraph.Position]gridgraph.Position
	// members maps each representative to every position it represents.
	members map[gridgraph.Position][]gridgraph.Position
}

// New returns an empty Set sized for capacity positions.
func New(capacity int) *Set {
	return &Set{
		rep:     make(map[gridgraph.Position]gridgraph.Position, capacity),
		members: make(map[gridgraph.Position][]gridgraph.Position, capacity),
	}
}

// Register adds p as its own singleton component. Registering an existing
// position is a no-op.
func (s *Set) Register(p gridgraph.Position) {
	if _, ok := s.rep[p]; ok {
		return
	}
	s.rep[p] = p
	s.members[p] = []gridgraph.Position{p}
}

// Find returns the representative of p's component.
func (s *Set) Find(p gridgraph.Position) (gridgraph.Position, error) {
	r, ok := s.rep[p]
	if !ok {
		return gridgraph.Position{}, fmt.Errorf("%w: %v", ErrNotRegistered, p)
	}
	return r, nil
}

// Union merges a's component into b's: afterwards every position that had
// Find(a) as representative reports Find(b). No-op when a and b already
// share a representative.
func (s *Set) Union(a, b gridgraph.Position) error {
	ra, err := s.Find(a)
	if err != nil {
		return err
	}
	rb, err := s.Find(b)
	if err != nil {
		return err
	}
	if ra == rb {
		return nil
	}
	moved := s.members[ra]
	for _, k := range moved {
		s.rep[k] = rb
	}
	s.members[rb] = append(s.members[rb], moved...)
	delete(s.members, ra)
	return nil
}

// SameComponent reports whether a and b share a representative.
func (s *Set) SameComponent(a, b gridgraph.Position) (bool, error) {
	ra, err := s.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := s.Find(b)
	if err != nil {
		return false, err
	}
	return ra == rb, nil
}

// Len returns the number of registered positions.
func (s *Set) Len() int {
	return len(s.rep)
}

// Components returns the number of distinct components.
func (s *Set) Components() int {
	return len(s.members)
}

// Reset splits every registered position back into its own component.
func (s *Set) Reset() {
	s.members = make(map[gridgraph.Position][]gridgraph.Position, len(s.rep))
	for p := range s.rep {
		s.rep[p] = p
		s.members[p] = []gridgraph.Position{p}
	}
}
