package maze

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazeworld/gridgraph"
)

// Constructed reports whether the spanning tree is complete: it holds
// cells-1 passages, or the supplier has no candidate left.
func (m *Maze) Constructed() bool {
	return len(m.tree) >= m.grid.Size()-1 || !m.supplier.HasNext()
}

// StepConstruction performs one randomized Kruskal step and reports whether
// construction is finished.
//
// Steps:
//  1. Already complete → true.
//  2. Draw the next candidate edge.
//  3. Endpoints already connected → discard (it would close a cycle).
//  4. Otherwise carve it in both directions and union the components.
//  5. Return whether the tree is now complete.
func (m *Maze) StepConstruction() bool {
	if m.Constructed() {
		return true
	}
	e, _ := m.supplier.Next()

	same, err := m.reps.SameComponent(e.A, e.B)
	if err != nil {
		m.log.WithError(err).WithField("edge", e).Error("candidate edge outside disjoint set")
		return m.Constructed()
	}
	if !same {
		if err = m.carve(e); err != nil {
			m.log.WithError(err).WithField("edge", e).Error("carve failed")
		}
	}

	done := m.Constructed()
	if done {
		m.log.WithFields(logrus.Fields{
			"edges":     len(m.tree),
			"remaining": m.supplier.Remaining(),
			"bias":      m.bias,
		}).Debug("maze constructed")
	}
	return done
}

// carve adds e to the tree, merges its components and connects its cells.
func (m *Maze) carve(e gridgraph.Edge) error {
	a, err := m.graph.CellAt(e.A)
	if err != nil {
		return err
	}
	b, err := m.graph.CellAt(e.B)
	if err != nil {
		return err
	}
	if err = m.reps.Union(e.A, e.B); err != nil {
		return err
	}
	if err = m.graph.Connect(a, b); err != nil {
		return err
	}
	m.tree = append(m.tree, e)
	return nil
}

// Construct runs StepConstruction to completion and assigns both distance
// labels.
func (m *Maze) Construct() error {
	for !m.StepConstruction() {
	}
	return m.AssignDistances()
}
