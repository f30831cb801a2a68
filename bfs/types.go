package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazeworld/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start cell is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a destination the search never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Graph is the read-only view BFS needs. *core.Graph satisfies it.
type Graph interface {
	Len() int
	Neighbors(id core.CellID) []core.CellID
}

// Option configures BFS behavior via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// OnEnqueue is called when a cell is enqueued, with its depth.
	OnEnqueue func(id core.CellID, depth int)

	// OnDequeue is called immediately before visiting a cell.
	OnDequeue func(id core.CellID, depth int)

	// OnVisit is called when visiting a cell. A returned error aborts BFS.
	OnVisit func(id core.CellID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth. 0 means no limit.
	MaxDepth int

	// FilterNeighbor can skip a passage curr→neighbor by returning false.
	FilterNeighbor func(curr, neighbor core.CellID) bool

	err error
}

// DefaultOptions returns Options with no-op hooks, no depth limit and no
// filtering.
func DefaultOptions() Options {
	return Options{
		OnEnqueue:      func(core.CellID, int) {},
		OnDequeue:      func(core.CellID, int) {},
		OnVisit:        func(core.CellID, int) error { return nil },
		FilterNeighbor: func(_, _ core.CellID) bool { return true },
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id core.CellID, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(id core.CellID, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id core.CellID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbours when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor core.CellID) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal.
type Result struct {
	// Start is the cell the search began at.
	Start core.CellID
	// Order lists cells in visit sequence.
	Order []core.CellID
	// Depth[id] is the distance from Start, or -1 if id was not reached.
	Depth []int
	// Parent[id] is the predecessor of id, or core.NoCell.
	Parent []core.CellID
}

// Reached reports whether id was discovered.
func (r *Result) Reached(id core.CellID) bool {
	return id >= 0 && int(id) < len(r.Depth) && r.Depth[id] >= 0
}

// PathTo reconstructs the path from Start to dest, both inclusive.
func (r *Result) PathTo(dest core.CellID) ([]core.CellID, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: to cell %d", ErrNoPath, dest)
	}
	path := make([]core.CellID, 0, r.Depth[dest]+1)
	for cur := dest; cur != core.NoCell; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
