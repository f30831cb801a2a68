package dfs

import (
	"errors"

	"github.com/katalvlaran/mazeworld/core"
)

// Visitation colours.
const (
	White = iota // not discovered yet
	Gray         // on the current stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil graph is passed to DFS or HasCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start cell does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Graph is the read-only view the walkers need. *core.Graph satisfies it.
type Graph interface {
	Len() int
	Neighbors(id core.CellID) []core.CellID
}

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// OnVisit, if non-nil, is invoked when a cell is discovered (pre-order).
	OnVisit func(id core.CellID) error

	// OnExit, if non-nil, is invoked after all descendants are explored
	// (post-order), before the cell is appended to Result.Order.
	OnExit func(id core.CellID) error

	// MaxDepth, if non-negative, limits traversal depth. 0 visits only the
	// start cell. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbour before descending.
	FilterNeighbor func(id core.CellID) bool

	// FullTraversal restarts from every undiscovered cell in index order.
	FullTraversal bool
}

// DefaultOptions returns Options with no hooks, no depth limit, no filter
// and single-source traversal.
func DefaultOptions() Options {
	return Options{MaxDepth: -1}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id core.CellID) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(id core.CellID) error) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth to limit.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips neighbours for which fn returns false.
func WithFilterNeighbor(fn func(id core.CellID) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal covers every component of the graph.
func WithFullTraversal() Option {
	return func(o *Options) {
		o.FullTraversal = true
	}
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records cells in the sequence they finished (post-order).
	Order []core.CellID

	// Depth[id] is the discovery depth, or -1 if id was not reached.
	Depth []int

	// Parent[id] is the cell id was discovered from, or core.NoCell.
	Parent []core.CellID

	// Trees counts the roots traversal started from.
	Trees int
}

// Visited reports whether id was discovered.
func (r *Result) Visited(id core.CellID) bool {
	return id >= 0 && int(id) < len(r.Depth) && r.Depth[id] >= 0
}

// Count returns the number of discovered cells.
func (r *Result) Count() int {
	n := 0
	for _, d := range r.Depth {
		if d >= 0 {
			n++
		}
	}
	return n
}
