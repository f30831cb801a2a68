// Package frontier holds the pending cells of a step-wise maze search.
//
// A Frontier is a doubly linked list with a discipline: LIFO turns it into
// the stack of a depth-first search, FIFO into the queue of a breadth-first
// search. Duplicate entries are allowed; the search discards cells that were
// already expanded when they are popped.
package frontier

import (
	"container/list"
	"fmt"

	"github.com/katalvlaran/mazeworld/core"
)

// Discipline selects which end Pop removes from.
type Discipline uint8

const (
	// LIFO pops the most recently pushed cell (stack, depth-first).
	LIFO Discipline = iota
	// FIFO pops the oldest pushed cell (queue, breadth-first).
	FIFO
)

func (d Discipline) String() string {
	switch d {
	case LIFO:
		return "lifo"
	case FIFO:
		return "fifo"
	}
	return fmt.Sprintf("Discipline(%d)", uint8(d))
}

// Frontier is an ordered multiset of cells awaiting expansion.
// The zero value is not usable; create one with New.
type Frontier struct {
	d    Discipline
	list *list.List
}

// New returns an empty frontier with discipline d.
func New(d Discipline) *Frontier {
	return &Frontier{d: d, list: list.New()}
}

// Discipline returns the pop policy.
func (f *Frontier) Discipline() Discipline {
	return f.d
}

// Push adds id at the tail.
func (f *Frontier) Push(id core.CellID) {
	f.list.PushBack(id)
}

// Pop removes and returns the next cell: the tail under LIFO, the head under
// FIFO. Reports false on an empty frontier.
func (f *Frontier) Pop() (core.CellID, bool) {
	e := f.next()
	if e == nil {
		return core.NoCell, false
	}
	return f.list.Remove(e).(core.CellID), true
}

// Peek returns the cell Pop would return without removing it.
func (f *Frontier) Peek() (core.CellID, bool) {
	e := f.next()
	if e == nil {
		return core.NoCell, false
	}
	return e.Value.(core.CellID), true
}

func (f *Frontier) next() *list.Element {
	if f.d == FIFO {
		return f.list.Front()
	}
	return f.list.Back()
}

// Len returns the number of pending entries.
func (f *Frontier) Len() int {
	return f.list.Len()
}

// Clear drops every pending entry.
func (f *Frontier) Clear() {
	f.list.Init()
}
