package main

import (
	"github.com/katalvlaran/mazeworld/core"
	"github.com/katalvlaran/mazeworld/gridgraph"
	"github.com/katalvlaran/mazeworld/solver"
)

// tile is one character cell of the drawn maze.
type tile int

const (
	tileWall tile = iota
	tileOpen
	tileVisited
	tilePath
	tileStart
	tileEnd
	tileCurrent
)

// board is the drawn maze: cell (x,y) sits at (2x+1, 2y+1), passages fill
// the character between two cells, every other character is wall.
type board struct {
	w, h  int
	tiles []tile
	// owner maps a character back to the cell whose state colours it, or
	// core.NoCell for walls.
	owner []core.CellID
}

func (b *board) at(x, y int) tile { return b.tiles[y*b.w+x] }

func (b *board) set(x, y int, t tile, id core.CellID) {
	b.tiles[y*b.w+x] = t
	b.owner[y*b.w+x] = id
}

func stateTile(s core.CellState, showPaths bool) tile {
	switch {
	case !showPaths:
		return tileOpen
	case s == core.Path:
		return tilePath
	case s == core.Visited:
		return tileVisited
	}
	return tileOpen
}

// layout draws the controller's maze. With showPaths off, search states are
// hidden and only the passages remain.
func layout(c *solver.Controller, showPaths bool) *board {
	m := c.Maze()
	b := &board{w: 2*m.Cols() + 1, h: 2*m.Rows() + 1}
	b.tiles = make([]tile, b.w*b.h)
	b.owner = make([]core.CellID, b.w*b.h)
	for i := range b.owner {
		b.owner[i] = core.NoCell
	}

	g := m.Graph()
	for i, cell := range m.Cells() {
		id := core.CellID(i)
		x, y := 2*cell.Pos.X+1, 2*cell.Pos.Y+1
		t := stateTile(cell.State, showPaths)
		b.set(x, y, t, id)
		for _, d := range []gridgraph.Direction{gridgraph.Right, gridgraph.Down} {
			nbr, ok := g.NeighborInDir(id, d)
			if !ok {
				continue
			}
			o := d.Offset()
			// A passage takes the weaker of its two ends' states so a
			// path is drawn unbroken only between two path cells.
			pt := t
			if nt := stateTile(g.Cell(nbr).State, showPaths); nt < pt {
				pt = nt
			}
			b.set(x+o.DX, y+o.DY, pt, id)
		}
	}

	start, end := g.Cell(m.Start()).Pos, g.Cell(m.End()).Pos
	b.set(2*start.X+1, 2*start.Y+1, tileStart, m.Start())
	b.set(2*end.X+1, 2*end.Y+1, tileEnd, m.End())
	if mode := c.Mode(); mode.Searching() || mode == solver.Backtrack {
		cur := g.Cell(c.Current()).Pos
		b.set(2*cur.X+1, 2*cur.Y+1, tileCurrent, c.Current())
	}
	return b
}
