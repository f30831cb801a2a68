package solver

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazeworld/core"
	"github.com/katalvlaran/mazeworld/frontier"
	"github.com/katalvlaran/mazeworld/gridgraph"
	"github.com/katalvlaran/mazeworld/kruskal"
	"github.com/katalvlaran/mazeworld/maze"
)

// Controller owns the search state layered over one Maze.
type Controller struct {
	m          *maze.Maze
	mode       Mode
	frontier   *frontier.Frontier
	came       maze.CameFrom
	current    core.CellID
	found      bool
	done       bool
	pathLength int
	steps      int
	log        logrus.FieldLogger
}

// New wraps m. An unfinished maze starts in Setup; a maze that is already
// constructed gets its distances assigned and starts in None.
func New(m *maze.Maze, opts ...Option) *Controller {
	c := &Controller{
		m:        m,
		mode:     Setup,
		frontier: frontier.New(frontier.LIFO),
		came:     maze.CameFrom{},
		current:  m.Start(),
		log:      logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.WithFields(logrus.Fields{"rows": m.Rows(), "cols": m.Cols()})
	if m.Constructed() {
		c.finishSetup()
	}
	return c
}

// Maze returns the underlying maze.
func (c *Controller) Maze() *maze.Maze { return c.m }

// Mode returns the current state.
func (c *Controller) Mode() Mode { return c.mode }

// Current returns the cell the search or the player is on.
func (c *Controller) Current() core.CellID { return c.current }

// Found reports whether the exit has been reached in this search.
func (c *Controller) Found() bool { return c.found }

// DoneConstructing reports whether the maze is finished and labelled.
func (c *Controller) DoneConstructing() bool { return c.done }

// PathLength counts backtrack steps taken so far.
func (c *Controller) PathLength() int { return c.pathLength }

// WrongMoves counts visited cells that are not on the solution path.
func (c *Controller) WrongMoves() int { return c.m.NumVisited() }

// Steps counts search pops or manual moves in the current search.
func (c *Controller) Steps() int { return c.steps }

// Stats snapshots the current search.
func (c *Controller) Stats() Stats {
	return Stats{
		Mode:       c.mode,
		Steps:      c.steps,
		PathLength: c.pathLength,
		WrongMoves: c.WrongMoves(),
		Cells:      c.m.Len(),
	}
}

// Tick advances by one frame: a construction step in Setup, a search step
// in Depth or Breadth, a backtrack step in Backtrack. Other modes wait for
// input.
func (c *Controller) Tick() {
	switch c.mode {
	case Setup:
		c.StepConstruction()
	case Depth, Breadth:
		c.StepSearch()
	case Backtrack:
		c.StepBacktrack()
	}
}

// StepConstruction carves at most one passage. It reports whether the maze
// is finished; outside Setup it only reports.
func (c *Controller) StepConstruction() bool {
	if c.mode != Setup {
		return c.done
	}
	if c.m.StepConstruction() {
		c.finishSetup()
	}
	return c.done
}

func (c *Controller) finishSetup() {
	if err := c.m.AssignDistances(); err != nil {
		// Only reachable with a broken arena; stay in Setup.
		c.log.WithError(err).Error("assigning distances")
		return
	}
	c.done = true
	c.setMode(None)
}

// StepSearch pops one frontier cell in Depth or Breadth mode. Reaching the
// exit switches to Backtrack. Returns false outside those modes or when the
// frontier is empty.
func (c *Controller) StepSearch() bool {
	if c.mode != Depth && c.mode != Breadth {
		return false
	}
	id, ok := c.m.StepSearch(c.frontier, c.came)
	if !ok {
		c.log.WithField("mode", c.mode).Warn("frontier exhausted before the exit")
		return false
	}
	c.steps++
	c.current = id
	if id == c.m.End() {
		c.reachExit()
	}
	return true
}

// StepManual moves the player one passage in direction d. Returns false
// outside Manual mode; a move into a wall is a legal no-op returning true.
func (c *Controller) StepManual(d gridgraph.Direction) bool {
	if c.mode != Manual {
		return false
	}
	next := c.m.StepManual(d, c.current, c.came)
	if next != c.current {
		c.steps++
		c.current = next
	}
	if c.current == c.m.End() {
		c.reachExit()
	}
	return true
}

func (c *Controller) reachExit() {
	c.found = true
	c.m.Graph().SetState(c.m.End(), core.Path)
	c.log.WithFields(logrus.Fields{"mode": c.mode, "steps": c.steps}).Debug("exit reached")
	c.setMode(Backtrack)
}

// StepBacktrack walks one came-from link toward the start, marking the cell
// as part of the path. Reaching the start returns to None. Returns false
// outside Backtrack.
func (c *Controller) StepBacktrack() bool {
	if c.mode != Backtrack {
		return false
	}
	if c.current != c.m.Start() {
		link, ok := c.came[c.m.Cell(c.current).Pos]
		if !ok {
			c.log.WithField("cell", c.m.Cell(c.current).Pos).Error("no came-from link while backtracking")
			c.setMode(None)
			return false
		}
		c.current = link.From
		c.m.Graph().SetState(c.current, core.Path)
		c.pathLength++
	}
	if c.current == c.m.Start() {
		c.log.WithFields(logrus.Fields{
			"path":  c.pathLength,
			"wrong": c.WrongMoves(),
		}).Debug("path traced")
		c.setMode(None)
	}
	return true
}

// SetBias changes the construction bias. Only legal in Setup.
func (c *Controller) SetBias(b kruskal.Bias) bool {
	if c.mode != Setup {
		return false
	}
	c.m.SetBias(b)
	return true
}

// SetMode starts a fresh search in Depth, Breadth or Manual, or clears the
// search with None. It fails until construction is finished, and for Setup
// and Backtrack, which are entered only by the controller itself.
func (c *Controller) SetMode(mode Mode) bool {
	if !c.done {
		return false
	}
	switch mode {
	case None:
		c.ResetSearch()
	case Depth, Breadth:
		c.ResetSearch()
		d := frontier.LIFO
		if mode == Breadth {
			d = frontier.FIFO
		}
		c.frontier = frontier.New(d)
		c.frontier.Push(c.m.Start())
		c.setMode(mode)
	case Manual:
		c.ResetSearch()
		c.setMode(Manual)
		if c.current == c.m.End() {
			c.reachExit()
		}
	default:
		return false
	}
	return true
}

// ResetSearch keeps the maze and clears every search artefact. It does
// nothing in Setup.
func (c *Controller) ResetSearch() {
	if c.mode == Setup {
		return
	}
	c.m.ResetStates()
	c.frontier.Clear()
	c.came = maze.CameFrom{}
	c.current = c.m.Start()
	c.found = false
	c.pathLength = 0
	c.steps = 0
	c.setMode(None)
}

// Reset discards the maze and returns to Setup.
func (c *Controller) Reset() {
	c.m.Reset()
	c.frontier.Clear()
	c.came = maze.CameFrom{}
	c.current = c.m.Start()
	c.found = false
	c.done = false
	c.pathLength = 0
	c.steps = 0
	c.setMode(Setup)
}

func (c *Controller) setMode(mode Mode) {
	if c.mode == mode {
		return
	}
	c.log.WithFields(logrus.Fields{"from": c.mode, "to": mode}).Debug("mode change")
	c.mode = mode
}
