package solver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	// ErrUnknownMode is returned by ParseMode for an unrecognized name.
	ErrUnknownMode = errors.New("solver: unknown mode")
	// ErrUnsupportedMode indicates Solve was asked for a mode that cannot run
	// unattended.
	ErrUnsupportedMode = errors.New("solver: mode cannot be solved automatically")
	// ErrNoPath indicates the frontier ran dry before the exit was reached.
	ErrNoPath = errors.New("solver: exit not reachable")
)

// Mode is the controller state.
type Mode int

const (
	// Setup builds the maze, one candidate edge per tick.
	Setup Mode = iota
	// None waits for a search mode to be chosen.
	None
	// Depth searches depth-first.
	Depth
	// Breadth searches breadth-first.
	Breadth
	// Manual follows user moves.
	Manual
	// Backtrack walks the came-from chain from the exit to the start.
	Backtrack
)

var modeNames = [...]string{"setup", "none", "depth", "breadth", "manual", "backtrack"}

func (m Mode) String() string {
	if m < Setup || m > Backtrack {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Searching reports whether m advances by search or manual steps.
func (m Mode) Searching() bool {
	return m == Depth || m == Breadth || m == Manual
}

// ParseMode maps a mode name (case-insensitive; "dfs" and "bfs" are accepted
// as aliases) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "setup":
		return Setup, nil
	case "none", "":
		return None, nil
	case "depth", "dfs", "d":
		return Depth, nil
	case "breadth", "bfs", "b":
		return Breadth, nil
	case "manual", "m":
		return Manual, nil
	case "backtrack":
		return Backtrack, nil
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Stats summarizes one search.
type Stats struct {
	Mode Mode
	// Steps counts frontier pops or manual moves.
	Steps int
	// PathLength counts backtrack steps, i.e. passages on the solution path.
	PathLength int
	// WrongMoves counts cells visited but not on the solution path.
	WrongMoves int
	Cells      int
}

func (s Stats) String() string {
	return fmt.Sprintf("mode=%s steps=%d path=%d wrong=%d cells=%d",
		s.Mode, s.Steps, s.PathLength, s.WrongMoves, s.Cells)
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger routes transition logging to l. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}
