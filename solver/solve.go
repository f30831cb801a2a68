package solver

import "fmt"

// Solve runs a whole depth-first or breadth-first search and its backtrack
// synchronously, finishing construction first if needed.
func (c *Controller) Solve(mode Mode) (Stats, error) {
	if mode != Depth && mode != Breadth {
		return Stats{}, fmt.Errorf("%w: %s", ErrUnsupportedMode, mode)
	}
	for c.mode == Setup && !c.StepConstruction() {
	}
	if !c.SetMode(mode) {
		return Stats{}, fmt.Errorf("%w: %s", ErrUnsupportedMode, mode)
	}
	for c.mode == mode {
		if !c.StepSearch() {
			return c.Stats(), fmt.Errorf("%w after %d steps", ErrNoPath, c.steps)
		}
	}
	for c.mode == Backtrack {
		if !c.StepBacktrack() {
			return c.Stats(), fmt.Errorf("%w: broken came-from chain", ErrNoPath)
		}
	}
	st := c.Stats()
	st.Mode = mode
	return st, nil
}
