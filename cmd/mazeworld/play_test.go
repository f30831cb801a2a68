package main

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazeworld/kruskal"
	"github.com/katalvlaran/mazeworld/maze"
	"github.com/katalvlaran/mazeworld/solver"
)

func newTestGame(t *testing.T, rows, cols int) *game {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(120, 60)

	m, err := maze.New(rows, cols, maze.WithSeed(4), maze.WithLogger(quiet()))
	require.NoError(t, err)
	return newGame(screen, solver.New(m, solver.WithLogger(quiet())), quiet())
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

// screenLine reads row y of the simulated screen as text.
func screenLine(s tcell.Screen, y, width int) string {
	var sb strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := s.GetContent(x, y)
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), " ")
}

// tickUntil advances frames until cond holds.
func tickUntil(t *testing.T, g *game, cond func() bool) {
	t.Helper()
	for i := 0; !cond(); i++ {
		require.Less(t, i, 10000)
		g.tick()
	}
}

func TestGame_WaitsForBias(t *testing.T) {
	g := newTestGame(t, 4, 4)
	for i := 0; i < 10; i++ {
		g.tick()
	}
	assert.Empty(t, g.c.Maze().Tree(), "construction must wait for a bias key")

	g.draw()
	assert.Equal(t, "Choose a bias: n none, h horizontal, v vertical", screenLine(g.screen, 10, 60))

	assert.True(t, g.handleKey(key('v')))
	assert.True(t, g.started)
	assert.Equal(t, kruskal.Vertical, g.c.Maze().Bias())
	tickUntil(t, g, g.c.DoneConstructing)
	assert.Equal(t, solver.None, g.c.Mode())
}

func TestGame_MenuAndSearch(t *testing.T) {
	g := newTestGame(t, 5, 5)
	g.handleKey(key('n'))
	tickUntil(t, g, g.c.DoneConstructing)

	g.handleKey(key('d'))
	assert.Equal(t, solver.Depth, g.c.Mode())
	tickUntil(t, g, func() bool { return g.c.Found() && g.c.Mode() == solver.None })
	g.draw()
	assert.True(t, strings.HasPrefix(screenLine(g.screen, 12, 80), "Solved: path length"))

	g.handleKey(key('r'))
	assert.False(t, g.c.Found())

	g.handleKey(key('m'))
	assert.Equal(t, solver.Manual, g.c.Mode())
	g.handleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	g.handleKey(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	assert.LessOrEqual(t, g.c.Steps(), 2)

	g.handleKey(key('r'))
	g.handleKey(key('n'))
	assert.Equal(t, solver.Setup, g.c.Mode())
	assert.False(t, g.started)
}

func TestGame_Toggles(t *testing.T) {
	g := newTestGame(t, 3, 3)
	g.handleKey(key('h'))
	tickUntil(t, g, g.c.DoneConstructing)

	assert.True(t, g.showPaths)
	g.handleKey(key('p'))
	assert.False(t, g.showPaths)

	assert.Equal(t, gradientNone, g.gradient)
	g.handleKey(key('g'))
	assert.Equal(t, gradientFromStart, g.gradient)
	g.draw()
	g.handleKey(key('g'))
	g.handleKey(key('g'))
	assert.Equal(t, gradientNone, g.gradient)

	g.handleKey(key('s'))
	assert.True(t, g.showStats)
	g.draw()
	assert.True(t, strings.HasPrefix(screenLine(g.screen, 8, 80), "Cells: 9"))
	g.handleKey(key('s'))
	assert.False(t, g.showStats)
}

func TestGame_Quit(t *testing.T) {
	g := newTestGame(t, 2, 2)
	assert.False(t, g.handleKey(key('q')))
	assert.False(t, g.handleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}
