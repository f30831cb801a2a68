package main

import (
	"fmt"
	"io"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazeworld/core"
	"github.com/katalvlaran/mazeworld/gridgraph"
	"github.com/katalvlaran/mazeworld/kruskal"
	"github.com/katalvlaran/mazeworld/solver"
)

const frameInterval = 16 * time.Millisecond

var withSound bool

func init() {
	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Build and solve a maze in the terminal",
		Long: `Watch the maze being built and searched, or walk it yourself.

Setup:  n no bias, h horizontal bias, v vertical bias
Menu:   d depth-first, b breadth-first, m manual, s statistics, n new maze
Manual: arrow keys
Any:    r reset search, p toggle paths, g cycle distance gradient, q quit`,
		RunE: runPlay,
	}
	playCmd.Flags().BoolVar(&withSound, "sound", false, "Play a tone when the maze is built and solved")
	rootCmd.AddCommand(playCmd)
}

// gradient selects which distance label tints the open cells.
type gradient int

const (
	gradientNone gradient = iota
	gradientFromStart
	gradientFromExit
)

func (g gradient) next() gradient { return (g + 1) % 3 }

type game struct {
	screen tcell.Screen
	c      *solver.Controller
	log    logrus.FieldLogger
	sound  *chime

	started   bool
	showPaths bool
	showStats bool
	gradient  gradient

	// previous frame's controller flags, to detect events for the chime
	wasDone  bool
	wasFound bool
}

func newGame(screen tcell.Screen, c *solver.Controller, l logrus.FieldLogger) *game {
	return &game{screen: screen, c: c, log: l, showPaths: true}
}

func runPlay(_ *cobra.Command, _ []string) error {
	// Log lines would tear the screen; keep them only when sent to a file.
	if logFile == "" {
		log.SetOutput(io.Discard)
	}
	c, l, err := newController()
	if err != nil {
		return err
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	g := newGame(screen, c, l)
	if withSound {
		ch, err := newChime()
		if err != nil {
			l.WithError(err).Warn("audio unavailable")
		} else {
			g.sound = ch
			defer ch.close()
		}
	}
	g.run()
	return nil
}

func (g *game) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev := <-events:
			if !g.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			g.tick()
			g.draw()
		}
	}
}

// tick advances the controller one frame. Construction waits for the bias
// choice.
func (g *game) tick() {
	if g.c.Mode() != solver.Setup || g.started {
		g.c.Tick()
	}
	if done := g.c.DoneConstructing(); done && !g.wasDone {
		g.sound.built()
	}
	if found := g.c.Found(); found && !g.wasFound {
		g.sound.found()
	}
	g.wasDone, g.wasFound = g.c.DoneConstructing(), g.c.Found()
}

var arrowDirs = map[tcell.Key]gridgraph.Direction{
	tcell.KeyLeft:  gridgraph.Left,
	tcell.KeyRight: gridgraph.Right,
	tcell.KeyUp:    gridgraph.Up,
	tcell.KeyDown:  gridgraph.Down,
}

var setupBias = map[rune]kruskal.Bias{
	'n': kruskal.None,
	'h': kruskal.Horizontal,
	'v': kruskal.Vertical,
}

// handleEvent applies one input event. It returns false to quit.
func (g *game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.handleKey(ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

func (g *game) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return false
	}
	if d, ok := arrowDirs[ev.Key()]; ok {
		g.c.StepManual(d)
		return true
	}
	if ev.Key() != tcell.KeyRune {
		return true
	}

	r := ev.Rune()
	switch {
	case r == 'q':
		return false
	case g.c.Mode() == solver.Setup && !g.started:
		if b, ok := setupBias[r]; ok {
			g.c.SetBias(b)
			g.started = true
		}
	case g.c.Mode() == solver.None && g.c.DoneConstructing():
		g.menuKey(r)
	}

	switch r {
	case 'r':
		g.c.ResetSearch()
		g.gradient = gradientNone
		g.showPaths = true
	case 'p':
		g.showPaths = !g.showPaths
	case 'g':
		g.gradient = g.gradient.next()
	}
	return true
}

func (g *game) menuKey(r rune) {
	switch r {
	case 'b':
		g.c.SetMode(solver.Breadth)
		g.showStats = false
	case 'd':
		g.c.SetMode(solver.Depth)
		g.showStats = false
	case 'm':
		g.c.SetMode(solver.Manual)
		g.showStats = false
	case 'n':
		g.c.Reset()
		g.started = false
		g.showStats = false
		g.showPaths = true
		g.gradient = gradientNone
		g.wasDone, g.wasFound = false, false
	case 's':
		if g.showStats {
			g.c.ResetSearch()
		}
		g.showStats = !g.showStats
	}
}

var tileStyles = map[tile]tcell.Style{
	tileWall:    tcell.StyleDefault.Background(tcell.ColorGray),
	tileOpen:    tcell.StyleDefault.Background(tcell.ColorBlack),
	tileVisited: tcell.StyleDefault.Background(tcell.ColorLightSkyBlue),
	tilePath:    tcell.StyleDefault.Background(tcell.ColorRoyalBlue),
	tileStart:   tcell.StyleDefault.Background(tcell.ColorGreen),
	tileEnd:     tcell.StyleDefault.Background(tcell.ColorPurple),
	tileCurrent: tcell.StyleDefault.Background(tcell.ColorOrange),
}

// gradientStyle tints an open cell red-to-blue by its distance label.
func (g *game) gradientStyle(id core.CellID) (tcell.Style, bool) {
	m := g.c.Maze()
	if g.gradient == gradientNone || !g.c.DoneConstructing() || id == core.NoCell {
		return tcell.StyleDefault, false
	}
	target := core.FromStart
	if g.gradient == gradientFromExit {
		target = core.FromExit
	}
	top := m.MaxDistance(target)
	if top == 0 {
		return tcell.StyleDefault, false
	}
	d := m.Cell(id).Distance(target)
	shade := int32(255 * d / top)
	return tcell.StyleDefault.Background(tcell.NewRGBColor(255-shade, 0, shade)), true
}

func (g *game) draw() {
	g.screen.Clear()
	b := layout(g.c, g.showPaths)
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			t := b.at(x, y)
			style := tileStyles[t]
			if t == tileOpen {
				if gs, ok := g.gradientStyle(b.owner[y*b.w+x]); ok {
					style = gs
				}
			}
			// Two columns per character keep cells roughly square.
			g.screen.SetContent(2*x, y, ' ', nil, style)
			g.screen.SetContent(2*x+1, y, ' ', nil, style)
		}
	}
	for i, line := range g.status() {
		g.drawText(0, b.h+1+i, line)
	}
	g.screen.Show()
}

func (g *game) drawText(x, y int, s string) {
	for i, r := range s {
		g.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}

// status returns the text shown under the maze for the current mode.
func (g *game) status() []string {
	c := g.c
	switch {
	case c.Mode() == solver.Setup && !g.started:
		return []string{"Choose a bias: n none, h horizontal, v vertical"}
	case c.Mode() == solver.Setup:
		return []string{fmt.Sprintf("Building maze (%s bias)...", c.Maze().Bias())}
	case c.Mode() == solver.Backtrack:
		return []string{"Exit found, tracing the path back..."}
	case c.Mode() == solver.Manual:
		return []string{"Use the arrow keys to reach the exit. r resets."}
	case c.Mode().Searching():
		return []string{fmt.Sprintf("Searching %s-first: %d steps", c.Mode(), c.Steps())}
	case g.showStats:
		m := c.Maze()
		return []string{
			fmt.Sprintf("Cells: %d  Passages: %d  Bias: %s", m.Len(), len(m.Tree()), m.Bias()),
			fmt.Sprintf("Exit distance: %d  Farthest from start: %d  Farthest from exit: %d",
				m.Cell(m.End()).DistFromStart, m.MaxDistance(core.FromStart), m.MaxDistance(core.FromExit)),
			"s to close",
		}
	case c.Found():
		return []string{
			fmt.Sprintf("Solved: path length %d, wrong moves %d, steps %d",
				c.PathLength(), c.WrongMoves(), c.Steps()),
			"d depth, b breadth, m manual, n new maze, s stats, q quit",
		}
	}
	return []string{"d depth, b breadth, m manual, n new maze, s stats, q quit"}
}
