package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/pathviz/grid"
	"github.com/milk9111/pathviz/palette"
	"github.com/milk9111/pathviz/prefabs"
	"github.com/milk9111/pathviz/system"
	"github.com/milk9111/pathviz/world"
)

const (
	frameInterval = 16 * time.Millisecond
	// cellCols is how many terminal columns one grid cell takes, so cells
	// look roughly square.
	cellCols = 2
	// statusRows are kept free under the grid.
	statusRows = 2
)

// App is the terminal front end: it owns the screen and the cursor used
// in place of a mouse.
type App struct {
	screen    tcell.Screen
	world     *world.World
	scheduler *world.Scheduler
	palette   palette.Palette
	styles    [world.ViewPath + 1]tcell.Style
	cursor    grid.Point
	buttons   tcell.ButtonMask
	last      string
}

func NewApp(screen tcell.Screen, w *world.World, spec prefabs.VisualizerSpec) *App {
	a := &App{
		screen:  screen,
		world:   w,
		palette: palette.FromSpec(spec.Palette),
		cursor:  grid.Point{X: w.Grid.Width / 2, Y: w.Grid.Height / 2},
	}
	for v := world.ViewEmpty; v <= world.ViewPath; v++ {
		a.styles[v] = tcell.StyleDefault.Background(tcellColor(a.palette.View(v)))
	}

	screen.EnableMouse()

	events := system.NewEventLogSystem(false)
	events.OnEvent = a.onEvent
	a.scheduler = world.NewScheduler(
		system.NewStepSystem(int(time.Second/frameInterval)),
		events,
	)
	return a
}

func (a *App) Close() {
	a.screen.Fini()
}

// Run drives the world from a frame ticker and a goroutine pumping
// terminal events into the same select loop, until the user quits.
func (a *App) Run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	a.draw()
	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return
			}
			a.draw()
		case <-ticker.C:
			a.scheduler.Update(a.world)
			a.draw()
		}
	}
}

// handleEvent applies one terminal event and reports whether to keep
// running.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		in, quit := a.keyInput(ev)
		if quit {
			return false
		}
		a.world.Apply(in)
	case *tcell.EventMouse:
		a.mouseInput(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

// keyInput maps a key to world commands. Arrow keys and hjkl move the
// cursor, which stands in for the mouse.
func (a *App) keyInput(ev *tcell.EventKey) (in world.Input, quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return in, true
	case tcell.KeyTab:
		in.CycleAlgorithm = true
	case tcell.KeyEnter:
		in.Complete = true
	case tcell.KeyLeft:
		a.moveCursor(-1, 0)
	case tcell.KeyRight:
		a.moveCursor(1, 0)
	case tcell.KeyUp:
		a.moveCursor(0, -1)
	case tcell.KeyDown:
		a.moveCursor(0, 1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return in, true
		case ' ':
			in.Toggle = true
		case 'w':
			p := a.cursor
			in.ToggleWall = &p
		case 'e':
			p := a.cursor
			in.PlaceEndpoint = &p
		case 'g':
			in.Regenerate = true
		case 'n':
			in.CycleLayout = true
		case 'c':
			in.ClearWalls = true
		case 'i':
			in.Complete = true
		case 'h':
			a.moveCursor(-1, 0)
		case 'j':
			a.moveCursor(0, 1)
		case 'k':
			a.moveCursor(0, -1)
		case 'l':
			a.moveCursor(1, 0)
		}
	}
	return in, false
}

// mouseInput mirrors the window: a left click toggles a wall, a right
// click places an endpoint. Holding a button down does not repeat.
func (a *App) mouseInput(ev *tcell.EventMouse) {
	pressed := ev.Buttons() &^ a.buttons
	a.buttons = ev.Buttons()

	x, y := ev.Position()
	p := grid.Point{X: x / cellCols, Y: y}
	if !a.world.Grid.InBounds(p.X, p.Y) {
		return
	}
	a.cursor = p
	switch {
	case pressed&tcell.Button1 != 0:
		a.world.ToggleWall(p)
	case pressed&tcell.Button2 != 0:
		a.world.PlaceEndpoint(p)
	}
}

func (a *App) moveCursor(dx, dy int) {
	next := grid.Point{X: a.cursor.X + dx, Y: a.cursor.Y + dy}
	if a.world.Grid.InBounds(next.X, next.Y) {
		a.cursor = next
	}
}

func (a *App) onEvent(evt world.Event) {
	if evt.Type != world.EventSearchFinished {
		return
	}
	if r, ok := evt.Data.(world.SearchResult); ok {
		if r.Found {
			a.last = fmt.Sprintf("%s: cost %d, %d expanded", r.Algorithm, r.Cost, r.Expanded)
		} else {
			a.last = fmt.Sprintf("%s: no path, %d expanded", r.Algorithm, r.Expanded)
			a.screen.Beep()
		}
	}
}

func (a *App) draw() {
	a.screen.Clear()
	g := a.world.Grid
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			style := a.styles[a.world.CellView(x, y)]
			left, right := ' ', ' '
			if x == a.cursor.X && y == a.cursor.Y {
				left, right = '[', ']'
				style = style.Foreground(tcellColor(a.palette.Selected))
			}
			a.screen.SetContent(x*cellCols, y, left, nil, style)
			a.screen.SetContent(x*cellCols+1, y, right, nil, style)
		}
	}

	status := fmt.Sprintf("[%s] %s", a.world.Algorithm(), a.world.Status())
	drawText(a.screen, 0, g.Height, status, tcell.StyleDefault)
	help := "arrows/hjkl move  w wall  e endpoint  n layout  c clear  i finish  q quit"
	if a.last != "" {
		help = a.last
	}
	drawText(a.screen, 0, g.Height+1, help, tcell.StyleDefault.Dim(true))
	a.screen.Show()
}

func tcellColor(c color.Color) tcell.Color {
	r, g, b := palette.RGB(c)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// fitGrid picks the grid size: explicit flags win, otherwise the largest
// grid that fits the terminal with room for the status lines.
func fitGrid(width, height, cols, rows int) (int, int) {
	if width <= 0 {
		width = cols / cellCols
	}
	if height <= 0 {
		height = rows - statusRows
	}
	return max(width, 1), max(height, 1)
}
