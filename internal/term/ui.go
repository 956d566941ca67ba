package term

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"lifegrid/pkg/core"
)

const (
	fieldView  = "field"
	statusView = "status"
	helpView   = "help"

	statusWidth = 28
	minHeight   = 10
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// UI is an interactive terminal host. All simulation calls happen on the
// gocui main loop, so the simulation is never touched from two goroutines.
type UI struct {
	*session

	g        *gocui.Gui
	interval time.Duration
	keys     []keyBinding

	live string
	dead string
}

// NewUI creates the terminal view. seed is used by the reseed command.
func NewUI(sim core.Sim, seed core.Seeder, interval time.Duration, logger *slog.Logger) (*UI, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	g.Mouse = true

	t := &UI{
		session:  newSession(sim, seed, logger),
		g:        g,
		interval: interval,
		live:     aurora.Green("█").String(),
		dead:     "░",
	}
	t.keys = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'q', "Q", "Exit", t.cmdQuit, ""},
		{'n', "N", "Next step", t.cmdStep, ""},
		{'r', "R", "Run", t.cmdRun, ""},
		{'s', "S", "Stop", t.cmdStop, ""},
		{'c', "C", "Clear", t.cmdClear, ""},
		{'e', "E", "Reseed", t.cmdReseed, ""},
		{'w', "W", "Random", t.cmdRandom, ""},
		{gocui.MouseLeft, "MOUSE", "Toggle cell", t.cmdToggle, fieldView},
	}
	g.SetManagerFunc(t.layout)
	for _, kb := range t.keys {
		h := kb.handler
		if err := g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			g.Close()
			return nil, fmt.Errorf("bind %s: %w", kb.name, err)
		}
	}
	return t, nil
}

// Run blocks until the user quits.
func (t *UI) Run() error {
	defer t.g.Close()
	if err := t.g.MainLoop(); err != nil && !errors.Is(err, gocui.ErrQuit) {
		return err
	}
	return nil
}

func (t *UI) cmdQuit(*gocui.View) error {
	t.halt()
	return gocui.ErrQuit
}

func (t *UI) cmdStep(*gocui.View) error {
	t.step()
	t.refresh()
	return nil
}

func (t *UI) cmdRun(*gocui.View) error {
	if stop, ok := t.start(); ok {
		go t.loop(stop)
	}
	t.refresh()
	return nil
}

func (t *UI) cmdStop(*gocui.View) error {
	t.halt()
	t.refresh()
	return nil
}

func (t *UI) cmdClear(*gocui.View) error {
	t.clear()
	t.refresh()
	return nil
}

func (t *UI) cmdReseed(*gocui.View) error {
	t.reseed()
	t.refresh()
	return nil
}

func (t *UI) cmdRandom(*gocui.View) error {
	t.randomize(time.Now().UnixNano())
	t.refresh()
	return nil
}

func (t *UI) cmdToggle(v *gocui.View) error {
	if v == nil {
		return nil
	}
	cx, cy := v.Cursor()
	ox, oy := v.Origin()
	t.toggle(cx+ox, cy+oy)
	t.refresh()
	return nil
}

// loop queues one step per interval onto the main loop until stop closes.
func (t *UI) loop(stop <-chan struct{}) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			t.g.Update(func(*gocui.Gui) error {
				select {
				case <-stop:
					return nil
				default:
				}
				t.advance()
				t.draw()
				return nil
			})
		}
	}
}

func (t *UI) refresh() {
	t.g.Update(func(*gocui.Gui) error {
		t.draw()
		return nil
	})
}

// draw redraws every view. It must run on the main loop.
func (t *UI) draw() {
	if v, err := t.g.View(fieldView); err == nil {
		v.Clear()
		maxW, maxH := v.Size()
		size := t.sim.Size()
		fmt.Fprint(v, gridText(t.sim.Cells(), size.W, size.H, maxW, maxH, t.live, t.dead))
	}
	if v, err := t.g.View(statusView); err == nil {
		v.Clear()
		size := t.sim.Size()
		mode := aurora.Blue("paused").String()
		if t.running {
			mode = aurora.Cyan("running").String()
		}
		fmt.Fprintln(v, prop("Generation", "%d", t.sim.Generation()))
		fmt.Fprintln(v, prop("Population", "%d", t.sim.Population()))
		fmt.Fprintln(v, prop("Size", "%d x %d", size.W, size.H))
		fmt.Fprintln(v, prop("Interval", "%v", t.interval))
		fmt.Fprintln(v, prop("Mode", "%s", mode))
	}
}

func prop(name, format string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Green(name).String()+": "+format, values...)
}

func (t *UI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	if maxY < minHeight || maxX < statusWidth+4 {
		_ = g.DeleteView(statusView)
		_ = g.DeleteView(fieldView)
		_ = g.DeleteView(helpView)
		return nil
	}

	if v, err := g.SetView(statusView, 0, 0, statusWidth, maxY-4); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Title = "Status"
	}
	if v, err := g.SetView(fieldView, statusWidth+1, 0, maxX-1, maxY-4); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Title = "Life"
	}
	if v, err := g.SetView(helpView, 0, maxY-3, maxX-1, maxY-1); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Frame = false
		fmt.Fprint(v, helpLine(t.keys))
	}
	t.draw()
	return nil
}

func helpLine(keys []keyBinding) string {
	seen := map[string]bool{}
	line := ""
	for _, kb := range keys {
		if seen[kb.descr] {
			continue
		}
		seen[kb.descr] = true
		line += fmt.Sprintf(" %s %s ", aurora.Bold(kb.name), kb.descr)
	}
	return line
}

// cursorCell maps a position inside the field view to grid coordinates.
// Clicks on the padding beyond the grid report ok=false.
func cursorCell(x, y, w, h int) (row, col uint32, ok bool) {
	if x < 0 || y < 0 || x >= w || y >= h {
		return 0, 0, false
	}
	return uint32(y), uint32(x), true
}
