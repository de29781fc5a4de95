package console

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"lifegrid/internal/config"
	"lifegrid/internal/core"
	"lifegrid/internal/session"
	"lifegrid/pkg/life"
)

// Glyphs are double width, so every cell spans two terminal columns.
const cellColumns = 2

// maxCatchUp bounds how many generations one frame may run after a stall.
const maxCatchUp = 4

var (
	gridStyle   = tcell.StyleDefault
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// Terminal draws the world on a tcell screen and maps keys to session
// commands: space pauses, c clears, r randomizes, t steps once, q or Esc quits.
// A left click toggles the cell under the pointer.
type Terminal struct {
	screen  tcell.Screen
	session *session.Session
	pacer   *core.FixedStep
	frame   time.Duration
	log     *zap.Logger

	render  time.Duration
	buttons tcell.ButtonMask
}

// NewTerminal wires a screen to a session. The screen is initialised by Run.
func NewTerminal(screen tcell.Screen, s *session.Session, display config.DisplayConfig, log *zap.Logger) *Terminal {
	fps := display.MaxFPS
	if fps <= 0 {
		fps = 60
	}
	return &Terminal{
		screen:  screen,
		session: s,
		pacer:   core.NewFixedStep(display.UPS),
		frame:   time.Second / time.Duration(fps),
		log:     log,
	}
}

// Name returns the driver mode.
func (t *Terminal) Name() string { return "term" }

// Run owns the screen until the user quits or ctx is cancelled.
func (t *Terminal) Run(ctx context.Context) error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer t.screen.Fini()
	t.screen.EnableMouse()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go t.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(t.frame)
	defer ticker.Stop()

	t.log.Info("terminal driver started", zap.Duration("frame", t.frame), zap.Duration("step", t.pacer.Interval()))
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if t.HandleEvent(ev) {
				t.log.Info("terminal driver quit", zap.Int("generation", t.session.Generation()))
				return nil
			}
		case <-ticker.C:
			for n := t.pacer.Due(maxCatchUp); n > 0; n-- {
				t.session.Tick()
			}
			t.Draw()
		}
	}
}

// HandleEvent applies one input event and reports whether the driver should quit.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case ' ':
				t.session.ToggleRunning()
			case 'c':
				t.session.Clear()
			case 'r':
				t.session.Randomize()
			case 't':
				t.session.Step()
			}
		}
	case *tcell.EventMouse:
		pressed := ev.Buttons() & tcell.Button1
		if pressed != 0 && t.buttons&tcell.Button1 == 0 {
			x, y := ev.Position()
			t.session.ToggleCell(x/cellColumns, y)
		}
		t.buttons = ev.Buttons()
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return false
}

// Draw paints the grid followed by the statistics block.
func (t *Terminal) Draw() {
	start := time.Now()
	t.screen.Clear()

	w := t.session.World()
	w.Each(func(i int, c life.Cell) {
		t.print(i%w.Width()*cellColumns, i/w.Width(), c.String(), gridStyle)
	})
	for i, line := range t.session.Stats(t.render).Lines() {
		t.print(0, w.Height()+1+i, line, statusStyle)
	}

	t.screen.Show()
	t.render = time.Since(start)
}

func (t *Terminal) print(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
