package console

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"lifegrid/internal/config"
	"lifegrid/internal/core"
	"lifegrid/internal/session"
)

func blinkerSession(t *testing.T) *session.Session {
	t.Helper()
	s, err := session.New(config.GridConfig{Width: 5, Height: 5, Empty: true}, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	s.ToggleCell(1, 2)
	s.ToggleCell(2, 2)
	s.ToggleCell(3, 2)
	return s
}

func simScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(40, 12)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(screen tcell.SimulationScreen, row int) string {
	cells, width, _ := screen.GetContents()
	var b strings.Builder
	for x := 0; x < width; x++ {
		runes := cells[row*width+x].Runes
		if len(runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(runes[0])
	}
	return strings.TrimRight(b.String(), " ")
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestTerminalKeys(t *testing.T) {
	s := blinkerSession(t)
	term := NewTerminal(simScreen(t), s, config.Default().Display, zap.NewNop())

	if term.HandleEvent(key(' ')) || s.Running() {
		t.Fatal("space should pause without quitting")
	}
	term.HandleEvent(key('t'))
	if s.Generation() != 1 || !s.World().IsAlive(2, 1) {
		t.Fatal("t should advance the blinker once")
	}
	term.HandleEvent(key('c'))
	if s.World().Population() != 0 {
		t.Fatal("c should clear the world")
	}
	term.HandleEvent(key('r'))
	if s.World().Width() != 5 {
		t.Fatal("r changed dimensions")
	}
	if !term.HandleEvent(key('q')) {
		t.Fatal("q should quit")
	}
	if !term.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("Esc should quit")
	}
}

func TestTerminalMouseTogglesOncePerPress(t *testing.T) {
	s, err := session.New(config.GridConfig{Width: 6, Height: 6, Empty: true}, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	term := NewTerminal(simScreen(t), s, config.Default().Display, zap.NewNop())

	term.HandleEvent(tcell.NewEventMouse(3*cellColumns, 2, tcell.Button1, tcell.ModNone))
	term.HandleEvent(tcell.NewEventMouse(3*cellColumns, 2, tcell.Button1, tcell.ModNone))
	if !s.World().IsAlive(3, 2) {
		t.Fatal("click should toggle the cell exactly once while held")
	}
	term.HandleEvent(tcell.NewEventMouse(3*cellColumns, 2, tcell.ButtonNone, tcell.ModNone))
	term.HandleEvent(tcell.NewEventMouse(3*cellColumns+1, 2, tcell.Button1, tcell.ModNone))
	if s.World().IsAlive(3, 2) {
		t.Fatal("second click should toggle the cell back")
	}
}

func TestTerminalDrawsStats(t *testing.T) {
	s := blinkerSession(t)
	screen := simScreen(t)
	term := NewTerminal(screen, s, config.Default().Display, zap.NewNop())
	term.Draw()

	if got := rowText(screen, 6); got != "Generation: 0 (running)" {
		t.Fatalf("stats row = %q", got)
	}
	if got := rowText(screen, 7); got != "Population: 3" {
		t.Fatalf("population row = %q", got)
	}
	if got := rowText(screen, 9); !strings.HasPrefix(got, "World Tick: ") {
		t.Fatalf("tick row = %q", got)
	}
}

func TestTerminalRunStopsOnCancel(t *testing.T) {
	s := blinkerSession(t)
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminal(screen, s, config.DisplayConfig{UPS: 1000, MaxFPS: 1000}, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := term.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.Generation() == 0 {
		t.Fatal("running terminal never advanced")
	}
}

func TestTextDriver(t *testing.T) {
	var out bytes.Buffer
	text := NewText(&out, blinkerSession(t), 2, zap.NewNop())
	if err := text.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	frames := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	// three generations of five rows plus a timing line each
	if len(frames) != 18 {
		t.Fatalf("got %d lines, want 18:\n%s", len(frames), out.String())
	}
	if frames[2] != "⬜⬛⬛⬛⬜" {
		t.Fatalf("initial middle row = %q", frames[2])
	}
	if frames[6+2] != "⬜⬜⬛⬜⬜" || frames[6+1] != "⬜⬜⬛⬜⬜" {
		t.Fatalf("first generation not vertical: %q %q", frames[7], frames[8])
	}
	if !strings.HasPrefix(frames[5], "World Tick: ") {
		t.Fatalf("timing line = %q", frames[5])
	}
}

func TestTextDriverCancelled(t *testing.T) {
	var out bytes.Buffer
	s := blinkerSession(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := NewText(&out, s, 100, zap.NewNop()).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if s.Generation() != 0 {
		t.Fatalf("cancelled run advanced to generation %d", s.Generation())
	}
}

func TestDriversRegistered(t *testing.T) {
	for _, name := range []string{"term", "text"} {
		if _, ok := core.Drivers()[name]; !ok {
			t.Fatalf("driver %q not registered", name)
		}
	}
	cfg := config.Default()
	cfg.Grid.Width = 0
	if _, err := core.Drivers()["text"](cfg, zap.NewNop()); err == nil {
		t.Fatal("text factory accepted invalid grid")
	}
}
