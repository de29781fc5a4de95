package session

import (
	"errors"
	"testing"

	"go.uber.org/zap/zaptest"

	"lifegrid/internal/config"
	"lifegrid/pkg/life"
)

func newSession(t *testing.T, grid config.GridConfig) *Session {
	t.Helper()
	s, err := New(grid, zaptest.NewLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestNewRejectsBadGrid(t *testing.T) {
	_, err := New(config.GridConfig{Width: 0, Height: 10}, nil)
	if !errors.Is(err, life.ErrInvalidDimensions) {
		t.Fatalf("err = %v, want ErrInvalidDimensions", err)
	}
}

func TestNewSeeded(t *testing.T) {
	grid := config.GridConfig{Width: 30, Height: 20, Seed: 5}
	a := newSession(t, grid)
	b := newSession(t, grid)
	if !a.World().Equal(b.World()) {
		t.Fatal("same seed produced different worlds")
	}
	if a.World().Population() == 0 {
		t.Fatal("seeded world is empty")
	}
	if !a.Running() {
		t.Fatal("sessions start running")
	}
}

func TestEmptyStart(t *testing.T) {
	s := newSession(t, config.GridConfig{Width: 10, Height: 10, Empty: true})
	if s.World().Population() != 0 {
		t.Fatal("empty session has live cells")
	}
}

func TestTickHonoursRunningFlag(t *testing.T) {
	s := newSession(t, config.GridConfig{Width: 10, Height: 10, Seed: 3})
	if !s.Tick() || s.Generation() != 1 {
		t.Fatalf("running tick: generation %d", s.Generation())
	}
	s.ToggleRunning()
	if s.Tick() || s.Generation() != 1 {
		t.Fatalf("paused tick advanced to generation %d", s.Generation())
	}
	s.Step()
	if s.Generation() != 2 {
		t.Fatalf("manual step while paused: generation %d", s.Generation())
	}
}

func TestClearRandomizeToggle(t *testing.T) {
	s := newSession(t, config.GridConfig{Width: 12, Height: 12, Seed: 8})
	s.Step()
	s.Clear()
	if s.World().Population() != 0 || s.Generation() != 0 {
		t.Fatal("clear left live cells or generation count")
	}

	s.ToggleCell(4, 5)
	if !s.World().IsAlive(4, 5) {
		t.Fatal("toggle did not set cell")
	}
	s.ToggleCell(0, 5)
	if s.World().IsAlive(0, 5) {
		t.Fatal("toggle changed a border cell")
	}

	s.Randomize()
	if s.World().Width() != 12 || s.World().Height() != 12 {
		t.Fatal("randomize changed dimensions")
	}
	stats := s.Stats(0)
	if stats.Population != s.World().Population() || stats.Generation != 0 || !stats.Running {
		t.Fatalf("stats = %+v", stats)
	}
}
