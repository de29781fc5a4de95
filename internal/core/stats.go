package core

import (
	"fmt"
	"time"
)

// Stats captures what the HUD and the console show next to the grid.
type Stats struct {
	Generation  int
	Population  int
	Running     bool
	LastAdvance time.Duration
	Render      time.Duration
}

// Lines formats the stats for text panels, one entry per line.
func (s Stats) Lines() []string {
	state := "paused"
	if s.Running {
		state = "running"
	}
	return []string{
		fmt.Sprintf("Generation: %d (%s)", s.Generation, state),
		fmt.Sprintf("Population: %d", s.Population),
		fmt.Sprintf("Render: %dms", s.Render.Milliseconds()),
		fmt.Sprintf("World Tick: %dms", s.LastAdvance.Milliseconds()),
	}
}
