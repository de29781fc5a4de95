package life

const (
	aliveGlyph = "⬛"
	deadGlyph  = "⬜"
)

// Cell is a single living or dead unit of the grid.
type Cell struct {
	alive bool
}

// NewCell returns a Cell in the given state.
func NewCell(alive bool) Cell { return Cell{alive: alive} }

// Alive reports whether the cell is alive.
func (c Cell) Alive() bool { return c.alive }

// String renders the cell as a single glyph.
func (c Cell) String() string {
	if c.alive {
		return aliveGlyph
	}
	return deadGlyph
}
