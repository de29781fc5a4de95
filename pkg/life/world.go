package life

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"lifegrid/pkg/core"
)

// LiveProbability is the chance that an interior cell starts alive in a
// randomized world.
const LiveProbability = 0.25

// ErrInvalidDimensions is returned when a world is requested with a
// non-positive width or height.
var ErrInvalidDimensions = errors.New("life: invalid dimensions")

// RandomSource supplies uniform values in [0.0, 1.0). *core.RNG and
// *rand.Rand both satisfy it.
type RandomSource interface {
	Float64() float64
}

// World is an immutable generation of Conway's Game of Life on a bounded grid.
// The outermost ring of cells is a permanently dead frame.
type World struct {
	cells       []Cell
	width       int
	height      int
	workers     int
	lastAdvance time.Duration
}

// Option configures a World at construction time.
type Option func(*World)

// WithWorkers sets how many goroutines Advance fans out to. Values <= 0 use
// runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(w *World) { w.workers = n }
}

// New returns a world of the given size with every cell dead.
func New(width, height int, opts ...Option) (World, error) {
	if width <= 0 || height <= 0 {
		return World{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	w := World{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	for _, opt := range opts {
		opt(&w)
	}
	return w, nil
}

// NewRandom returns a world whose interior cells are independently alive with
// probability LiveProbability. A nil src falls back to a time-seeded RNG.
func NewRandom(width, height int, src RandomSource, opts ...Option) (World, error) {
	w, err := New(width, height, opts...)
	if err != nil {
		return World{}, err
	}
	w.fillRandom(src)
	return w, nil
}

func (w *World) fillRandom(src RandomSource) {
	if src == nil {
		src = core.NewTimeRNG()
	}
	for i := range w.cells {
		x, y := i%w.width, i/w.width
		w.cells[i] = NewCell(w.interior(x, y) && src.Float64() < LiveProbability)
	}
}

// Width returns the number of columns.
func (w World) Width() int { return w.width }

// Height returns the number of rows.
func (w World) Height() int { return w.height }

// Len returns the number of cells, always Width()*Height().
func (w World) Len() int { return len(w.cells) }

// LastAdvance reports how long the Advance call that produced w took. It is
// zero for worlds that were not produced by Advance.
func (w World) LastAdvance() time.Duration { return w.lastAdvance }

// Cell returns the cell at row-major index i.
func (w World) Cell(i int) Cell { return w.cells[i] }

// Cells returns a copy of the cell buffer in row-major order.
func (w World) Cells() []Cell {
	out := make([]Cell, len(w.cells))
	copy(out, w.cells)
	return out
}

// Each calls fn for every cell in row-major order.
func (w World) Each(fn func(i int, c Cell)) {
	for i, c := range w.cells {
		fn(i, c)
	}
}

// Population counts the living cells.
func (w World) Population() int {
	n := 0
	for _, c := range w.cells {
		if c.alive {
			n++
		}
	}
	return n
}

// IsAlive reports whether the cell at (x, y) is alive. Coordinates outside the
// grid are dead.
func (w World) IsAlive(x, y int) bool {
	return x >= 0 && y >= 0 && x < w.width && y < w.height && w.cells[y*w.width+x].alive
}

// interior reports whether (x, y) lies strictly inside the dead frame.
func (w World) interior(x, y int) bool {
	return x > 0 && y > 0 && x < w.width-1 && y < w.height-1
}

// Clear returns a world of the same size with every cell dead.
func (w World) Clear() World {
	return World{
		cells:   make([]Cell, len(w.cells)),
		width:   w.width,
		height:  w.height,
		workers: w.workers,
	}
}

// Random returns a freshly randomized world of the same size.
func (w World) Random(src RandomSource) World {
	next := w.Clear()
	next.fillRandom(src)
	return next
}

// Toggle returns a copy of w with the cell at (x, y) flipped. Border and
// out-of-grid coordinates leave the copy unchanged.
func (w World) Toggle(x, y int) World {
	next := w.clone()
	if w.interior(x, y) {
		i := y*w.width + x
		next.cells[i] = NewCell(!w.cells[i].alive)
	}
	return next
}

func (w World) clone() World {
	next := w
	next.cells = w.Cells()
	next.lastAdvance = 0
	return next
}

// Equal reports whether both worlds have the same size and cell states.
func (w World) Equal(o World) bool {
	if w.width != o.width || w.height != o.height || len(w.cells) != len(o.cells) {
		return false
	}
	for i := range w.cells {
		if w.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid one row per line using the cell glyphs.
func (w World) String() string {
	var b strings.Builder
	b.Grow(len(w.cells)*len(deadGlyph) + w.height)
	for i, c := range w.cells {
		b.WriteString(c.String())
		if i%w.width == w.width-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
