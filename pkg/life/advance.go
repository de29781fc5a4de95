package life

import (
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// neighborOffsets lists the Moore neighbourhood.
var neighborOffsets = [8][2]int{
	{0, 1},
	{0, -1},
	{1, 0},
	{-1, 0},
	{1, 1},
	{-1, -1},
	{1, -1},
	{-1, 1},
}

// CountAliveNeighbors returns how many of the eight cells around (x, y) are
// alive in w.
func (w World) CountAliveNeighbors(x, y int) int {
	n := 0
	for _, off := range neighborOffsets {
		if w.IsAlive(x+off[0], y+off[1]) {
			n++
		}
	}
	return n
}

// survives applies Conway's rule to one cell.
func survives(alive bool, neighbors uint8) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// Advance computes the next generation. Neighbour counts for every cell are
// taken from w before any cell of the result is written. The border keeps a
// count of zero and therefore stays dead.
func (w World) Advance() World {
	start := time.Now()

	counts := make([]uint8, len(w.cells))
	w.parallel(func(lo, hi int) {
		for i := lo; i < hi; i++ {
			x, y := i%w.width, i/w.width
			if w.interior(x, y) {
				counts[i] = uint8(w.CountAliveNeighbors(x, y))
			}
		}
	})

	cells := make([]Cell, len(w.cells))
	w.parallel(func(lo, hi int) {
		for i := lo; i < hi; i++ {
			cells[i] = NewCell(survives(w.cells[i].alive, counts[i]))
		}
	})

	return World{
		cells:       cells,
		width:       w.width,
		height:      w.height,
		workers:     w.workers,
		lastAdvance: time.Since(start),
	}
}

// parallel splits [0, len(cells)) into contiguous chunks, runs fn on each
// chunk concurrently and returns once every chunk is done.
func (w World) parallel(fn func(lo, hi int)) {
	n := len(w.cells)
	workers := w.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		fn(0, n)
		return
	}
	chunk := (n + workers - 1) / workers

	var eg errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		eg.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = eg.Wait()
}
