package core

import "lifegrid/pkg/life"

// Frame stores a byte snapshot of a world in row-major order, 1 for a live
// cell and 0 for a dead one. Pixel renderers consume it.
type Frame struct {
	W, H int
	data []uint8
}

// NewFrame allocates a frame with the given dimensions.
func NewFrame(w, h int) *Frame {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Frame{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice. Renderers must treat it as read-only.
func (f *Frame) Cells() []uint8 { return f.data }

// Index returns the linear slice index for coordinates (x, y).
func (f *Frame) Index(x, y int) int { return y*f.W + x }

// Load copies the cell states of w into the frame, reallocating when the
// dimensions differ.
func (f *Frame) Load(w life.World) {
	if f.W != w.Width() || f.H != w.Height() || len(f.data) != w.Len() {
		f.W, f.H = w.Width(), w.Height()
		f.data = make([]uint8, w.Len())
	}
	w.Each(func(i int, c life.Cell) {
		if c.Alive() {
			f.data[i] = 1
			return
		}
		f.data[i] = 0
	})
}
