//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lifegrid/internal/render"
)

var (
	gridLineColor = color.RGBA{R: 96, G: 96, B: 96, A: 255}
	hoverColor    = color.RGBA{R: 255, G: 200, B: 40, A: 255}
)

// Overlay draws optional grid lines and an outline around the cell under the
// cursor on top of the board.
type Overlay struct {
	w, h     int
	scale    int
	showGrid bool
	pixel    *ebiten.Image
}

// NewOverlay constructs an overlay for a w*h board drawn at scale.
func NewOverlay(w, h, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{w: w, h: h, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the grid lines with the G key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	boardW, boardH := o.w*o.scale, o.h*o.scale
	if o.showGrid && o.scale >= 3 {
		for x := 0; x <= o.w; x++ {
			o.fillRect(screen, x*o.scale, 0, 1, boardH, gridLineColor)
		}
		for y := 0; y <= o.h; y++ {
			o.fillRect(screen, 0, y*o.scale, boardW, 1, gridLineColor)
		}
	}

	cx, cy := ebiten.CursorPosition()
	x, y, ok := render.CellAt(cx, cy, o.scale, o.w, o.h)
	if !ok {
		return
	}
	left, top := x*o.scale, y*o.scale
	o.fillRect(screen, left, top, o.scale, 1, hoverColor)
	o.fillRect(screen, left, top+o.scale-1, o.scale, 1, hoverColor)
	o.fillRect(screen, left, top, 1, o.scale, hoverColor)
	o.fillRect(screen, left+o.scale-1, top, 1, o.scale, hoverColor)
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h int, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(o.pixel, op)
}
