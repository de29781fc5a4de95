//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"lifegrid/internal/core"
)

const (
	panelPadding   = 12
	headerBaseline = 14
	lineSpacing    = 18
	sectionGap     = 10
)

var (
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	valueColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	helpColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	panelColor = color.RGBA{R: 16, G: 16, B: 20, A: 255}
)

var helpLines = []string{
	"space  run / pause",
	"t      single step",
	"c      clear",
	"r      randomize",
	"click  toggle cell",
	"g      grid overlay",
	"q/esc  quit",
}

// HUD renders the statistics panel to the right of the board.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
	stats      core.Stats
}

// NewHUD constructs a HUD with the given panel width in pixels.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update caches the stats shown on the next Draw.
func (h *HUD) Update(stats core.Stats) {
	if h == nil {
		return
	}
	h.stats = stats
}

// Draw paints the panel anchored at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, "Game of Life", face, panelPadding, y, titleColor)
	y += lineSpacing + sectionGap
	for _, line := range h.stats.Lines() {
		text.Draw(h.panel, line, face, panelPadding, y, valueColor)
		y += lineSpacing
	}
	y += sectionGap
	for _, line := range helpLines {
		text.Draw(h.panel, line, face, panelPadding, y, helpColor)
		y += lineSpacing
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
