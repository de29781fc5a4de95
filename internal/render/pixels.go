package render

import "image/color"

var (
	// AliveColor and DeadColor match the classic white-on-grey board.
	AliveColor color.Color = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	DeadColor  color.Color = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// CellAt maps a screen pixel to grid coordinates for a board drawn with
// scale pixels per cell side. ok is false outside a w*h board.
func CellAt(px, py, scale, w, h int) (x, y int, ok bool) {
	if scale <= 0 || px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y = px/scale, py/scale
	return x, y, x < w && y < h
}
