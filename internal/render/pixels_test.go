package render

import (
	"image/color"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []uint8{1, 0, 1}
	buf := make([]byte, 4*len(cells))
	fillBinaryRGBA(buf, cells, AliveColor, DeadColor)

	want := []byte{
		255, 255, 255, 255,
		128, 128, 128, 255,
		255, 255, 255, 255,
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf[%d] = %d, want %d", i, buf[i], want[i])
		}
	}

	fillBinaryRGBA(buf, []uint8{0, 0, 0}, color.White, color.Black)
	if buf[0] != 0 || buf[3] != 255 {
		t.Fatalf("dead pixel = %v", buf[:4])
	}
}

func TestCellAt(t *testing.T) {
	cases := []struct {
		px, py int
		x, y   int
		ok     bool
	}{
		{0, 0, 0, 0, true},
		{4, 4, 0, 0, true},
		{5, 9, 1, 1, true},
		{499, 499, 99, 99, true},
		{500, 0, 100, 0, false},
		{-1, 3, 0, 0, false},
	}
	for _, c := range cases {
		x, y, ok := CellAt(c.px, c.py, 5, 100, 100)
		if ok != c.ok || (ok && (x != c.x || y != c.y)) {
			t.Fatalf("CellAt(%d,%d) = %d,%d,%v want %d,%d,%v", c.px, c.py, x, y, ok, c.x, c.y, c.ok)
		}
	}
}
