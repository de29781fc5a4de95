package life

import "testing"

func TestCellGlyph(t *testing.T) {
	if got := NewCell(true).String(); got != "⬛" {
		t.Fatalf("alive glyph = %q", got)
	}
	if got := NewCell(false).String(); got != "⬜" {
		t.Fatalf("dead glyph = %q", got)
	}
	if !NewCell(true).Alive() || NewCell(false).Alive() {
		t.Fatal("Alive does not reflect constructor argument")
	}
}
