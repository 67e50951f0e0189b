package hud

import (
	"testing"

	"fixgl/engine/gl"
)

func TestDrawWritesInsideOverlay(t *testing.T) {
	b := gl.NewBuffer(120, 40)
	o := New()
	o.Color = gl.RGB(0xFF, 0, 0)
	o.Draw(b, "FX 30")

	if b.Writes == 0 {
		t.Fatalf("no glyph pixels written")
	}
	if b.Dropped != 0 {
		t.Fatalf("%d pixels written off screen", b.Dropped)
	}
	w := o.Width("FX 30")
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			if !b.Touched(x, y) {
				continue
			}
			if b.At(x, y) != o.Color {
				t.Fatalf("(%d,%d) = %v", x, y, b.At(x, y))
			}
			if x < o.X || x > o.X+w || y < o.Y || y >= o.Y+2*o.LineHeight() {
				t.Fatalf("(%d,%d) outside the first line", x, y)
			}
		}
	}
}

func TestDrawSkipsEmptyLines(t *testing.T) {
	a := gl.NewBuffer(120, 60)
	b := gl.NewBuffer(120, 60)
	New().Draw(a, "", "x")
	o := New()
	o.Y += o.LineHeight()
	o.Draw(b, "x")
	for y := 0; y < a.H; y++ {
		for x := 0; x < a.W; x++ {
			if a.Touched(x, y) != b.Touched(x, y) {
				t.Fatalf("pixel (%d,%d) differs", x, y)
			}
		}
	}
}

func TestWidth(t *testing.T) {
	o := New()
	if o.Width("") != 0 {
		t.Fatalf("empty width = %d", o.Width(""))
	}
	if o.Width("ab") <= o.Width("a") {
		t.Fatalf("width does not grow")
	}
	var nilOverlay *Overlay
	nilOverlay.Draw(gl.NewBuffer(4, 4), "x")
}

func TestTextClipsAtEdge(t *testing.T) {
	b := gl.NewBuffer(10, 10)
	Text(b, 6, 0, "WWW", gl.Black)
	if b.Dropped == 0 {
		t.Fatalf("expected clipped pixels")
	}
}
