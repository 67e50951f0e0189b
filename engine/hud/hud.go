// Package hud draws text overlays on top of a rendered frame.
package hud

import (
	"image/color"

	"fixgl/engine/gl"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Overlay draws lines of text from a fixed origin, one font line apart.
type Overlay struct {
	Font  *tinyfont.Font
	Color gl.Color
	X, Y  int
}

// New returns an overlay in the top left corner using the proggy font.
func New() *Overlay {
	return &Overlay{Font: &proggy.TinySZ8pt7b, Color: gl.Black, X: 4, Y: 2}
}

// LineHeight is the vertical advance between lines, in pixels.
func (o *Overlay) LineHeight() int {
	if o == nil || o.Font == nil {
		return 0
	}
	return int(o.Font.YAdvance)
}

// Width returns the rendered width of text.
func (o *Overlay) Width(text string) int {
	if o == nil || o.Font == nil || text == "" {
		return 0
	}
	_, w := tinyfont.LineWidth(o.Font, text)
	return int(w)
}

// Draw writes lines top to bottom. Empty lines still take up a row.
func (o *Overlay) Draw(s gl.Sink, lines ...string) {
	if o == nil || o.Font == nil || s == nil {
		return
	}
	d := sinkDisplayer{s: s}
	c := color.RGBA{R: o.Color.R, G: o.Color.G, B: o.Color.B, A: 0xFF}
	lh := o.LineHeight()
	y := o.Y
	for _, l := range lines {
		y += lh
		if l == "" {
			continue
		}
		// WriteLine takes the baseline, not the top of the glyph box.
		tinyfont.WriteLine(d, o.Font, int16(o.X), int16(y), l, c)
	}
}

// Text draws a single line with its top left corner at (x, y).
func Text(s gl.Sink, x, y int, text string, c gl.Color) {
	o := New()
	o.X, o.Y, o.Color = x, y, c
	o.Draw(s, text)
}

var _ drivers.Displayer = sinkDisplayer{}

// sinkDisplayer lets tinyfont draw into a gl.Sink.
type sinkDisplayer struct {
	s gl.Sink
}

func (d sinkDisplayer) Size() (x, y int16) {
	w, h := d.s.Size()
	return int16(w), int16(h)
}

func (d sinkDisplayer) SetPixel(x, y int16, c color.RGBA) {
	d.s.SetPixel(int(x), int(y), gl.RGB(c.R, c.G, c.B))
}

func (d sinkDisplayer) Display() error { return nil }
