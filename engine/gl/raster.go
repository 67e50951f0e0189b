package gl

import (
	"fixgl/engine/fix"
	"fixgl/engine/model"
)

// lerp interpolates a toward b by t, a 16-bit fraction.
func lerp(a, b, t int) int {
	return a + int((int64(b-a)*int64(t))>>16)
}

func sortByY(p0, p1, p2 ScreenPoint) (ScreenPoint, ScreenPoint, ScreenPoint) {
	if p0.Y > p1.Y {
		p0, p1 = p1, p0
	}
	if p0.Y > p2.Y {
		p0, p2 = p2, p0
	}
	if p1.Y > p2.Y {
		p1, p2 = p2, p1
	}
	return p0, p1, p2
}

// scanTriangle walks the scanlines of a triangle and hands each span's end
// points to fn. Zero-height triangles produce no spans.
func scanTriangle(p0, p1, p2 ScreenPoint, fn func(y int, a, b ScreenPoint)) {
	p0, p1, p2 = sortByY(p0, p1, p2)
	total := p2.Y - p0.Y
	if total == 0 {
		return
	}

	edge := func(y int, from, to ScreenPoint) ScreenPoint {
		seg := to.Y - from.Y
		t := 1 << 16
		if seg != 0 {
			t = ((y - from.Y) << 16) / seg
		}
		return ScreenPoint{X: lerp(from.X, to.X, t), U: lerp(from.U, to.U, t), V: lerp(from.V, to.V, t)}
	}
	long := func(y int) ScreenPoint {
		t := ((y - p0.Y) << 16) / total
		return ScreenPoint{X: lerp(p0.X, p2.X, t), U: lerp(p0.U, p2.U, t), V: lerp(p0.V, p2.V, t)}
	}

	for y := p0.Y; y <= p1.Y; y++ {
		fn(y, long(y), edge(y, p0, p1))
	}
	for y := p1.Y + 1; y <= p2.Y; y++ {
		fn(y, long(y), edge(y, p1, p2))
	}
}

// FillTriangle fills a textured triangle. Each point carries texel
// coordinates in U and V; samples outside the texture are skipped. Texels are
// scaled by light.
func FillTriangle(s Sink, p0, p1, p2 ScreenPoint, tex *model.Texture, light fix.Scalar) {
	if tex.Empty() {
		return
	}
	scanTriangle(p0, p1, p2, func(y int, a, b ScreenPoint) {
		drawSpan(s, y, a, b, tex, light)
	})
}

// FillTriangleFlat fills a triangle with a single color, using the same scan
// geometry as FillTriangle.
func FillTriangleFlat(s Sink, p0, p1, p2 ScreenPoint, c Color) {
	scanTriangle(p0, p1, p2, func(y int, a, b ScreenPoint) {
		x0, x1 := a.X, b.X
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		for x := x0; x <= x1; x++ {
			s.SetPixel(x, y, c)
		}
	})
}

func drawSpan(s Sink, y int, a, b ScreenPoint, tex *model.Texture, light fix.Scalar) {
	if a.X > b.X {
		a, b = b, a
	}
	width := b.X - a.X
	for x := a.X; x <= b.X; x++ {
		u, v := a.U, a.V
		if width != 0 {
			t := ((x - a.X) << 16) / width
			u, v = lerp(a.U, b.U, t), lerp(a.V, b.V, t)
		}
		texel, ok := tex.At(u, v)
		if !ok {
			continue
		}
		s.SetPixel(x, y, Unpack(texel).Scale(light))
	}
}

// DrawLine draws a Bresenham line including both end points.
func DrawLine(s Sink, x0, y0, x1, y1 int, c Color) {
	dx, ix := x1-x0, 1
	if dx < 0 {
		dx, ix = -dx, -1
	}
	dy, iy := y1-y0, 1
	if dy < 0 {
		dy, iy = -dy, -1
	}

	s.SetPixel(x0, y0, c)
	if dx >= dy {
		e := 0
		for x0 != x1 {
			x0 += ix
			e += dy
			if 2*e >= dx {
				y0 += iy
				e -= dx
			}
			s.SetPixel(x0, y0, c)
		}
		return
	}
	e := 0
	for y0 != y1 {
		y0 += iy
		e += dx
		if 2*e >= dy {
			x0 += ix
			e -= dy
		}
		s.SetPixel(x0, y0, c)
	}
}

// DrawSquare fills a size x size square centered on (cx, cy).
func DrawSquare(s Sink, cx, cy, size int, c Color) {
	lo := -size / 2
	hi := lo + size
	for y := lo; y < hi; y++ {
		for x := lo; x < hi; x++ {
			s.SetPixel(cx+x, cy+y, c)
		}
	}
}

func StrokeTriangle(s Sink, p0, p1, p2 ScreenPoint, c Color) {
	DrawLine(s, p0.X, p0.Y, p1.X, p1.Y, c)
	DrawLine(s, p1.X, p1.Y, p2.X, p2.Y, c)
	DrawLine(s, p2.X, p2.Y, p0.X, p0.Y, c)
}
