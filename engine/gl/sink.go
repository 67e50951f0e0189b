package gl

// Sink receives pixels from the renderer.
//
// Implementations ignore out-of-bounds coordinates.
type Sink interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
	Present() error
}

// RGB565Sink writes little-endian RGB565 pixels into a caller-owned buffer,
// typically a HAL framebuffer. Flush, when set, is called by Present.
type RGB565Sink struct {
	Buf    []byte
	Stride int // bytes per row
	W, H   int
	Flush  func() error
}

func (t *RGB565Sink) Size() (w, h int) { return t.W, t.H }

func (t *RGB565Sink) ok() bool {
	return t != nil && t.Stride >= t.W*2 && t.W > 0 && t.H > 0 && len(t.Buf) >= (t.H-1)*t.Stride+t.W*2
}

func (t *RGB565Sink) Clear(c Color) {
	if !t.ok() {
		return
	}
	p := c.RGB565()
	lo, hi := byte(p), byte(p>>8)
	for y := 0; y < t.H; y++ {
		row := t.Buf[y*t.Stride : y*t.Stride+t.W*2]
		for x := 0; x < len(row); x += 2 {
			row[x] = lo
			row[x+1] = hi
		}
	}
}

func (t *RGB565Sink) SetPixel(x, y int, c Color) {
	if !t.ok() || x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	off := y*t.Stride + x*2
	p := c.RGB565()
	t.Buf[off] = byte(p)
	t.Buf[off+1] = byte(p >> 8)
}

func (t *RGB565Sink) Present() error {
	if t == nil || t.Flush == nil {
		return nil
	}
	return t.Flush()
}

// Buffer is an in-memory RGB sink. It counts writes so callers can check
// exactly what a draw call touched.
type Buffer struct {
	W, H int
	Pix  []Color

	// Writes counts in-bounds SetPixel calls since the last Clear.
	Writes int
	// Dropped counts out-of-bounds SetPixel calls since the last Clear.
	Dropped  int
	Presents int

	touched []bool
}

func NewBuffer(w, h int) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Buffer{W: w, H: h, Pix: make([]Color, w*h), touched: make([]bool, w*h)}
}

func (b *Buffer) Size() (w, h int) { return b.W, b.H }

func (b *Buffer) SetPixel(x, y int, c Color) {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		b.Dropped++
		return
	}
	i := y*b.W + x
	b.Pix[i] = c
	b.touched[i] = true
	b.Writes++
}

func (b *Buffer) Clear(c Color) {
	for i := range b.Pix {
		b.Pix[i] = c
		b.touched[i] = false
	}
	b.Writes = 0
	b.Dropped = 0
}

func (b *Buffer) Present() error {
	b.Presents++
	return nil
}

// At returns the pixel at (x, y), or black outside the buffer.
func (b *Buffer) At(x, y int) Color {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return Color{}
	}
	return b.Pix[y*b.W+x]
}

// Touched reports whether (x, y) was written since the last Clear.
func (b *Buffer) Touched(x, y int) bool {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return false
	}
	return b.touched[y*b.W+x]
}
