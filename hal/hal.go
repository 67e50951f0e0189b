package hal

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

type PixelFormat uint8

const (
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a CPU-accessible pixel buffer.
//
// Pixels are stored little-endian RGB565. Present pushes the buffer to the
// physical display; on hosts that snapshot the buffer it is a no-op.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyPageUp
	KeyPageDown
	KeyF1
	KeyF2
	KeyF3
)

// KeyEvent is either a named key (Code) or text input (Rune, Code unset).
// Rune events only report presses.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

type Keyboard interface {
	Events() <-chan KeyEvent
}

type Display interface {
	Framebuffer() Framebuffer
}

type Input interface {
	Keyboard() Keyboard
}

// Time delivers a monotonically increasing millisecond tick count.
type Time interface {
	Ticks() <-chan uint64
}

type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Time() Time
}
