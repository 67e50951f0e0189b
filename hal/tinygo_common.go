//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

type tinyGoDisplay struct {
	fb Framebuffer
}

func (d tinyGoDisplay) Framebuffer() Framebuffer { return d.fb }

type tinyGoInput struct {
	kbd Keyboard
}

func (in tinyGoInput) Keyboard() Keyboard { return in.kbd }

type tinyGoTime struct {
	ch  chan uint64
	seq uint64
}

func newTinyGoTime() *tinyGoTime {
	t := &tinyGoTime{ch: make(chan uint64, 16)}
	go func() {
		ticker := time.NewTicker(1 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			t.seq++
			select {
			case t.ch <- t.seq:
			default:
			}
		}
	}()
	return t
}

func (t *tinyGoTime) Ticks() <-chan uint64 { return t.ch }

func configureUART0() *machine.UART {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	return uart
}

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	l.uart.Write(b)
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

// memFramebuffer is an RGB565 buffer with an optional panel behind it.
type memFramebuffer struct {
	w      int
	h      int
	stride int
	buf    []byte
	blit   func(buf []byte, w, h int) error
}

func newMemFramebuffer(w, h int, blit func([]byte, int, int) error) *memFramebuffer {
	return &memFramebuffer{w: w, h: h, stride: w * 2, buf: make([]byte, w*h*2), blit: blit}
}

func (f *memFramebuffer) Width() int          { return f.w }
func (f *memFramebuffer) Height() int         { return f.h }
func (f *memFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *memFramebuffer) StrideBytes() int    { return f.stride }
func (f *memFramebuffer) Buffer() []byte      { return f.buf }

func (f *memFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

func (f *memFramebuffer) Present() error {
	if f.blit == nil {
		return nil
	}
	return f.blit(f.buf, f.w, f.h)
}

// uartKeyboard turns bytes received on the UART into key events, decoding the
// VT100 arrow sequences a serial terminal sends.
type uartKeyboard struct {
	ch   chan KeyEvent
	uart *machine.UART
	esc  int
}

func newUARTKeyboard(uart *machine.UART) *uartKeyboard {
	k := &uartKeyboard{ch: make(chan KeyEvent, 32), uart: uart}
	go func() {
		for {
			for k.uart.Buffered() > 0 {
				b, err := k.uart.ReadByte()
				if err != nil {
					break
				}
				if ev, ok := k.feed(b); ok {
					select {
					case k.ch <- ev:
					default:
					}
				}
			}
			time.Sleep(5 * time.Millisecond)
		}
	}()
	return k
}

func (k *uartKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *uartKeyboard) feed(b byte) (KeyEvent, bool) {
	switch k.esc {
	case 1:
		if b == '[' {
			k.esc = 2
			return KeyEvent{}, false
		}
		k.esc = 0
		return KeyEvent{Code: KeyEscape, Press: true}, true
	case 2:
		k.esc = 0
		switch b {
		case 'A':
			return KeyEvent{Code: KeyUp, Press: true}, true
		case 'B':
			return KeyEvent{Code: KeyDown, Press: true}, true
		case 'C':
			return KeyEvent{Code: KeyRight, Press: true}, true
		case 'D':
			return KeyEvent{Code: KeyLeft, Press: true}, true
		}
		return KeyEvent{}, false
	}
	switch b {
	case 0x1b:
		k.esc = 1
		return KeyEvent{}, false
	case '\r', '\n':
		return KeyEvent{Code: KeyEnter, Press: true}, true
	case '\t':
		return KeyEvent{Code: KeyTab, Press: true}, true
	case 0x08, 0x7f:
		return KeyEvent{Code: KeyBackspace, Press: true}, true
	}
	return KeyEvent{Rune: rune(b), Press: true}, true
}
