//go:build !tinygo

package hal

import (
	"io"
	"os"
	"sync"
)

// Default host framebuffer size, matching the PicoCalc panel.
const (
	DefaultWidth  = 320
	DefaultHeight = 320
)

// HostConfig sizes the host framebuffer and picks the log destination.
// Zero values select the defaults and stderr.
type HostConfig struct {
	Width  int
	Height int
	Log    io.Writer
}

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	t      *hostTime
}

// New returns a host HAL with the default framebuffer size.
func New() HAL {
	return newHostHAL(HostConfig{})
}

func newHostHAL(cfg HostConfig) *hostHAL {
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.Log == nil {
		cfg.Log = os.Stderr
	}
	return &hostHAL{
		logger: &hostLogger{w: cfg.Log},
		fb:     newHostFramebuffer(cfg.Width, cfg.Height),
		kbd:    newHostKeyboard(),
		t:      newHostTime(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Time() Time       { return h.t }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	io.WriteString(l.w, s)
	l.w.Write([]byte{'\n'})
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

// push drops the event when the app is not keeping up.
func (k *hostKeyboard) push(ev KeyEvent) {
	select {
	case k.ch <- ev:
	default:
	}
}

// Held navigation keys repeat after repeatDelay frames, every repeatEvery
// frames.
const (
	repeatDelay = 12
	repeatEvery = 2
)

// pressRepeats reports whether a key held for d ticks emits a press this tick.
// Only arrows and page keys repeat.
func pressRepeats(d int, code KeyCode) bool {
	if d == 1 {
		return true
	}
	switch code {
	case KeyUp, KeyDown, KeyLeft, KeyRight, KeyPageUp, KeyPageDown:
		return d > repeatDelay && (d-repeatDelay)%repeatEvery == 0
	}
	return false
}
