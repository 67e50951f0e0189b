//go:build !tinygo

package hal

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/bmp"
)

func fillRed(h HAL) {
	fb := h.Display().Framebuffer()
	fb.ClearRGB(0xFF, 0, 0)
	_ = fb.Present()
}

func TestFramebufferSnapshot(t *testing.T) {
	fb := newHostFramebuffer(3, 2)
	fb.ClearRGB(0xFF, 0xFF, 0xFF)
	p := rgb565(0xFF, 0, 0)
	fb.buf[fb.stride+2] = byte(p)
	fb.buf[fb.stride+3] = byte(p >> 8)

	img := fb.snapshot(nil)
	if c := img.RGBAAt(0, 0); c.R != 0xFF || c.G != 0xFF || c.B != 0xFF || c.A != 0xFF {
		t.Fatalf("white = %v", c)
	}
	if c := img.RGBAAt(1, 1); c.R != 0xFF || c.G != 0 || c.B != 0 {
		t.Fatalf("red = %v", c)
	}
	if again := fb.snapshot(img); again != img {
		t.Fatalf("snapshot reallocated a matching image")
	}
}

func TestHostTimeElapse(t *testing.T) {
	ht := newHostTime()
	ht.elapse(2500 * time.Microsecond)
	ht.elapse(500 * time.Microsecond)

	var last uint64
	n := 0
	for {
		select {
		case last = <-ht.Ticks():
			n++
			continue
		default:
		}
		break
	}
	if n != 3 || last != 3 {
		t.Fatalf("got %d ticks, last %d", n, last)
	}
}

func TestPressRepeats(t *testing.T) {
	tests := []struct {
		d    int
		code KeyCode
		want bool
	}{
		{1, KeyUp, true},
		{2, KeyUp, false},
		{repeatDelay, KeyLeft, false},
		{repeatDelay + repeatEvery, KeyLeft, true},
		{repeatDelay + repeatEvery + 1, KeyLeft, false},
		{1, KeyEscape, true},
		{repeatDelay + repeatEvery, KeyEscape, false},
	}
	for _, tt := range tests {
		if got := pressRepeats(tt.d, tt.code); got != tt.want {
			t.Errorf("pressRepeats(%d, %v) = %v, want %v", tt.d, tt.code, got, tt.want)
		}
	}
}

func TestRunHeadlessSnapshot(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"frame.png", "frame.bmp"} {
		path := filepath.Join(dir, name)
		steps := 0
		err := RunHeadless(context.Background(), func(h HAL) func() error {
			return func() error {
				steps++
				fillRed(h)
				return nil
			}
		}, HeadlessConfig{Ticks: 3, Fast: true, Width: 8, Height: 4, Snapshot: path})
		if err != nil {
			t.Fatalf("RunHeadless: %v", err)
		}
		if steps != 3 {
			t.Fatalf("ran %d steps", steps)
		}

		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		dec := png.Decode
		if filepath.Ext(name) == ".bmp" {
			dec = bmp.Decode
		}
		img, err := dec(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", name, err)
		}
		if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 4 {
			t.Fatalf("%s bounds = %v", name, b)
		}
		r, g, b, _ := img.At(7, 3).RGBA()
		if r>>8 != 0xFF || g != 0 || b != 0 {
			t.Fatalf("%s pixel = %d %d %d", name, r>>8, g>>8, b>>8)
		}
	}
}

func TestRunHeadlessStopsOnError(t *testing.T) {
	want := os.ErrClosed
	err := RunHeadless(context.Background(), func(HAL) func() error {
		return func() error { return want }
	}, HeadlessConfig{Fast: true})
	if err != want {
		t.Fatalf("err = %v, want %v", err, want)
	}
}

func TestHeadlessClockAdvancesPerFrame(t *testing.T) {
	var seen uint64
	err := RunHeadless(context.Background(), func(h HAL) func() error {
		return func() error {
			for {
				select {
				case seen = <-h.Time().Ticks():
					continue
				default:
				}
				return nil
			}
		}
	}, HeadlessConfig{Hz: 50, Ticks: 4, Fast: true})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if seen != 80 {
		t.Fatalf("clock at %d ms after 4 frames at 50 Hz", seen)
	}
}

func TestTerminalKey(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want KeyEvent
		ok   bool
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), KeyEvent{Code: KeyUp, Press: true}, true},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), KeyEvent{Code: KeyEscape, Press: true}, true},
		{tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), KeyEvent{Rune: 'm', Press: true}, true},
		{tcell.NewEventKey(tcell.KeyF12, 0, tcell.ModNone), KeyEvent{}, false},
	}
	for _, tt := range tests {
		got, ok := terminalKey(tt.ev)
		if ok != tt.ok || got != tt.want {
			t.Errorf("terminalKey(%v) = %+v, %v", tt.ev.Name(), got, ok)
		}
	}
}

func TestRunTerminalDrawsHalfBlocks(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer s.Fini()
	s.SetSize(6, 3)

	var size [2]int
	err := runTerminal(context.Background(), s, func(h HAL) func() error {
		fb := h.Display().Framebuffer()
		size = [2]int{fb.Width(), fb.Height()}
		return func() error {
			fillRed(h)
			return nil
		}
	}, TerminalConfig{Hz: 200, Ticks: 2})
	if err != nil {
		t.Fatalf("runTerminal: %v", err)
	}
	if size != [2]int{6, 6} {
		t.Fatalf("framebuffer = %v, want 6x6", size)
	}

	mainc, _, st, _ := s.GetContent(5, 2)
	if mainc != '▀' {
		t.Fatalf("cell = %q", mainc)
	}
	fg, bg, _ := st.Decompose()
	red := tcell.NewRGBColor(0xFF, 0, 0)
	if fg != red || bg != red {
		t.Fatalf("cell colors = %v %v", fg, bg)
	}
}
