//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"image"
	"io"
	"time"

	"github.com/gdamore/tcell/v2"
)

// TerminalConfig controls the terminal runner. The framebuffer is sized from
// the terminal at start: one column per pixel, two pixel rows per cell.
type TerminalConfig struct {
	Hz        int
	Ticks     uint64 // stop after this many frames; 0 runs until ctx ends
	MaxWidth  int
	MaxHeight int
	Log       io.Writer // defaults to io.Discard, the screen owns stdout
}

// RunTerminal draws the framebuffer with half-block cells and reads keys from
// the terminal. It blocks until ctx ends or step fails.
func RunTerminal(ctx context.Context, newApp func(HAL) func() error, cfg TerminalConfig) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer s.Fini()
	return runTerminal(ctx, s, newApp, cfg)
}

func runTerminal(ctx context.Context, s tcell.Screen, newApp func(HAL) func() error, cfg TerminalConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}
	if cfg.MaxWidth <= 0 {
		cfg.MaxWidth = DefaultWidth
	}
	if cfg.MaxHeight <= 0 {
		cfg.MaxHeight = DefaultHeight
	}
	if cfg.Log == nil {
		cfg.Log = io.Discard
	}

	cols, rows := s.Size()
	w, h := min(cols, cfg.MaxWidth), min(rows*2, cfg.MaxHeight)
	if w <= 0 || h <= 0 {
		return fmt.Errorf("terminal: screen too small (%dx%d)", cols, rows)
	}

	hh := newHostHAL(HostConfig{Width: w, Height: h, Log: cfg.Log})
	step := newApp(hh)

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go s.ChannelEvents(events, quit)

	t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
	defer t.Stop()

	var img *image.RGBA
	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ke, ok := terminalKey(ev); ok {
					hh.kbd.push(ke)
					if ke.Code != KeyUnknown {
						ke.Press = false
						hh.kbd.push(ke)
					}
				}
			case *tcell.EventResize:
				s.Sync()
			}
		case <-t.C:
			hh.t.sync()
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			img = hh.fb.snapshot(img)
			blitHalfBlocks(s, img)
			s.Show()
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

// blitHalfBlocks draws two pixel rows per cell: the upper half block takes the
// top pixel as foreground and the bottom pixel as background.
func blitHalfBlocks(s tcell.Screen, img *image.RGBA) {
	b := img.Bounds()
	for y := 0; y < b.Dy(); y += 2 {
		for x := 0; x < b.Dx(); x++ {
			top := img.RGBAAt(x, y)
			bot := top
			if y+1 < b.Dy() {
				bot = img.RGBAAt(x, y+1)
			}
			st := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bot.R), int32(bot.G), int32(bot.B)))
			s.SetContent(x, y/2, '▀', nil, st)
		}
	}
}

func terminalKey(ev *tcell.EventKey) (KeyEvent, bool) {
	var code KeyCode
	switch ev.Key() {
	case tcell.KeyRune:
		return KeyEvent{Press: true, Rune: ev.Rune()}, true
	case tcell.KeyUp:
		code = KeyUp
	case tcell.KeyDown:
		code = KeyDown
	case tcell.KeyLeft:
		code = KeyLeft
	case tcell.KeyRight:
		code = KeyRight
	case tcell.KeyPgUp:
		code = KeyPageUp
	case tcell.KeyPgDn:
		code = KeyPageDown
	case tcell.KeyEnter:
		code = KeyEnter
	case tcell.KeyEscape, tcell.KeyCtrlC:
		code = KeyEscape
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		code = KeyBackspace
	case tcell.KeyTab:
		code = KeyTab
	case tcell.KeyF1:
		code = KeyF1
	case tcell.KeyF2:
		code = KeyF2
	case tcell.KeyF3:
		code = KeyF3
	default:
		return KeyEvent{}, false
	}
	return KeyEvent{Code: code, Press: true}, true
}
