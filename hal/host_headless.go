//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"io"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz     int
	Ticks  uint64 // stop after this many frames; 0 runs until ctx ends
	Width  int
	Height int
	Log    io.Writer

	// Snapshot, when set, receives the last presented frame (.png or .bmp).
	Snapshot string

	// Fast advances the clock by one frame per step without waiting.
	Fast bool
}

// RunHeadless steps the app on a ticker without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := newHostHAL(HostConfig{Width: cfg.Width, Height: cfg.Height, Log: cfg.Log})
	step := newApp(h)

	err := runFrames(ctx, h, step, d, cfg)
	if cfg.Snapshot != "" && h.fb.presented() > 0 {
		if serr := writeSnapshot(cfg.Snapshot, h.fb.snapshot(nil)); serr != nil && err == nil {
			err = serr
		}
	}
	return err
}

func runFrames(ctx context.Context, h *hostHAL, step func() error, d time.Duration, cfg HeadlessConfig) error {
	frame := func() error {
		h.t.elapse(d)
		if step == nil {
			return nil
		}
		return step()
	}

	var tick uint64
	if cfg.Fast {
		for cfg.Ticks == 0 || tick < cfg.Ticks {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := frame(); err != nil {
				return err
			}
			tick++
		}
		return nil
	}

	t := time.NewTicker(d)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := frame(); err != nil {
				return err
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
