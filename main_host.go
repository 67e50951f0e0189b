//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"fixgl/app"
	"fixgl/engine/fix"
	"fixgl/hal"
	"fixgl/internal/buildinfo"
)

func main() {
	var (
		headless hal.HeadlessConfig
		useHead  bool
		useTerm  bool
		window   hal.WindowConfig
		cfg      app.Config
		fov      fix.Scalar
		logLevel string
		version  bool
	)
	flag.BoolVar(&useHead, "headless", false, "Run without a window.")
	flag.BoolVar(&useTerm, "term", false, "Draw into the terminal with half-block cells.")
	flag.IntVar(&headless.Hz, "hz", 60, "Frame rate in headless and terminal mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N frames in headless and terminal mode (0 = run forever).")
	flag.StringVar(&headless.Snapshot, "snapshot", "", "Write the last headless frame to this .png or .bmp file.")
	flag.BoolVar(&headless.Fast, "fast", false, "Headless: step frames back to back on a virtual clock.")
	flag.IntVar(&window.Width, "width", hal.DefaultWidth, "Framebuffer width.")
	flag.IntVar(&window.Height, "height", hal.DefaultHeight, "Framebuffer height.")
	flag.IntVar(&window.Scale, "scale", 2, "Window pixels per framebuffer pixel.")
	flag.StringVar(&cfg.ModelPath, "model", "", "Binary model file (default: built-in cube and torus).")
	flag.StringVar(&cfg.TexturePath, "texture", "", "Binary texture file for -model.")
	flag.StringVar(&cfg.Order, "order", "auto", "Byte order of -model and -texture: auto, little or big.")
	flag.Var(&cfg.Mode, "mode", "Initial render mode: textured-lit, textured, flat-lit, gradient, indexed, wireframe, points.")
	flag.Var(&fov, "fov", "Focal numerator (default 300).")
	flag.BoolVar(&cfg.HideHUD, "no-hud", false, "Start with the HUD hidden.")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error.")
	flag.BoolVar(&version, "version", false, "Print the version and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg.FOV = fov
	headless.Width, headless.Height = window.Width, window.Height

	newApp := func(h hal.HAL) func() error { return app.NewWithConfig(h, cfg) }

	var err error
	switch {
	case useHead || useTerm:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if useTerm {
			err = hal.RunTerminal(ctx, newApp, hal.TerminalConfig{
				Hz:        headless.Hz,
				Ticks:     headless.Ticks,
				MaxWidth:  window.Width,
				MaxHeight: window.Height,
			})
		} else {
			err = hal.RunHeadless(ctx, newApp, headless)
		}
	default:
		err = hal.RunWindow(newApp, window)
	}
	if err == nil || errors.Is(err, app.ErrExit) || errors.Is(err, context.Canceled) {
		return
	}
	slog.Error("fixgl", "err", err)
	os.Exit(1)
}
