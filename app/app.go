package app

import (
	"errors"
	"fmt"
	"log/slog"

	"fixgl/engine/fix"
	"fixgl/engine/gl"
	"fixgl/engine/hud"
	"fixgl/engine/model"
	"fixgl/hal"
)

// ErrExit is returned by step when the user asks to quit.
var ErrExit = errors.New("app: exit")

// Config carries the values parsed from the command line.
type Config struct {
	ModelPath   string
	TexturePath string
	Order       string // "auto", "little" or "big"

	Mode model.RenderMode
	FOV  fix.Scalar // zero keeps the camera default

	LogLevel slog.Level
	HideHUD  bool

	// ReadFile loads assets; nil uses os.ReadFile.
	ReadFile func(name string) ([]byte, error)
}

// New starts the viewer with the default config.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

// NewWithConfig builds the scene and returns the per-frame step function the
// HAL runners call.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	v := newViewer(h, cfg)
	return v.step
}

// Run steps the viewer until it exits (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	RunWithConfig(h, Config{})
}

func RunWithConfig(h hal.HAL, cfg Config) {
	step := NewWithConfig(h, cfg)
	for {
		err := step()
		if err == nil {
			continue
		}
		if errors.Is(err, ErrExit) {
			if fb := framebuffer(h); fb != nil {
				fb.ClearRGB(0, 0, 0)
				_ = fb.Present()
			}
			return
		}
		// The panic screen stays up.
		select {}
	}
}

type viewer struct {
	h   hal.HAL
	log *slog.Logger

	fb   hal.Framebuffer
	sink gl.Sink

	scene *gl.Scene
	r     *gl.Renderer
	hud   *hud.Overlay
	fly   gl.FlyController

	keys  <-chan hal.KeyEvent
	ticks <-chan uint64
	now   uint64

	ids     []int // scene ids, in load order
	sel     int   // index into ids
	showHUD bool

	fps   fpsCounter
	stats gl.Stats
}

func newViewer(h hal.HAL, cfg Config) *viewer {
	log := newLogger(h, cfg.LogLevel)
	gl.SetLogger(log)

	v := &viewer{
		h:       h,
		log:     log,
		fb:      framebuffer(h),
		r:       gl.NewRenderer(),
		hud:     hud.New(),
		fly:     gl.DefaultFly(),
		showHUD: !cfg.HideHUD,
	}
	if v.fb != nil && v.fb.Format() == hal.PixelFormatRGB565 {
		v.sink = &gl.RGB565Sink{
			Buf:    v.fb.Buffer(),
			Stride: v.fb.StrideBytes(),
			W:      v.fb.Width(),
			H:      v.fb.Height(),
			Flush:  v.fb.Present,
		}
	} else {
		log.Warn("app: no RGB565 framebuffer, frames are discarded")
	}
	if in := h.Input(); in != nil {
		if kb := in.Keyboard(); kb != nil {
			v.keys = kb.Events()
		}
	}
	if t := h.Time(); t != nil {
		v.ticks = t.Ticks()
	}

	v.scene, v.ids = buildScene(log, cfg)
	if cfg.FOV > 0 {
		v.scene.Camera.FOV = cfg.FOV
	}
	log.Info("app: ready", "models", len(v.ids), "mode", cfg.Mode)
	return v
}

func framebuffer(h hal.HAL) hal.Framebuffer {
	if d := h.Display(); d != nil {
		return d.Framebuffer()
	}
	return nil
}

func (v *viewer) step() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = v.panicked(r)
		}
	}()

	v.drainTicks()
	if err := v.handleInput(); err != nil {
		return err
	}
	if v.sink == nil {
		return nil
	}

	v.stats = v.r.Render(v.sink, v.scene)
	v.fps.frame(v.now)
	if v.showHUD {
		v.drawHUD()
	}
	if err := v.sink.Present(); err != nil {
		return fmt.Errorf("app: present: %w", err)
	}
	return nil
}

func (v *viewer) drainTicks() {
	for {
		select {
		case seq, ok := <-v.ticks:
			if !ok {
				v.ticks = nil
				return
			}
			v.now = seq
		default:
			return
		}
	}
}

// selected returns the model the mode key applies to.
func (v *viewer) selected() *model.Model {
	if len(v.ids) == 0 {
		return nil
	}
	return v.scene.Model(v.ids[v.sel])
}
