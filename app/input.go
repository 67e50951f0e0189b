package app

import (
	"fixgl/engine/fix"
	"fixgl/engine/gl"
	"fixgl/hal"
)

// lightStep is how far one key press moves the light.
var lightStep = fix.Half

func (v *viewer) handleInput() error {
	for {
		select {
		case ev, ok := <-v.keys:
			if !ok {
				v.keys = nil
				return nil
			}
			if !ev.Press {
				continue
			}
			if err := v.handleKey(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (v *viewer) handleKey(ev hal.KeyEvent) error {
	cam := &v.scene.Camera
	switch ev.Code {
	case hal.KeyEscape:
		return ErrExit
	case hal.KeyUp:
		v.fly.Forward(cam, 1)
	case hal.KeyDown:
		v.fly.Forward(cam, -1)
	case hal.KeyLeft:
		v.fly.Strafe(cam, -1)
	case hal.KeyRight:
		v.fly.Strafe(cam, 1)
	case hal.KeyPageUp:
		v.fly.Rise(cam, 1)
	case hal.KeyPageDown:
		v.fly.Rise(cam, -1)
	case hal.KeyEnter:
		fov := cam.FOV
		*cam = gl.DefaultCamera()
		cam.FOV = fov
	case hal.KeyTab:
		v.selectNext()
	case hal.KeyF1:
		v.showHUD = !v.showHUD
	case hal.KeyUnknown:
		return v.handleRune(ev.Rune)
	}
	return nil
}

func (v *viewer) handleRune(r rune) error {
	cam := &v.scene.Camera
	light := &v.scene.Light.Position
	switch r {
	case 'q':
		return ErrExit
	case 'r':
		v.fly.Rise(cam, 1)
	case 'f':
		v.fly.Rise(cam, -1)
	case 'a':
		v.fly.Rotate(cam, -1, 0)
	case 'd':
		v.fly.Rotate(cam, 1, 0)
	case 'w':
		v.fly.Rotate(cam, 0, -1)
	case 's':
		v.fly.Rotate(cam, 0, 1)
	case '1', '+', '=':
		v.fly.Zoom(cam, 1)
	case '2', '-':
		v.fly.Zoom(cam, -1)
	case 'm':
		if m := v.selected(); m != nil {
			m.Mode = m.Mode.Next()
			v.log.Info("app: mode", "model", m.Name, "mode", m.Mode)
		}
	case 'n':
		v.selectNext()
	case 'j':
		light.X = light.X.Sub(lightStep)
	case 'l':
		light.X = light.X.Add(lightStep)
	case 'u':
		light.Y = light.Y.Sub(lightStep)
	case 'o':
		light.Y = light.Y.Add(lightStep)
	case 'i':
		light.Z = light.Z.Add(lightStep)
	case 'k':
		light.Z = light.Z.Sub(lightStep)
	case 'g':
		v.r.ShowGizmo = !v.r.ShowGizmo
	case 'h':
		v.showHUD = !v.showHUD
	}
	return nil
}

func (v *viewer) selectNext() {
	if len(v.ids) == 0 {
		return
	}
	v.sel = (v.sel + 1) % len(v.ids)
	if m := v.selected(); m != nil {
		v.log.Debug("app: selected", "model", m.Name)
	}
}
