package app

import (
	"fmt"

	"fixgl/internal/buildinfo"
)

type fpsCounter struct {
	start  uint64
	frames int
	fps    int
}

// frame counts one frame at time now (milliseconds) and refreshes the rate
// once a second.
func (c *fpsCounter) frame(now uint64) {
	c.frames++
	if now < c.start {
		c.start = now
	}
	if d := now - c.start; d >= 1000 {
		c.fps = int(uint64(c.frames) * 1000 / d)
		c.frames = 0
		c.start = now
	}
}

func (v *viewer) hudLines() []string {
	cam := v.scene.Camera
	lines := []string{
		fmt.Sprintf("fixgl %s  %d fps", buildinfo.Short(), v.fps.fps),
		fmt.Sprintf("faces %d/%d  culled %d", v.stats.Drawn, v.stats.Faces, v.stats.Culled),
	}
	if m := v.selected(); m != nil {
		lines = append(lines, fmt.Sprintf("[%d/%d] %s  %s", v.sel+1, len(v.ids), m.Name, m.Mode))
	}
	lines = append(lines,
		fmt.Sprintf("cam %v %v %v", cam.Position.X, cam.Position.Y, cam.Position.Z),
		fmt.Sprintf("fov %v", cam.FOV),
	)
	return lines
}

func (v *viewer) drawHUD() {
	v.hud.Draw(v.sink, v.hudLines()...)
}
