package gl

import (
	"fixgl/engine/fix"
	"fixgl/engine/model"
)

// DefaultMargin is how far, in pixels, a projected point may fall outside the
// screen and still count as visible.
const DefaultMargin = 200

// Camera orients the world. FOV is the focal numerator: screen offset equals
// camera-space x*FOV/z.
type Camera struct {
	Position fix.Vec3
	Rotation fix.Vec2
	FOV      fix.Scalar
}

// DefaultCamera looks at the origin from the upper left front.
func DefaultCamera() Camera {
	return Camera{
		Position: fix.V3(fix.Int(-6), fix.Int(-16).DivInt(10), fix.Int(-8)),
		Rotation: fix.V2(fix.Int(6).DivInt(10), fix.Int(4).DivInt(10)),
		FOV:      fix.Int(300),
	}
}

// Light is a point light. Intensity is the base multiplier, 1.0 for full.
type Light struct {
	Position  fix.Vec3
	Intensity fix.Scalar
}

// Transform places a mesh in the world.
type Transform struct {
	Position fix.Vec3
	Rotation fix.Vec2
	Scale    fix.Vec3
}

// Identity has unit scale and no rotation or translation.
var Identity = Transform{Scale: fix.V3(fix.One, fix.One, fix.One)}

func TransformOf(m *model.Model) Transform {
	return Transform{Position: m.Position, Rotation: m.Rotation, Scale: m.Scale}
}

type Viewport struct {
	Width, Height int
	Margin        int
}

// ScreenPoint is a projected vertex. U and V are texel coordinates filled in
// by the caller before rasterizing textured faces.
type ScreenPoint struct {
	X, Y  int
	Depth fix.Scalar
	U, V  int
}

// WorldPosition scales, rotates and translates a model-space vertex.
func WorldPosition(v fix.Vec3, t Transform) fix.Vec3 {
	return v.Scale(t.Scale).Rotate(t.Rotation).Add(t.Position)
}

// CameraSpace moves a world point into camera space.
func CameraSpace(cam Camera, world fix.Vec3) fix.Vec3 {
	return world.Sub(cam.Position).Rotate(cam.Rotation)
}

// Project maps a model-space vertex to the screen. The point is valid only
// when it lies in front of the camera and within the margin around the
// viewport; invalid points must not be rasterized.
func Project(cam Camera, v fix.Vec3, t Transform, vp Viewport) (ScreenPoint, bool) {
	return projectCamera(cam.FOV, CameraSpace(cam, WorldPosition(v, t)), vp)
}

func projectCamera(fov fix.Scalar, c fix.Vec3, vp Viewport) (ScreenPoint, bool) {
	p := ScreenPoint{Depth: c.Z}
	z := c.Z
	if z == 0 {
		z = fix.Epsilon
	}
	focal := fov.Div(z)
	sx := fix.Int(vp.Width / 2).Add(c.X.Mul(focal))
	sy := fix.Int(vp.Height / 2).Add(c.Y.Mul(focal))
	p.X, p.Y = sx.Int(), sy.Int()

	m := vp.Margin
	if c.Z <= 0 ||
		sx < fix.Int(-m) || sx > fix.Int(vp.Width+m) ||
		sy < fix.Int(-m) || sy > fix.Int(vp.Height+m) {
		return p, false
	}
	return p, true
}
