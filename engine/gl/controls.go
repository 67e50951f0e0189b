package gl

import "fixgl/engine/fix"

// FlyController moves a camera along its yaw heading. It does not depend on
// any input system.
type FlyController struct {
	Step    fix.Scalar // distance per move
	Turn    fix.Scalar // radians per turn
	FOVStep fix.Scalar
	MinFOV  fix.Scalar
}

// DefaultFly moves 0.1 units and turns 0.1 radians per step.
func DefaultFly() FlyController {
	tenth := fix.One.DivInt(10)
	return FlyController{Step: tenth, Turn: tenth, FOVStep: fix.One, MinFOV: fix.One}
}

// Forward moves along the heading; negative steps move back.
func (c FlyController) Forward(cam *Camera, steps int) {
	d := c.Step.MulInt(steps)
	yaw := cam.Rotation.X
	cam.Position.X = cam.Position.X.Add(yaw.Sin().Mul(d))
	cam.Position.Z = cam.Position.Z.Add(yaw.Cos().Mul(d))
}

// Strafe moves sideways; positive steps move right.
func (c FlyController) Strafe(cam *Camera, steps int) {
	d := c.Step.MulInt(steps)
	yaw := cam.Rotation.X
	cam.Position.X = cam.Position.X.Add(yaw.Cos().Mul(d))
	cam.Position.Z = cam.Position.Z.Sub(yaw.Sin().Mul(d))
}

// Rise moves up; screen Y grows downward so up is negative Y.
func (c FlyController) Rise(cam *Camera, steps int) {
	cam.Position.Y = cam.Position.Y.Sub(c.Step.MulInt(steps))
}

// Rotate turns by yaw and pitch steps.
func (c FlyController) Rotate(cam *Camera, yaw, pitch int) {
	cam.Rotation.X = cam.Rotation.X.Add(c.Turn.MulInt(yaw))
	cam.Rotation.Y = cam.Rotation.Y.Add(c.Turn.MulInt(pitch))
}

// Zoom changes the FOV numerator, never below MinFOV.
func (c FlyController) Zoom(cam *Camera, steps int) {
	cam.FOV = fix.Maximum(cam.FOV.Add(c.FOVStep.MulInt(steps)), c.MinFOV)
}
