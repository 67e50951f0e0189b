package gl

import (
	"testing"

	"fixgl/engine/fix"
	"fixgl/engine/model"
)

func straightCamera() Camera {
	return Camera{FOV: fix.Int(300)}
}

var testViewport = Viewport{Width: 320, Height: 240, Margin: DefaultMargin}

func TestProjectCenter(t *testing.T) {
	p, ok := Project(straightCamera(), fix.V3(0, 0, fix.Int(5)), Identity, testViewport)
	if !ok {
		t.Fatalf("point in front of the camera is invalid")
	}
	if p.X != 160 || p.Y != 120 {
		t.Fatalf("center projects to (%d,%d)", p.X, p.Y)
	}
	if p.Depth != fix.Int(5) {
		t.Fatalf("depth = %v", p.Depth)
	}

	p, ok = Project(straightCamera(), fix.V3(fix.One, fix.Int(-2), fix.Int(5)), Identity, testViewport)
	if !ok || p.X != 220 || p.Y != 0 {
		t.Fatalf("(1,-2,5) -> (%d,%d) ok=%v, want (220,0)", p.X, p.Y, ok)
	}
}

func TestProjectBehindCameraIsInvalid(t *testing.T) {
	cam := straightCamera()
	for _, v := range []fix.Vec3{
		fix.V3(0, 0, 0),
		fix.V3(0, 0, fix.Int(-5)),
		fix.V3(fix.Int(3), fix.Int(-2), fix.Int(-1)),
		fix.V3(0, 0, fix.Raw(-1)),
	} {
		if _, ok := Project(cam, v, Identity, testViewport); ok {
			t.Errorf("Project(%v) valid with z <= 0", v)
		}
	}
}

func TestProjectMargin(t *testing.T) {
	cam := straightCamera()
	// 300/1 * 100 lands far past the margin.
	if _, ok := Project(cam, fix.V3(fix.Int(100), 0, fix.One), Identity, testViewport); ok {
		t.Fatalf("far off-screen point valid")
	}
	// x = 160 + 1*300/1 = 460: outside the screen, inside the margin.
	if p, ok := Project(cam, fix.V3(fix.One, 0, fix.One), Identity, testViewport); !ok || p.X != 460 {
		t.Fatalf("point inside margin: (%d,%d) ok=%v", p.X, p.Y, ok)
	}
}

func TestProjectAppliesTransform(t *testing.T) {
	cam := straightCamera()
	tr := Transform{
		Position: fix.V3(0, 0, fix.Int(10)),
		Scale:    fix.V3(fix.Int(2), fix.Int(2), fix.Int(2)),
	}
	p, ok := Project(cam, fix.V3(fix.One, 0, 0), tr, testViewport)
	if !ok {
		t.Fatalf("invalid")
	}
	// Scaled to x=2 at z=10: 160 + 2*30.
	if p.X != 220 || p.Depth != fix.Int(10) {
		t.Fatalf("got x=%d depth=%v", p.X, p.Depth)
	}
}

func TestCameraSpaceTranslatesFirst(t *testing.T) {
	cam := Camera{Position: fix.V3(fix.One, 0, 0), Rotation: fix.V2(fix.HalfPi, 0)}
	got := CameraSpace(cam, fix.V3(fix.One, 0, fix.One))
	// (0,0,1) rotated a quarter turn on XZ.
	if got.X.Sub(fix.One.Neg()).Abs() > 4 || got.Z.Abs() > 4 {
		t.Fatalf("CameraSpace = %v", got)
	}
}

func TestDefaultCameraSeesOrigin(t *testing.T) {
	p, ok := Project(DefaultCamera(), fix.Vec3{}, Identity, testViewport)
	if !ok {
		t.Fatalf("origin not visible from the default camera")
	}
	if p.X < 0 || p.X >= 320 || p.Y < 0 || p.Y >= 240 {
		t.Fatalf("origin projects off screen: (%d,%d)", p.X, p.Y)
	}
}

func TestOrderFacesBackToFront(t *testing.T) {
	depths := []fix.Scalar{
		fix.Int(1), fix.Int(1), fix.Int(1),
		fix.Int(2), fix.Int(2), fix.Int(2),
		fix.Int(3), fix.Int(3), fix.Int(3),
	}
	faces := []model.Face{{First: 0, Second: 1, Third: 2}, {First: 3, Second: 4, Third: 5}, {First: 6, Second: 7, Third: 8}}
	got := OrderFaces(faces, depths, nil)
	if len(got) != 3 {
		t.Fatalf("got %d faces", len(got))
	}
	want := []int{2, 1, 0}
	for i, w := range want {
		if got[i].Index != w {
			t.Fatalf("order = %v, want faces %v", got, want)
		}
	}
}

func TestOrderFacesStableAndFiltered(t *testing.T) {
	depths := []fix.Scalar{fix.Int(4), fix.Int(4), fix.Int(4), fix.Int(9)}
	faces := []model.Face{
		{First: 0, Second: 1, Third: 2},
		{First: 2, Second: 1, Third: 0},
		{First: 0, Second: 1, Third: 7}, // out of range
		{First: 3, Second: 3, Third: 3},
		{First: 1, Second: 2, Third: 0},
	}
	got := OrderFaces(faces, depths, make([]DepthIndex, 0, 8))
	want := []int{3, 0, 1, 4}
	if len(got) != len(want) {
		t.Fatalf("order = %v", got)
	}
	for i, w := range want {
		if got[i].Index != w {
			t.Fatalf("order = %v, want faces %v", got, want)
		}
	}
}

func TestOrderModelsFarFirst(t *testing.T) {
	cam := Camera{}
	near := model.NewModel("near", nil)
	near.Position = fix.V3(0, 0, fix.Int(2))
	far := model.NewModel("far", nil)
	far.Position = fix.V3(fix.Int(10), 0, 0)
	mid := model.NewModel("mid", nil)
	mid.Position = fix.V3(0, fix.Int(-5), 0)

	got := OrderModels(cam, []*model.Model{near, nil, far, mid}, nil)
	want := []int{2, 3, 0}
	if len(got) != len(want) {
		t.Fatalf("order = %v", got)
	}
	for i, w := range want {
		if got[i].Index != w {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestIntensity(t *testing.T) {
	light := fix.V3(0, 0, fix.Int(10))
	surface := fix.Vec3{}

	if got := Intensity(light, surface, fix.V3(0, 0, fix.One), fix.One); got != fix.One {
		t.Fatalf("facing light = %v, want 1", got)
	}
	if got := Intensity(light, surface, fix.V3(0, 0, fix.One.Neg()), fix.One); got != MinIntensity {
		t.Fatalf("facing away = %v, want floor", got)
	}
	if got := Intensity(light, surface, fix.V3(fix.One, 0, 0), fix.One); got != MinIntensity {
		t.Fatalf("edge on = %v, want floor", got)
	}
	if got := Intensity(surface, surface, fix.V3(0, 0, fix.One), fix.One); got != MinIntensity {
		t.Fatalf("light on surface = %v, want floor", got)
	}
	// Rounded unit vectors can dot to slightly above one.
	oblique, _ := fix.Normalize(fix.V3(fix.One, fix.Int(2), fix.Int(2)))
	if got := Intensity(fix.V3(fix.Int(3), fix.Int(6), fix.Int(6)), surface, oblique, fix.One); got != fix.One {
		t.Fatalf("facing light on a diagonal = %d, want %d", got, fix.One)
	}
	far := fix.V3(fix.Int(30000), 0, fix.Int(30000))
	if got := Intensity(far, surface, fix.V3(0, 0, fix.One), fix.One); got.Sub(fix.Float(0.7071)).Abs() > 8 {
		t.Fatalf("distant light at 45 degrees = %v", got)
	}
	half := Intensity(light, surface, fix.V3(0, 0, fix.One), fix.Half)
	if half != fix.Half {
		t.Fatalf("half base = %v", half)
	}
}

func TestFaceIntensityUsesWinding(t *testing.T) {
	l := Light{Position: fix.V3(0, 0, fix.Int(10)), Intensity: fix.One}
	a := fix.V3(0, 0, 0)
	b := fix.V3(fix.One, 0, 0)
	c := fix.V3(0, fix.One, 0)
	if got := FaceIntensity(l, a, b, c); got != fix.One {
		t.Fatalf("front = %v", got)
	}
	if got := FaceIntensity(l, a, c, b); got != MinIntensity {
		t.Fatalf("back = %v", got)
	}
	if got := FaceIntensity(l, a, a, b); got != MinIntensity {
		t.Fatalf("degenerate = %v", got)
	}
}
