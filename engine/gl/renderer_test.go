package gl

import (
	"testing"

	"fixgl/engine/fix"
	"fixgl/engine/model"
)

func cubeScene(mode model.RenderMode) *Scene {
	mesh := model.Cube(fix.One)
	mesh.Texture = model.Checker(16, 4, 0xE0E0E0, 0x4060A0)
	m := model.NewModel("cube", mesh)
	m.Mode = mode

	sc := NewScene(4)
	sc.Light.Position = fix.V3(fix.Int(-4), fix.Int(-4), fix.Int(-6))
	sc.AddModel(m)
	return sc
}

func TestRenderEveryMode(t *testing.T) {
	r := NewRenderer()
	r.ShowGizmo = false
	r.ShowLight = false
	b := NewBuffer(320, 240)

	for mode := model.RenderMode(0); mode < model.ModeCount; mode++ {
		st := r.Render(b, cubeScene(mode))
		if st.Models != 1 {
			t.Fatalf("%v: rendered %d models", mode, st.Models)
		}
		if b.Writes == 0 {
			t.Fatalf("%v: nothing drawn", mode)
		}
		if mode != model.ModePoints && (st.Faces != 12 || st.Drawn != 12 || st.Culled != 0) {
			t.Fatalf("%v: stats = %+v", mode, st)
		}
	}
}

func TestRenderClearsAndDoesNotPresent(t *testing.T) {
	r := NewRenderer()
	r.Background = RGB(1, 2, 3)
	b := NewBuffer(64, 64)
	r.Render(b, NewScene(1))
	if b.At(0, 63) != RGB(1, 2, 3) {
		t.Fatalf("background = %v", b.At(0, 63))
	}
	if b.Presents != 0 {
		t.Fatalf("Render presented")
	}
}

func TestRenderCullsFacesBehindCamera(t *testing.T) {
	sc := cubeScene(model.ModeFlatLit)
	sc.Camera = Camera{FOV: fix.Int(300)}
	// Straddles the camera plane: z in [-1, 1].
	r := NewRenderer()
	st := r.Render(NewBuffer(100, 100), sc)
	if st.Culled != 12 || st.Drawn != 0 {
		t.Fatalf("stats = %+v", st)
	}
}

func TestRenderTexturedFallsBackWithoutTexture(t *testing.T) {
	sc := cubeScene(model.ModeTexturedLit)
	sc.Model(0).Mesh.Texture = nil
	r := NewRenderer()
	r.ShowGizmo = false
	b := NewBuffer(320, 240)
	st := r.Render(b, sc)
	if st.Drawn != 12 || b.Writes == 0 {
		t.Fatalf("untextured cube: stats = %+v, writes %d", st, b.Writes)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	r := NewRenderer()
	a := NewBuffer(160, 120)
	b := NewBuffer(160, 120)
	r.Render(a, cubeScene(model.ModeTexturedLit))
	r.Render(b, cubeScene(model.ModeTexturedLit))
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("pixel %d differs between identical frames", i)
		}
	}
}

func TestRenderGizmoAndLight(t *testing.T) {
	sc := cubeScene(model.ModeWireframe)
	r := NewRenderer()
	b := NewBuffer(320, 240)
	r.Render(b, sc)
	ox, oy := 320-gizmoInset-gizmoLength, gizmoInset+gizmoLength
	if !b.Touched(ox, oy) {
		t.Fatalf("gizmo origin not drawn")
	}
	for _, c := range b.Pix {
		if c == lightColor {
			t.Fatalf("light marker drawn for an unlit mode")
		}
	}

	sc.Model(0).Mode = model.ModeFlatLit
	sc.Light.Position = fix.V3(fix.Int(2), 0, 0)
	r.Render(b, sc)
	found := false
	for _, c := range b.Pix {
		if c == lightColor {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("light marker missing")
	}
}

func TestRendererReusesScratch(t *testing.T) {
	r := NewRenderer()
	b := NewBuffer(64, 64)
	sc := cubeScene(model.ModeFlatLit)
	r.Render(b, sc)
	p := &r.points[0]
	o := cap(r.order)
	r.Render(b, sc)
	if &r.points[0] != p || cap(r.order) != o {
		t.Fatalf("scratch buffers reallocated")
	}
}

func TestSceneSlots(t *testing.T) {
	sc := NewScene(2)
	a := model.NewModel("a", nil)
	b := model.NewModel("b", nil)
	if sc.AddModel(a) != 0 || sc.AddModel(b) != 1 {
		t.Fatalf("slots not assigned in order")
	}
	if sc.AddModel(model.NewModel("c", nil)) != -1 {
		t.Fatalf("full scene accepted a model")
	}
	sc.RemoveModel(0)
	if sc.Model(0) != nil || sc.Len() != 1 {
		t.Fatalf("remove failed")
	}
	if id := sc.AddModel(a); id != 0 {
		t.Fatalf("freed slot not reused: %d", id)
	}
	if sc.Model(7) != nil || sc.Cap() != 2 {
		t.Fatalf("bad slot lookup")
	}
}

func TestStyleFor(t *testing.T) {
	if s := StyleFor(model.ModeIndexed); s.Sort || !s.Outline || s.Paint != PaintIndex {
		t.Fatalf("indexed style = %+v", s)
	}
	if s := StyleFor(model.ModeTexturedLit); !s.Texture || !s.Light || !s.Sort {
		t.Fatalf("textured-lit style = %+v", s)
	}
	if s := StyleFor(model.ModePoints); s.Primitive != PrimPoint {
		t.Fatalf("points style = %+v", s)
	}
	if s := StyleFor(model.ModeCount + 3); s.Primitive != PrimWire {
		t.Fatalf("unknown mode style = %+v", s)
	}
}

func TestGradientAndIndexColors(t *testing.T) {
	if c := GradientColor(0, 12); c != RGB(0, 0, 0xCF) {
		t.Fatalf("first gradient = %v", c)
	}
	if c := GradientColor(8, 12); c != RGB(0xCF, 0, 0) {
		t.Fatalf("red gradient = %v", c)
	}
	if c := IndexColor(1); c != RGB(0xFF, 8, 16) {
		t.Fatalf("index 1 = %v", c)
	}
	if c := IndexColor(32); c != RGB(0xFF, 1, 2) {
		t.Fatalf("index 32 = %v", c)
	}
}

func TestFlyController(t *testing.T) {
	fly := DefaultFly()
	cam := Camera{FOV: fix.Int(2)}

	fly.Forward(&cam, 1)
	if cam.Position.Z != fix.One.DivInt(10) || cam.Position.X != 0 {
		t.Fatalf("forward = %v", cam.Position)
	}
	fly.Strafe(&cam, 2)
	if cam.Position.X != fix.One.DivInt(10).MulInt(2) {
		t.Fatalf("strafe = %v", cam.Position)
	}
	fly.Rise(&cam, 1)
	if cam.Position.Y >= 0 {
		t.Fatalf("rise moved down: %v", cam.Position)
	}
	fly.Rotate(&cam, 1, -1)
	if cam.Rotation.X <= 0 || cam.Rotation.Y >= 0 {
		t.Fatalf("rotate = %v", cam.Rotation)
	}
	fly.Zoom(&cam, -5)
	if cam.FOV != fix.One {
		t.Fatalf("zoom below floor = %v", cam.FOV)
	}
}
