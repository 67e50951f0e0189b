package gl

import (
	"fixgl/engine/fix"
	"fixgl/engine/model"
)

const (
	pointSize = 5
	lightSize = 9

	gizmoLength = 20
	gizmoInset  = 15
)

var lightColor = RGB(238, 210, 2)

// Stats describes one rendered frame.
type Stats struct {
	Models int
	Faces  int
	Drawn  int
	Culled int // faces skipped for an invalid vertex
}

// Renderer draws scenes into a Sink.
//
// Create it once and reuse it: scratch buffers grow to the largest mesh seen
// and are not reallocated afterwards.
type Renderer struct {
	Background Color
	ShowGizmo  bool
	ShowLight  bool
	Margin     int

	points     []ScreenPoint
	valid      []bool
	depths     []fix.Scalar
	order      []DepthIndex
	live       []*model.Model
	modelOrder []DepthIndex
}

func NewRenderer() *Renderer {
	return &Renderer{
		Background: White,
		ShowGizmo:  true,
		ShowLight:  true,
		Margin:     DefaultMargin,
	}
}

func (r *Renderer) grow(vertices, faces int) {
	if cap(r.points) < vertices {
		Logger().Debug("renderer: grow vertex scratch", "vertices", vertices)
		r.points = make([]ScreenPoint, vertices)
		r.valid = make([]bool, vertices)
		r.depths = make([]fix.Scalar, vertices)
	}
	r.points = r.points[:vertices]
	r.valid = r.valid[:vertices]
	r.depths = r.depths[:vertices]
	if cap(r.order) < faces {
		Logger().Debug("renderer: grow face scratch", "faces", faces)
		r.order = make([]DepthIndex, 0, faces)
	}
}

// Render clears s and draws every model in sc, far models first. It does not
// present.
func (r *Renderer) Render(s Sink, sc *Scene) Stats {
	var st Stats
	if r == nil || s == nil || sc == nil {
		return st
	}
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return st
	}
	s.Clear(r.Background)
	vp := Viewport{Width: w, Height: h, Margin: r.Margin}

	r.live = r.live[:0]
	sc.Each(func(_ int, m *model.Model) { r.live = append(r.live, m) })
	r.modelOrder = OrderModels(sc.Camera, r.live, r.modelOrder)

	lit := false
	for _, mi := range r.modelOrder {
		m := r.live[mi.Index]
		style := StyleFor(m.Mode)
		lit = lit || style.Light
		r.renderModel(s, sc, m, style, vp, &st)
	}

	if r.ShowLight && lit {
		if p, ok := Project(sc.Camera, sc.Light.Position, Identity, vp); ok {
			DrawSquare(s, p.X, p.Y, lightSize, lightColor)
		}
	}
	if r.ShowGizmo {
		r.drawGizmo(s, sc.Camera.Rotation, w)
	}
	return st
}

func (r *Renderer) renderModel(s Sink, sc *Scene, m *model.Model, style Style, vp Viewport, st *Stats) {
	mesh := m.Mesh
	if mesh == nil || len(mesh.Vertices) == 0 {
		return
	}
	st.Models++
	r.grow(len(mesh.Vertices), len(mesh.Faces))

	t := TransformOf(m)
	for i, v := range mesh.Vertices {
		r.points[i], r.valid[i] = Project(sc.Camera, v, t, vp)
		r.depths[i] = r.points[i].Depth
	}

	if style.Primitive == PrimPoint {
		for i, p := range r.points {
			if r.valid[i] {
				DrawSquare(s, p.X, p.Y, pointSize, Black)
			}
		}
		return
	}

	if style.Sort {
		r.order = OrderFaces(mesh.Faces, r.depths, r.order)
	} else {
		r.order = r.order[:0]
		for i := range mesh.Faces {
			r.order = append(r.order, DepthIndex{Index: i})
		}
	}

	paint := style.Paint
	textured := style.Texture && mesh.Textured() && len(mesh.UVFaces) == len(mesh.Faces)
	if paint == PaintTexture && !textured {
		Logger().Debug("renderer: no texture, drawing flat", "model", m.Name)
		paint = PaintIntensity
	}

	st.Faces += len(mesh.Faces)
	nv := uint32(len(mesh.Vertices))
	for k, fd := range r.order {
		f := mesh.Faces[fd.Index]
		if f.First >= nv || f.Second >= nv || f.Third >= nv ||
			!r.valid[f.First] || !r.valid[f.Second] || !r.valid[f.Third] {
			st.Culled++
			continue
		}
		p0, p1, p2 := r.points[f.First], r.points[f.Second], r.points[f.Third]
		st.Drawn++

		if style.Primitive == PrimWire {
			StrokeTriangle(s, p0, p1, p2, Black)
			continue
		}

		light := fix.One
		if style.Light {
			light = FaceIntensity(sc.Light,
				WorldPosition(mesh.Vertices[f.First], t),
				WorldPosition(mesh.Vertices[f.Second], t),
				WorldPosition(mesh.Vertices[f.Third], t))
		}

		switch paint {
		case PaintTexture:
			uf := mesh.UVFaces[fd.Index]
			if nu := uint32(len(mesh.UVs)); uf.First >= nu || uf.Second >= nu || uf.Third >= nu {
				continue
			}
			tex := mesh.Texture
			p0.U, p0.V = tex.TexelCoords(mesh.UVs[uf.First])
			p1.U, p1.V = tex.TexelCoords(mesh.UVs[uf.Second])
			p2.U, p2.V = tex.TexelCoords(mesh.UVs[uf.Third])
			FillTriangle(s, p0, p1, p2, tex, light)
		case PaintIntensity:
			FillTriangleFlat(s, p0, p1, p2, White.Scale(light))
		case PaintGradient:
			FillTriangleFlat(s, p0, p1, p2, GradientColor(k, len(r.order)))
		case PaintIndex:
			FillTriangleFlat(s, p0, p1, p2, IndexColor(fd.Index))
		}
		if style.Outline {
			StrokeTriangle(s, p0, p1, p2, Black)
		}
	}
}

// drawGizmo draws the camera axes in the top right corner: X red, Y green,
// Z blue.
func (r *Renderer) drawGizmo(s Sink, rot fix.Vec2, w int) {
	ox := w - gizmoInset - gizmoLength
	oy := gizmoInset + gizmoLength
	l := fix.Int(gizmoLength)
	axes := [3]struct {
		v fix.Vec3
		c Color
	}{
		{fix.V3(l, 0, 0), RGB(0xFF, 0, 0)},
		{fix.V3(0, l.Neg(), 0), RGB(0, 0xFF, 0)},
		{fix.V3(0, 0, l), RGB(0, 0, 0xFF)},
	}
	for _, a := range axes {
		p := a.v.Rotate(rot)
		DrawLine(s, ox+p.X.Int(), oy+p.Y.Int(), ox, oy, a.c)
	}
}
