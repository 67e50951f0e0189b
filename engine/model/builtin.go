package model

import "fixgl/engine/fix"

// Cube returns a textured cube with the given half extent. Every quad face maps
// the full texture.
func Cube(half fix.Scalar) *Mesh {
	n := half.Neg()
	m := &Mesh{
		Vertices: []fix.Vec3{
			{X: n, Y: n, Z: n}, {X: half, Y: n, Z: n}, {X: half, Y: half, Z: n}, {X: n, Y: half, Z: n},
			{X: n, Y: n, Z: half}, {X: half, Y: n, Z: half}, {X: half, Y: half, Z: half}, {X: n, Y: half, Z: half},
		},
		UVs: []fix.Vec2{
			{X: 0, Y: 0}, {X: fix.One, Y: 0}, {X: fix.One, Y: fix.One}, {X: 0, Y: fix.One},
		},
	}
	quads := [6][4]uint32{
		{0, 1, 2, 3}, // back
		{5, 4, 7, 6}, // front
		{4, 0, 3, 7}, // left
		{1, 5, 6, 2}, // right
		{4, 5, 1, 0}, // bottom
		{3, 2, 6, 7}, // top
	}
	for _, q := range quads {
		m.Faces = append(m.Faces, Face{q[0], q[1], q[2]}, Face{q[0], q[2], q[3]})
		m.UVFaces = append(m.UVFaces, Face{0, 1, 2}, Face{0, 2, 3})
	}
	return m
}

// Torus returns a ring around the Y axis. UVs wrap once in each direction and
// use their own index space so the seams get both 0 and 1.
func Torus(major, minor fix.Scalar, segU, segV int) *Mesh {
	if segU < 3 {
		segU = 3
	}
	if segV < 3 {
		segV = 3
	}

	m := &Mesh{
		Vertices: make([]fix.Vec3, 0, segU*segV),
		Faces:    make([]Face, 0, segU*segV*2),
		UVs:      make([]fix.Vec2, 0, (segU+1)*(segV+1)),
		UVFaces:  make([]Face, 0, segU*segV*2),
	}
	for u := 0; u < segU; u++ {
		theta := fix.TwoPi.MulInt(u).DivInt(segU)
		ct, st := theta.Cos(), theta.Sin()
		for v := 0; v < segV; v++ {
			phi := fix.TwoPi.MulInt(v).DivInt(segV)
			r := major.Add(minor.Mul(phi.Cos()))
			m.Vertices = append(m.Vertices, fix.V3(r.Mul(ct), minor.Mul(phi.Sin()), r.Mul(st)))
		}
	}
	for u := 0; u <= segU; u++ {
		for v := 0; v <= segV; v++ {
			m.UVs = append(m.UVs, fix.V2(fix.One.MulInt(u).DivInt(segU), fix.One.MulInt(v).DivInt(segV)))
		}
	}

	idx := func(u, v int) uint32 { return uint32((u%segU)*segV + v%segV) }
	uvIdx := func(u, v int) uint32 { return uint32(u*(segV+1) + v) }
	for u := 0; u < segU; u++ {
		for v := 0; v < segV; v++ {
			m.Faces = append(m.Faces,
				Face{idx(u, v), idx(u+1, v), idx(u+1, v+1)},
				Face{idx(u, v), idx(u+1, v+1), idx(u, v+1)},
			)
			m.UVFaces = append(m.UVFaces,
				Face{uvIdx(u, v), uvIdx(u+1, v), uvIdx(u+1, v+1)},
				Face{uvIdx(u, v), uvIdx(u+1, v+1), uvIdx(u, v+1)},
			)
		}
	}
	return m
}

// Checker returns a size x size texture of cells x cells squares alternating
// between a and b.
func Checker(size, cells int, a, b uint32) *Texture {
	if size < 1 {
		size = 1
	}
	if cells < 1 {
		cells = 1
	}
	t := &Texture{Width: size, Height: size, Texels: make([]uint32, size*size)}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x*cells/size+y*cells/size)%2 == 1 {
				c = b
			}
			t.Texels[y*size+x] = c
		}
	}
	return t
}
