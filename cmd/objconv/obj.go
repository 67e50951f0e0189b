package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"fixgl/engine/fix"
	"fixgl/engine/model"
)

var (
	errNoFaces   = errors.New("obj: no faces")
	errBadIndex  = errors.New("obj: bad index")
	errBadNumber = errors.New("obj: bad number")
)

type objOptions struct {
	Scale float64
	FlipV bool // OBJ puts v=0 at the bottom; textures store the top row first
}

// parseOBJ reads v, vt and f records. Polygons are split into triangle fans.
// UV faces are kept only when every face carries texture indices.
func parseOBJ(r io.Reader, opt objOptions) (*model.Mesh, error) {
	if opt.Scale == 0 {
		opt.Scale = 1
	}
	m := &model.Mesh{}
	uvComplete := true

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		var err error
		switch fields[0] {
		case "v":
			var v fix.Vec3
			v, err = parseVertex(fields[1:], opt.Scale)
			m.Vertices = append(m.Vertices, v)
		case "vt":
			var uv fix.Vec2
			uv, err = parseUV(fields[1:], opt.FlipV)
			m.UVs = append(m.UVs, uv)
		case "f":
			var hasUV bool
			hasUV, err = parseFace(m, fields[1:])
			uvComplete = uvComplete && hasUV
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(m.Faces) == 0 {
		return nil, errNoFaces
	}
	if !uvComplete || len(m.UVs) == 0 {
		m.UVs, m.UVFaces = nil, nil
	}
	return m, nil
}

func parseNumber(s string, scale float64) (fix.Scalar, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errBadNumber, s)
	}
	f *= scale
	if math.IsNaN(f) || math.Abs(f) >= 32768 {
		return 0, fmt.Errorf("%w: %q", fix.ErrRange, s)
	}
	return fix.Float(f), nil
}

func parseVertex(f []string, scale float64) (fix.Vec3, error) {
	if len(f) < 3 {
		return fix.Vec3{}, fmt.Errorf("%w: vertex needs 3 coordinates", errBadNumber)
	}
	var c [3]fix.Scalar
	for i := range c {
		s, err := parseNumber(f[i], scale)
		if err != nil {
			return fix.Vec3{}, err
		}
		c[i] = s
	}
	return fix.V3(c[0], c[1], c[2]), nil
}

func parseUV(f []string, flip bool) (fix.Vec2, error) {
	if len(f) < 2 {
		return fix.Vec2{}, fmt.Errorf("%w: texture coordinate needs u and v", errBadNumber)
	}
	u, err := parseNumber(f[0], 1)
	if err != nil {
		return fix.Vec2{}, err
	}
	v, err := parseNumber(f[1], 1)
	if err != nil {
		return fix.Vec2{}, err
	}
	if flip {
		v = fix.One.Sub(v)
	}
	return fix.V2(u, v), nil
}

// parseFace appends the fan triangles of one f record and reports whether
// every corner had a texture index.
func parseFace(m *model.Mesh, f []string) (bool, error) {
	if len(f) < 3 {
		return false, fmt.Errorf("%w: face needs 3 corners", errBadIndex)
	}
	vs := make([]uint32, len(f))
	ts := make([]uint32, len(f))
	hasUV := true
	for i, corner := range f {
		parts := strings.Split(corner, "/")
		v, err := resolveIndex(parts[0], len(m.Vertices))
		if err != nil {
			return false, err
		}
		vs[i] = v
		if len(parts) < 2 || parts[1] == "" {
			hasUV = false
			continue
		}
		t, err := resolveIndex(parts[1], len(m.UVs))
		if err != nil {
			return false, err
		}
		ts[i] = t
	}
	for i := 1; i+1 < len(f); i++ {
		m.Faces = append(m.Faces, model.Face{First: vs[0], Second: vs[i], Third: vs[i+1]})
		m.UVFaces = append(m.UVFaces, model.Face{First: ts[0], Second: ts[i], Third: ts[i+1]})
	}
	return hasUV, nil
}

// resolveIndex turns a 1-based or negative (relative) OBJ index into a
// 0-based one.
func resolveIndex(s string, n int) (uint32, error) {
	i, err := strconv.Atoi(s)
	if err != nil || i == 0 {
		return 0, fmt.Errorf("%w: %q", errBadIndex, s)
	}
	if i < 0 {
		i += n
	} else {
		i--
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("%w: %s of %d", errBadIndex, s, n)
	}
	return uint32(i), nil
}
