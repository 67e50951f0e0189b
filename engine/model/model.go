// Package model holds meshes, textures and model instances, and the binary
// formats they are stored in.
package model

import (
	"errors"
	"fmt"

	"fixgl/engine/fix"
)

var (
	ErrShortData  = errors.New("model: short data")
	ErrIndexRange = errors.New("model: index out of range")
	ErrUVMismatch = errors.New("model: uv faces do not match faces")
	ErrTooLarge   = errors.New("model: too large")
	ErrNoTexture  = errors.New("model: uv faces without texture")
)

const (
	// MaxVertices and MaxFaces bound every count read from a file before
	// anything is allocated. They also bound UV coordinates and UV faces.
	MaxVertices = 1 << 20
	MaxFaces    = 1 << 20

	// MaxTexels bounds width*height of a decoded texture.
	MaxTexels = 1 << 22
)

// Face is a triangle given as three indices.
type Face struct {
	First, Second, Third uint32
}

func (f Face) inRange(n int) bool {
	u := uint64(n)
	return uint64(f.First) < u && uint64(f.Second) < u && uint64(f.Third) < u
}

// Mesh is immutable after load. UVFaces, when present, run parallel to Faces
// and index into UVs.
type Mesh struct {
	Vertices []fix.Vec3
	Faces    []Face
	UVs      []fix.Vec2
	UVFaces  []Face
	Texture  *Texture
}

// Textured reports whether faces can be texture mapped.
func (m *Mesh) Textured() bool {
	return m != nil && len(m.UVFaces) > 0 && !m.Texture.Empty()
}

// Validate checks that every index is in range and that textured meshes are
// complete.
func (m *Mesh) Validate() error {
	if err := m.checkGeometry(); err != nil {
		return err
	}
	if len(m.UVFaces) > 0 && m.Texture.Empty() {
		return ErrNoTexture
	}
	return nil
}

// checkGeometry is Validate without the texture requirement; files carry UV
// data but the texture arrives separately.
func (m *Mesh) checkGeometry() error {
	if len(m.Vertices) > MaxVertices || len(m.UVs) > MaxVertices {
		return fmt.Errorf("%w: %d vertices", ErrTooLarge, len(m.Vertices))
	}
	if len(m.Faces) > MaxFaces {
		return fmt.Errorf("%w: %d faces", ErrTooLarge, len(m.Faces))
	}
	for i, f := range m.Faces {
		if !f.inRange(len(m.Vertices)) {
			return fmt.Errorf("face %d %v: %w", i, f, ErrIndexRange)
		}
	}
	if len(m.UVFaces) == 0 {
		return nil
	}
	if len(m.UVFaces) != len(m.Faces) {
		return fmt.Errorf("%w: %d uv faces for %d faces", ErrUVMismatch, len(m.UVFaces), len(m.Faces))
	}
	for i, f := range m.UVFaces {
		if !f.inRange(len(m.UVs)) {
			return fmt.Errorf("uv face %d %v: %w", i, f, ErrIndexRange)
		}
	}
	return nil
}

// Texture is a row-major buffer of 0x00RRGGBB texels.
type Texture struct {
	Width, Height int
	Texels        []uint32
}

func (t *Texture) Empty() bool {
	return t == nil || t.Width <= 0 || t.Height <= 0 || len(t.Texels) < t.Width*t.Height
}

// At returns the texel at (x, y). Coordinates outside the texture report false.
func (t *Texture) At(x, y int) (uint32, bool) {
	if t == nil || x < 0 || y < 0 || x >= t.Width || y >= t.Height {
		return 0, false
	}
	i := y*t.Width + x
	if i >= len(t.Texels) {
		return 0, false
	}
	return t.Texels[i], true
}

// TexelCoords maps a normalized UV to texel coordinates, uv*size rounded
// down. A coordinate landing exactly on the far edge is pulled onto the last
// row or column; anything further out stays out of range.
func (t *Texture) TexelCoords(uv fix.Vec2) (x, y int) {
	if t == nil {
		return 0, 0
	}
	return texelAxis(uv.X, t.Width), texelAxis(uv.Y, t.Height)
}

func texelAxis(s fix.Scalar, size int) int {
	c := int((int64(s) * int64(size)) >> 16)
	if c == size && size > 0 {
		c = size - 1
	}
	return c
}

// Model is one placed instance of a mesh. The mesh is owned exclusively.
type Model struct {
	Name     string
	Mesh     *Mesh
	Position fix.Vec3
	Rotation fix.Vec2
	Scale    fix.Vec3
	Mode     RenderMode
}

// NewModel places m at the origin with unit scale.
func NewModel(name string, m *Mesh) *Model {
	return &Model{
		Name:  name,
		Mesh:  m,
		Scale: fix.V3(fix.One, fix.One, fix.One),
	}
}
