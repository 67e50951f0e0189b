package model

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"fixgl/engine/fix"
)

const (
	headerSize        = 16
	textureHeaderSize = 8

	tripleSize = 12
	pairSize   = 8
)

type header struct {
	vertices, faces, uvFaces, uvs uint32
}

func parseHeader(b []byte, order binary.ByteOrder) header {
	return header{
		vertices: order.Uint32(b[0:4]),
		faces:    order.Uint32(b[4:8]),
		uvFaces:  order.Uint32(b[8:12]),
		uvs:      order.Uint32(b[12:16]),
	}
}

func (h header) validate() error {
	if h.vertices > MaxVertices || h.uvs > MaxVertices {
		return fmt.Errorf("%w: %d vertices, %d uvs", ErrTooLarge, h.vertices, h.uvs)
	}
	if h.faces > MaxFaces || h.uvFaces > MaxFaces {
		return fmt.Errorf("%w: %d faces, %d uv faces", ErrTooLarge, h.faces, h.uvFaces)
	}
	if h.uvFaces != 0 && h.uvFaces != h.faces {
		return fmt.Errorf("%w: %d uv faces for %d faces", ErrUVMismatch, h.uvFaces, h.faces)
	}
	return nil
}

func (h header) payloadSize() uint64 {
	return headerSize +
		uint64(h.vertices)*tripleSize +
		uint64(h.faces)*tripleSize +
		uint64(h.uvFaces)*tripleSize +
		uint64(h.uvs)*pairSize
}

// Decode reads a mesh in the binary model format. The returned mesh carries
// no texture; index ranges are checked.
func Decode(r io.Reader, order binary.ByteOrder) (*Mesh, error) {
	var hb [headerSize]byte
	if _, err := io.ReadFull(r, hb[:]); err != nil {
		return nil, fmt.Errorf("model decode: header: %w", shortErr(err))
	}
	h := parseHeader(hb[:], order)
	if err := h.validate(); err != nil {
		return nil, fmt.Errorf("model decode: %w", err)
	}

	m := &Mesh{}
	var err error
	if m.Vertices, err = readVec3s(r, order, int(h.vertices)); err != nil {
		return nil, fmt.Errorf("model decode: vertices: %w", err)
	}
	if m.Faces, err = readFaces(r, order, int(h.faces)); err != nil {
		return nil, fmt.Errorf("model decode: faces: %w", err)
	}
	if m.UVFaces, err = readFaces(r, order, int(h.uvFaces)); err != nil {
		return nil, fmt.Errorf("model decode: uv faces: %w", err)
	}
	if m.UVs, err = readVec2s(r, order, int(h.uvs)); err != nil {
		return nil, fmt.Errorf("model decode: uvs: %w", err)
	}
	if err := m.checkGeometry(); err != nil {
		return nil, fmt.Errorf("model decode: %w", err)
	}
	return m, nil
}

// DecodeBytes decodes a whole model file, picking the byte order whose header
// predicts exactly len(b) bytes. Little endian is tried first.
func DecodeBytes(b []byte) (*Mesh, binary.ByteOrder, error) {
	if len(b) < headerSize {
		return nil, nil, fmt.Errorf("model decode: %w: %d bytes", ErrShortData, len(b))
	}
	for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
		h := parseHeader(b, order)
		if h.validate() != nil || h.payloadSize() != uint64(len(b)) {
			continue
		}
		m, err := Decode(bytes.NewReader(b), order)
		return m, order, err
	}
	return nil, nil, fmt.Errorf("model decode: %w: %d bytes fit neither byte order", ErrShortData, len(b))
}

// Encode writes m in the binary model format.
func Encode(w io.Writer, order binary.ByteOrder, m *Mesh) error {
	if m == nil {
		return fmt.Errorf("model encode: nil mesh")
	}
	if err := m.checkGeometry(); err != nil {
		return fmt.Errorf("model encode: %w", err)
	}

	e := encoder{order: order, buf: make([]byte, 0, headerSize+
		len(m.Vertices)*tripleSize+len(m.Faces)*tripleSize+
		len(m.UVFaces)*tripleSize+len(m.UVs)*pairSize)}
	e.u32(uint32(len(m.Vertices)))
	e.u32(uint32(len(m.Faces)))
	e.u32(uint32(len(m.UVFaces)))
	e.u32(uint32(len(m.UVs)))
	for _, v := range m.Vertices {
		e.scalar(v.X)
		e.scalar(v.Y)
		e.scalar(v.Z)
	}
	e.faces(m.Faces)
	e.faces(m.UVFaces)
	for _, uv := range m.UVs {
		e.scalar(uv.X)
		e.scalar(uv.Y)
	}

	if _, err := w.Write(e.buf); err != nil {
		return fmt.Errorf("model encode: %w", err)
	}
	return nil
}

type encoder struct {
	order binary.ByteOrder
	buf   []byte
}

func (e *encoder) u32(v uint32) {
	var b [4]byte
	e.order.PutUint32(b[:], v)
	e.buf = append(e.buf, b[:]...)
}

func (e *encoder) scalar(s fix.Scalar) { e.u32(uint32(s.Raw())) }

func (e *encoder) faces(faces []Face) {
	for _, f := range faces {
		e.u32(f.First)
		e.u32(f.Second)
		e.u32(f.Third)
	}
}

func readSection(r io.Reader, n, size int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	b := make([]byte, n*size)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, shortErr(err)
	}
	return b, nil
}

func readVec3s(r io.Reader, order binary.ByteOrder, n int) ([]fix.Vec3, error) {
	b, err := readSection(r, n, tripleSize)
	if err != nil || n == 0 {
		return nil, err
	}
	out := make([]fix.Vec3, n)
	for i := range out {
		p := b[i*tripleSize:]
		out[i] = fix.V3(
			fix.Raw(int32(order.Uint32(p[0:4]))),
			fix.Raw(int32(order.Uint32(p[4:8]))),
			fix.Raw(int32(order.Uint32(p[8:12]))),
		)
	}
	return out, nil
}

func readVec2s(r io.Reader, order binary.ByteOrder, n int) ([]fix.Vec2, error) {
	b, err := readSection(r, n, pairSize)
	if err != nil || n == 0 {
		return nil, err
	}
	out := make([]fix.Vec2, n)
	for i := range out {
		p := b[i*pairSize:]
		out[i] = fix.V2(
			fix.Raw(int32(order.Uint32(p[0:4]))),
			fix.Raw(int32(order.Uint32(p[4:8]))),
		)
	}
	return out, nil
}

func readFaces(r io.Reader, order binary.ByteOrder, n int) ([]Face, error) {
	b, err := readSection(r, n, tripleSize)
	if err != nil || n == 0 {
		return nil, err
	}
	out := make([]Face, n)
	for i := range out {
		p := b[i*tripleSize:]
		out[i] = Face{
			First:  order.Uint32(p[0:4]),
			Second: order.Uint32(p[4:8]),
			Third:  order.Uint32(p[8:12]),
		}
	}
	return out, nil
}

func shortErr(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrShortData
	}
	return err
}

// DecodeTexture reads a texture: width and height, then width*height texels.
func DecodeTexture(r io.Reader, order binary.ByteOrder) (*Texture, error) {
	var hb [textureHeaderSize]byte
	if _, err := io.ReadFull(r, hb[:]); err != nil {
		return nil, fmt.Errorf("texture decode: header: %w", shortErr(err))
	}
	w, h := order.Uint32(hb[0:4]), order.Uint32(hb[4:8])
	n := uint64(w) * uint64(h)
	if n > MaxTexels {
		return nil, fmt.Errorf("texture decode: %w: %dx%d", ErrTooLarge, w, h)
	}
	b, err := readSection(r, int(n), 4)
	if err != nil {
		return nil, fmt.Errorf("texture decode: texels: %w", err)
	}
	t := &Texture{Width: int(w), Height: int(h), Texels: make([]uint32, n)}
	for i := range t.Texels {
		t.Texels[i] = order.Uint32(b[i*4:])
	}
	return t, nil
}

// DecodeTextureBytes decodes a whole texture file, detecting the byte order
// the same way DecodeBytes does.
func DecodeTextureBytes(b []byte) (*Texture, binary.ByteOrder, error) {
	if len(b) < textureHeaderSize {
		return nil, nil, fmt.Errorf("texture decode: %w: %d bytes", ErrShortData, len(b))
	}
	for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
		n := uint64(order.Uint32(b[0:4])) * uint64(order.Uint32(b[4:8]))
		if n > MaxTexels || textureHeaderSize+n*4 != uint64(len(b)) {
			continue
		}
		t, err := DecodeTexture(bytes.NewReader(b), order)
		return t, order, err
	}
	return nil, nil, fmt.Errorf("texture decode: %w: %d bytes fit neither byte order", ErrShortData, len(b))
}

// EncodeTexture writes t in the texture format.
func EncodeTexture(w io.Writer, order binary.ByteOrder, t *Texture) error {
	if t.Empty() {
		return fmt.Errorf("texture encode: empty texture")
	}
	n := t.Width * t.Height
	e := encoder{order: order, buf: make([]byte, 0, textureHeaderSize+n*4)}
	e.u32(uint32(t.Width))
	e.u32(uint32(t.Height))
	for _, c := range t.Texels[:n] {
		e.u32(c)
	}
	if _, err := w.Write(e.buf); err != nil {
		return fmt.Errorf("texture encode: %w", err)
	}
	return nil
}
