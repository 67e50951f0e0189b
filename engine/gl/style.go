package gl

import "fixgl/engine/model"

// Primitive is what gets drawn per face.
type Primitive uint8

const (
	PrimFill Primitive = iota
	PrimWire
	PrimPoint
)

// Paint picks the fill color of a face.
type Paint uint8

const (
	PaintTexture   Paint = iota // texture sample scaled by light
	PaintIntensity              // gray level equal to the light
	PaintGradient               // by position in draw order
	PaintIndex                  // by face index
)

// Style is the pipeline configuration behind a render mode.
type Style struct {
	Texture   bool
	Light     bool
	Sort      bool
	Outline   bool
	Primitive Primitive
	Paint     Paint
}

// StyleFor maps a render mode to its pipeline. Unknown modes draw as
// wireframe.
func StyleFor(m model.RenderMode) Style {
	switch m {
	case model.ModeTexturedLit:
		return Style{Texture: true, Light: true, Sort: true, Paint: PaintTexture}
	case model.ModeTextured:
		return Style{Texture: true, Sort: true, Paint: PaintTexture}
	case model.ModeFlatLit:
		return Style{Light: true, Sort: true, Outline: true, Paint: PaintIntensity}
	case model.ModeGradient:
		return Style{Sort: true, Outline: true, Paint: PaintGradient}
	case model.ModeIndexed:
		return Style{Outline: true, Paint: PaintIndex}
	case model.ModePoints:
		return Style{Primitive: PrimPoint}
	default:
		return Style{Primitive: PrimWire}
	}
}

// GradientColor colors the order-th of n drawn faces: a byte sliding across
// the packed RGB word, masked per channel with 0xCF.
func GradientColor(order, n int) Color {
	if n <= 0 {
		n = 1
	}
	p := uint32(0xFF) << uint(order*24/n)
	return Color{R: uint8(p>>16) & 0xCF, G: uint8(p>>8) & 0xCF, B: uint8(p) & 0xCF}
}

// IndexColor colors a face by its index.
func IndexColor(i int) Color {
	return Color{R: 0xFF, G: uint8((i * 8) % 255), B: uint8((i * 16) % 255)}
}
