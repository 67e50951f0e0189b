package gl

import "fixgl/engine/fix"

// Color is an 8-bit RGB color.
type Color struct {
	R, G, B uint8
}

func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

var (
	Black = RGB(0, 0, 0)
	White = RGB(0xFF, 0xFF, 0xFF)
)

// Pack returns c as 0x00RRGGBB.
func (c Color) Pack() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Unpack reads a 0x00RRGGBB texel. The top byte is ignored.
func Unpack(p uint32) Color {
	return Color{R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p)}
}

// Scale multiplies each channel by a Q16.16 intensity, truncating, and
// saturates the result to [0, 255].
func (c Color) Scale(intensity fix.Scalar) Color {
	return Color{
		R: scaleChannel(c.R, intensity),
		G: scaleChannel(c.G, intensity),
		B: scaleChannel(c.B, intensity),
	}
}

func scaleChannel(ch uint8, intensity fix.Scalar) uint8 {
	v := int64(ch) * int64(intensity)
	if v <= 0 {
		return 0
	}
	v >>= 16
	if v > 0xFF {
		return 0xFF
	}
	return uint8(v)
}

// RGB565 packs c for 16-bit framebuffers.
func (c Color) RGB565() uint16 {
	return uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
}
