package main

// Color is a linear RGBA color with components typically in [0,1], used
// throughout shading and blending. Unlike the teacher's uint8 RGB triple
// (color.go), this needs an alpha channel for transparency blending and
// stays in float form until the final pack to the wire format.
type Color struct {
	R, G, B, A float64
}

var (
	ColorBlack = Color{0, 0, 0, 1}
	ColorWhite = Color{1, 1, 1, 1}
)

func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B, c.A + o.A}
}

func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s, c.A}
}

func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B, c.A * o.A}
}

// MaxToOne clamps each channel to [0,1], matching the original's
// RGBColor::MaxToOne applied right before packing to the framebuffer.
func (c Color) MaxToOne() Color {
	return Color{Clamp(c.R, 0, 1), Clamp(c.G, 0, 1), Clamp(c.B, 0, 1), Clamp(c.A, 0, 1)}
}

// Blend performs source-over alpha blending of src atop dst, per spec §4.7:
// blended = src*src.a + dst*(1-src.a). Alpha of the result is left at 1
// since the destination is an opaque framebuffer.
func (src Color) Blend(dst Color) Color {
	return Color{
		R: src.R*src.A + dst.R*(1-src.A),
		G: src.G*src.A + dst.G*(1-src.A),
		B: src.B*src.A + dst.B*(1-src.A),
		A: 1,
	}
}

// PackARGB32 packs a color into the 32-bit ARGB pixel layout spec §3/§6
// describes: 8 bits per channel, alpha in the high byte. This matches the
// 0xAARRGGBB integer the original packs into its SDL back buffer.
func (c Color) PackARGB32() uint32 {
	clamped := c.MaxToOne()
	a := uint32(clamped.A*255 + 0.5)
	r := uint32(clamped.R*255 + 0.5)
	g := uint32(clamped.G*255 + 0.5)
	b := uint32(clamped.B*255 + 0.5)
	return a<<24 | r<<16 | g<<8 | b
}

// UnpackARGB32 decodes a wire-format pixel back to linear float RGBA (alpha
// taken from the high byte), used to read back the current framebuffer pixel for
// transparency blending, per spec §4.7 / §6 "decoded back to float RGB".
func UnpackARGB32(pixel uint32) Color {
	a := float64((pixel>>24)&0xFF) / 255
	r := float64((pixel>>16)&0xFF) / 255
	g := float64((pixel>>8)&0xFF) / 255
	b := float64(pixel&0xFF) / 255
	return Color{R: r, G: g, B: b, A: a}
}

// clearColorARGB is the fixed clear color spec §4.9/§8 names, 0x606060 gray.
const clearColorARGB uint32 = 0xFF606060
