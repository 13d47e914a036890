package main

import (
	"fmt"
	"image"
)

// Texture is a row-major RGBA8 image decoded to linear float Color, sampled
// with clamped nearest-neighbor filtering in UV space, per spec §2/§4.2.
// Grounded on the original Texture::Sample, which clamps the pixel index to
// the image bounds rather than wrapping or mirroring.
type Texture struct {
	Width  int
	Height int
	Pixels []Color
}

// DecodeTexture converts a decoded Go image into a Texture, unpacking each
// pixel to linear float RGBA.
func DecodeTexture(img image.Image) *Texture {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	tex := &Texture{Width: width, Height: height, Pixels: make([]Color, width*height)}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			tex.Pixels[y*width+x] = Color{
				R: float64(r) / 65535,
				G: float64(g) / 65535,
				B: float64(b) / 65535,
				A: float64(a) / 65535,
			}
		}
	}
	return tex
}

// Sample performs clamped nearest-neighbor sampling at UV coordinates.
// u/v outside [0,1] are clamped to the edge texel rather than wrapped,
// matching the original's clamped address mode.
func (t *Texture) Sample(u, v float64) Color {
	if t == nil || len(t.Pixels) == 0 {
		return ColorWhite
	}

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))

	if x < 0 {
		x = 0
	}
	if x >= t.Width {
		x = t.Width - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= t.Height {
		y = t.Height - 1
	}

	return t.Pixels[y*t.Width+x]
}

func (t *Texture) String() string {
	return fmt.Sprintf("Texture(%dx%d)", t.Width, t.Height)
}
