package main

import "testing"

func solidTexture(w, h int, c Color) *Texture {
	pixels := make([]Color, w*h)
	for i := range pixels {
		pixels[i] = c
	}
	return &Texture{Width: w, Height: h, Pixels: pixels}
}

func TestTextureSampleInBounds(t *testing.T) {
	tex := solidTexture(2, 2, ColorWhite)
	tex.Pixels[0] = Color{R: 1, G: 0, B: 0, A: 1}
	tex.Pixels[1] = Color{R: 0, G: 1, B: 0, A: 1}
	tex.Pixels[2] = Color{R: 0, G: 0, B: 1, A: 1}
	tex.Pixels[3] = Color{R: 1, G: 1, B: 0, A: 1}

	got := tex.Sample(0.1, 0.1)
	if got.R != 1 || got.G != 0 {
		t.Fatalf("expected top-left texel, got %+v", got)
	}
}

func TestTextureSampleClampsOutOfRange(t *testing.T) {
	tex := solidTexture(4, 4, ColorWhite)
	tex.Pixels[15] = Color{R: 0.2, G: 0.4, B: 0.6, A: 1}

	got := tex.Sample(1.5, 1.5)
	if got.R != 0.2 || got.G != 0.4 || got.B != 0.6 {
		t.Fatalf("expected clamped bottom-right texel, got %+v", got)
	}

	got = tex.Sample(-1, -1)
	if got.R != tex.Pixels[0].R {
		t.Fatalf("expected clamped top-left texel for negative uv, got %+v", got)
	}
}

func TestTextureSampleNilIsWhite(t *testing.T) {
	var tex *Texture
	got := tex.Sample(0.5, 0.5)
	if got != ColorWhite {
		t.Fatalf("expected white for nil texture, got %+v", got)
	}
}
