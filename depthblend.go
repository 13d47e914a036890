package main

import "math"

// DepthBuffer is a row-major array of per-pixel depth values. Invariant:
// before each frame every entry holds +Inf, per spec §3.
type DepthBuffer struct {
	Width, Height int
	Values        []float64
}

func NewDepthBuffer(width, height int) *DepthBuffer {
	d := &DepthBuffer{Width: width, Height: height, Values: make([]float64, width*height)}
	d.Clear()
	return d
}

func (d *DepthBuffer) Clear() {
	for i := range d.Values {
		d.Values[i] = depthInfinity
	}
}

func (d *DepthBuffer) at(x, y int) int { return y*d.Width + x }

// Test reports whether z passes the depth test at (x,y): z < current value.
func (d *DepthBuffer) Test(x, y int, z float64) bool {
	return z < d.Values[d.at(x, y)]
}

func (d *DepthBuffer) Write(x, y int, z float64) {
	d.Values[d.at(x, y)] = z
}

var depthInfinity = math.Inf(1)

// Framebuffer is a row-major array of packed ARGB32 pixels, per spec §3.
type Framebuffer struct {
	Width, Height int
	Pixels        []uint32
}

func NewFramebuffer(width, height int) *Framebuffer {
	f := &Framebuffer{Width: width, Height: height, Pixels: make([]uint32, width*height)}
	f.Clear()
	return f
}

func (f *Framebuffer) Clear() {
	for i := range f.Pixels {
		f.Pixels[i] = clearColorARGB
	}
}

func (f *Framebuffer) at(x, y int) int { return y*f.Width + x }

func (f *Framebuffer) Get(x, y int) Color {
	return UnpackARGB32(f.Pixels[f.at(x, y)])
}

func (f *Framebuffer) Set(x, y int, c Color) {
	f.Pixels[f.at(x, y)] = c.PackARGB32()
}

// WritePixel applies spec §4.7's blend-and-write-back rule for one
// depth-passing, covered pixel. When the material is transparent and
// transparency is enabled, the source blends against the current
// framebuffer pixel (source-over) and the depth buffer is left untouched;
// otherwise the depth buffer is updated and the source color is written
// directly.
func WritePixel(fb *Framebuffer, db *DepthBuffer, x, y int, z float64, src Color, kind MaterialKind, transparencyEnabled bool) {
	if kind == MaterialTransparent && transparencyEnabled {
		fb.Set(x, y, src.Blend(fb.Get(x, y)))
		return
	}
	db.Write(x, y, z)
	fb.Set(x, y, src)
}
