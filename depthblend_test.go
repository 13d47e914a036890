package main

import (
	"math"
	"testing"
)

func TestDepthBufferClearIsInfinity(t *testing.T) {
	d := NewDepthBuffer(4, 4)
	for _, v := range d.Values {
		if !math.IsInf(v, 1) {
			t.Fatalf("expected +Inf sentinel, got %v", v)
		}
	}
}

func TestDepthBufferTestPassesOnLesser(t *testing.T) {
	d := NewDepthBuffer(2, 2)
	if !d.Test(0, 0, 0.3) {
		t.Fatal("expected 0.3 < +Inf to pass")
	}
	d.Write(0, 0, 0.3)
	if d.Test(0, 0, 0.5) {
		t.Fatal("expected 0.5 < 0.3 to fail")
	}
	if !d.Test(0, 0, 0.1) {
		t.Fatal("expected 0.1 < 0.3 to pass")
	}
}

func TestFramebufferClearIsClearColor(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	for _, p := range fb.Pixels {
		if p != clearColorARGB {
			t.Fatalf("expected clear color, got %#x", p)
		}
	}
}

func TestWritePixelOpaqueUpdatesDepthAndColor(t *testing.T) {
	fb := NewFramebuffer(1, 1)
	db := NewDepthBuffer(1, 1)
	WritePixel(fb, db, 0, 0, 0.4, Color{R: 1, A: 1}, MaterialOpaque, false)
	if db.Values[0] != 0.4 {
		t.Fatalf("expected depth write, got %v", db.Values[0])
	}
	if fb.Get(0, 0).R != 1 {
		t.Fatalf("expected opaque color written, got %+v", fb.Get(0, 0))
	}
}

func TestWritePixelTransparentBlendsAndSkipsDepth(t *testing.T) {
	fb := NewFramebuffer(1, 1)
	db := NewDepthBuffer(1, 1)
	db.Write(0, 0, 0.2)
	src := Color{R: 1, G: 0, B: 0, A: 0.5}
	WritePixel(fb, db, 0, 0, 0.4, src, MaterialTransparent, true)
	if db.Values[0] != 0.2 {
		t.Fatal("expected transparent write to leave depth buffer untouched")
	}
	// The destination is the 0x60 clear color: 1*0.5 + (0x60/255)*0.5
	// packs to the 8-bit value 176.
	got := fb.Get(0, 0)
	if want := 176.0 / 255; math.Abs(got.R-want) > 1e-6 {
		t.Fatalf("expected blended red channel %v, got %v", want, got.R)
	}
}

func TestWritePixelTransparencyDisabledWritesDirectly(t *testing.T) {
	fb := NewFramebuffer(1, 1)
	db := NewDepthBuffer(1, 1)
	src := Color{R: 1, G: 0, B: 0, A: 0.5}
	WritePixel(fb, db, 0, 0, 0.4, src, MaterialTransparent, false)
	if db.Values[0] != 0.4 {
		t.Fatal("expected depth write when transparency is disabled")
	}
}
