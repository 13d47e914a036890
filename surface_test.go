package main

import "testing"

func TestMemorySurfaceLockReturnsBackingBuffer(t *testing.T) {
	s := NewMemorySurface(4, 3)
	buf := s.Lock()
	buf[0] = 0xff0000ff
	s.Unlock()

	buf2 := s.Lock()
	defer s.Unlock()
	if buf2[0] != 0xff0000ff {
		t.Fatalf("expected mutation through Lock to persist, got %#x", buf2[0])
	}
	if len(buf2) != 12 {
		t.Fatalf("expected width*height pixels, got %d", len(buf2))
	}
}

func TestBlitFramebufferCopiesPixels(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Set(0, 0, Color{R: 1, A: 1})

	s := NewMemorySurface(2, 2)
	BlitFramebuffer(s, fb)

	pixels := s.Lock()
	defer s.Unlock()
	if pixels[0] != fb.Pixels[0] {
		t.Fatalf("expected blitted pixel to match framebuffer, got %#x want %#x", pixels[0], fb.Pixels[0])
	}
}
