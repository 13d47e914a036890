package main

import "testing"

func TestPhongMaterialNoTexturesIsBlack(t *testing.T) {
	m := &PhongMaterial{}
	frag := RasterVertex{
		Normal:     Vec3{0, 0, -1},
		ViewVector: Vec3{0, 0, -1},
		UV:         Vec2{0.5, 0.5},
	}
	got := m.Shade(frag)
	if got.R != 0 || got.G != 0 || got.B != 0 {
		t.Fatalf("expected black with no diffuse map, got %+v", got)
	}
}

func TestPhongMaterialFacingLightIsLit(t *testing.T) {
	m := &PhongMaterial{Diffuse: solidTexture(1, 1, ColorWhite)}
	// Normal pointing straight at the (negated) light direction.
	frag := RasterVertex{
		Normal:     directionalLight.Direction.Negate(),
		ViewVector: Vec3{0, 0, -1},
		UV:         Vec2{0, 0},
	}
	got := m.Shade(frag)
	if got.R <= 0 {
		t.Fatalf("expected lit surface to have positive diffuse contribution, got %+v", got)
	}
}

func TestTransparentMaterialPassesThroughDiffuse(t *testing.T) {
	tex := solidTexture(1, 1, Color{R: 0.3, G: 0.4, B: 0.5, A: 0.25})
	m := &TransparentMaterial{Diffuse: tex}
	got := m.Shade(RasterVertex{UV: Vec2{0, 0}})
	if got.R != 0.3 || got.A != 0.25 {
		t.Fatalf("expected raw diffuse sample passthrough, got %+v", got)
	}
}

func TestMaterialKind(t *testing.T) {
	if (&PhongMaterial{}).Kind() != MaterialOpaque {
		t.Fatal("expected phong material to be opaque")
	}
	if (&TransparentMaterial{}).Kind() != MaterialTransparent {
		t.Fatal("expected transparent material to be transparent")
	}
}
