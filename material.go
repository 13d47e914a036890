package main

import "math"

// MaterialKind tags the two shading variants the pipeline supports, per
// spec §9. Grounded on the original MaterialType enum (OPAQUE_MATERIAL,
// TRANSPARENT_MATERIAL), which in turn selects blend/depth-write state.
type MaterialKind int

const (
	MaterialOpaque MaterialKind = iota
	MaterialTransparent
)

// Material shades a single interpolated fragment. Opaque and transparent
// materials both implement it; Kind tells the raster stage which depth/blend
// path to take (§4.7).
type Material interface {
	Kind() MaterialKind
	Shade(frag RasterVertex) Color
}

// directionalLight is the pipeline's single fixed light source, per spec
// §4.6. Grounded on the original DirectionalLight literal constructed
// in NormPhongEffect::PixelShading.
var directionalLight = struct {
	Color     Color
	Direction Vec3
	Intensity float64
}{
	Color:     Color{R: 1, G: 1, B: 1, A: 1},
	Direction: Vec3{X: .577, Y: -.577, Z: -.577},
	Intensity: 5.0,
}

const phongShininess = 25.0

// PhongMaterial is the opaque shading path: diffuse plus Phong specular,
// with optional tangent-space normal mapping, specular and gloss maps.
// Grounded on NormPhongEffect::PixelShading.
type PhongMaterial struct {
	Diffuse  *Texture
	Normal   *Texture
	Specular *Texture
	Gloss    *Texture
}

func (m *PhongMaterial) Kind() MaterialKind { return MaterialOpaque }

func (m *PhongMaterial) Shade(frag RasterVertex) Color {
	normal := frag.Normal

	if m.Normal != nil {
		binormal := Cross3(frag.Tangent, frag.Normal)
		sample := m.Normal.Sample(frag.UV.X, frag.UV.Y)
		tangentSpace := Vec3{
			X: 2*sample.R - 1,
			Y: 2*sample.G - 1,
			Z: 2*sample.B - 1,
		}
		normal = Vec3{
			X: frag.Tangent.X*tangentSpace.X + binormal.X*tangentSpace.Y + frag.Normal.X*tangentSpace.Z,
			Y: frag.Tangent.Y*tangentSpace.X + binormal.Y*tangentSpace.Y + frag.Normal.Y*tangentSpace.Z,
			Z: frag.Tangent.Z*tangentSpace.X + binormal.Z*tangentSpace.Y + frag.Normal.Z*tangentSpace.Z,
		}.Normalize()
	}

	nDotL := Dot3(normal.Negate(), directionalLight.Direction)
	clampedNDotL := Clamp(nDotL, 0, 1)

	diffuseStrength := clampedNDotL * directionalLight.Intensity / math.Pi
	diffuse := ColorBlack
	if m.Diffuse != nil {
		diffuse = m.Diffuse.Sample(frag.UV.X, frag.UV.Y)
	}
	diffuse = diffuse.Scale(diffuseStrength)

	specular := ColorBlack
	if m.Specular != nil && m.Gloss != nil {
		reflectance := m.Specular.Sample(frag.UV.X, frag.UV.Y)
		reflected := directionalLight.Direction.Sub(normal.Negate().Scale(2 * nDotL))
		rDotV := Clamp(Dot3(reflected, frag.ViewVector), 0, 1)
		gloss := m.Gloss.Sample(frag.UV.X, frag.UV.Y).R
		specular = reflectance.Scale(math.Pow(rDotV, phongShininess*gloss))
	}

	result := diffuse.Add(specular)
	result.A = 1
	return result
}

// TransparentMaterial is the diffuse-only shading path used for transparent
// surfaces: unlit, just the raw diffuse sample carried through to blending.
// Grounded on TransparentDiffuseEffect::PixelShading.
type TransparentMaterial struct {
	Diffuse *Texture
}

func (m *TransparentMaterial) Kind() MaterialKind { return MaterialTransparent }

func (m *TransparentMaterial) Shade(frag RasterVertex) Color {
	if m.Diffuse == nil {
		return ColorBlack
	}
	return m.Diffuse.Sample(frag.UV.X, frag.UV.Y)
}
