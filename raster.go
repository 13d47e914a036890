package main

import "math"

// triangleInsideEpsilon is the edge-function tolerance used to reject
// pixels exactly on an edge, grounded on the original's FLT_EPSILON.
const triangleInsideEpsilon = 1.1920929e-7

// AABB is an integer screen-space bounding box, half-open on [Right, Top).
type AABB struct {
	Left, Bottom, Right, Top int
}

// ComputeAABB computes the screen-space bounding box of a raster triangle,
// expanding the right and top edges by one pixel and clamping to the
// framebuffer bounds, per spec §4.3. Grounded on Rasterizer::GetAabb2D.
func ComputeAABB(v0, v1, v2 RasterVertex, width, height int) AABB {
	left, bottom := math.MaxInt32, math.MaxInt32
	right, top := math.MinInt32, math.MinInt32

	for _, v := range [3]RasterVertex{v0, v1, v2} {
		x, y := int(v.Position.X), int(v.Position.Y)
		if x < left {
			left = x
		}
		if x+1 > right {
			right = x + 1
		}
		if y < bottom {
			bottom = y
		}
		if y+1 > top {
			top = y + 1
		}
	}

	return AABB{
		Left:   clampInt(left, 0, width),
		Bottom: clampInt(bottom, 0, height),
		Right:  clampInt(right, 0, width),
		Top:    clampInt(top, 0, height),
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// InsideTriangle runs the edge-function inside test for point p (the
// renderer passes the integer pixel coordinate, not the pixel center)
// against the raster triangle v0,v1,v2, applying the cull policy to the two
// signed edge areas, per spec §4.4. ok is false if the pixel is outside the
// triangle or rejected by the cull mode; w0/w1/w2 are the barycentric
// weights of v0/v1/v2 otherwise. Grounded on Rasterizer::IsPixelInTriangle.
func InsideTriangle(v0, v1, v2 RasterVertex, p Vec2, cull CullMode) (w0, w1, w2 float64, ok bool) {
	p0 := Vec2{v0.Position.X, v0.Position.Y}
	p1 := Vec2{v1.Position.X, v1.Position.Y}
	p2 := Vec2{v2.Position.X, v2.Position.Y}

	edgeV1V2 := p2.Sub(p1)
	edgeV2V0 := p0.Sub(p2)

	e0 := Cross2(p.Sub(p1), edgeV1V2)
	e1 := Cross2(p.Sub(p2), edgeV2V0)

	switch cull {
	case CullNone:
		if math.Abs(e0) < triangleInsideEpsilon || math.Abs(e1) < triangleInsideEpsilon {
			return 0, 0, 0, false
		}
	case CullBackFace:
		if e0 < triangleInsideEpsilon || e1 < triangleInsideEpsilon {
			return 0, 0, 0, false
		}
	case CullFrontFace:
		if e0 > -triangleInsideEpsilon || e1 > -triangleInsideEpsilon {
			return 0, 0, 0, false
		}
	}

	invArea := 1 / Cross2(edgeV1V2.Scale(-1), edgeV2V0)

	w0 = e0 * invArea
	if w0 < 0 || w0 > 1 {
		return 0, 0, 0, false
	}

	w1 = e1 * invArea
	if w1 < 0 || w0+w1 > 1 {
		return 0, 0, 0, false
	}

	w2 = 1 - (w0 + w1)
	return w0, w1, w2, true
}

// InterpolateDepth computes the perspective-incorrect linear interpolation
// of screen-space z used for the depth test, per spec §4.5. The v.Position.W
// slots hold 1/clipW, not z itself; z is read from v.Position.Z.
func InterpolateDepth(v0, v1, v2 RasterVertex, w0, w1, w2 float64) float64 {
	invZ0 := 1 / v0.Position.Z
	invZ1 := 1 / v1.Position.Z
	invZ2 := 1 / v2.Position.Z
	return 1 / (w0*invZ0 + w1*invZ1 + w2*invZ2)
}

// InterpolateAttributes perspective-correctly interpolates uv/normal/tangent
// /viewVector using 1/w-weighted barycentrics, renormalizing the vector
// attributes afterward, per spec §4.5. zRemapped is the depth-visualization
// convenience field, clamp(remap(z, 0.975, 1.0), 0, 1).
// Grounded on Rasterizer::GetInterpolatedPixelInfo.
func InterpolateAttributes(v0, v1, v2 RasterVertex, pixel Vec2, zInterpolated, w0, w1, w2 float64) RasterVertex {
	a0 := w0 * v0.Position.W
	a1 := w1 * v1.Position.W
	a2 := w2 * v2.Position.W

	wsum := a0 + a1 + a2
	invWsum := 1 / wsum

	uv := v0.UV.Scale(a0).Add(v1.UV.Scale(a1)).Add(v2.UV.Scale(a2)).Scale(invWsum)
	normal := v0.Normal.Scale(a0).Add(v1.Normal.Scale(a1)).Add(v2.Normal.Scale(a2)).Scale(invWsum).Normalize()
	tangent := v0.Tangent.Scale(a0).Add(v1.Tangent.Scale(a1)).Add(v2.Tangent.Scale(a2)).Scale(invWsum).Normalize()
	viewVector := v0.ViewVector.Scale(a0).Add(v1.ViewVector.Scale(a1)).Add(v2.ViewVector.Scale(a2)).Scale(invWsum).Normalize()

	zRemapped := Clamp(Remap(zInterpolated, 0.975, 1.0), 0, 1)

	return RasterVertex{
		Position:   Vec4{X: pixel.X, Y: pixel.Y, Z: zRemapped, W: invWsum},
		Normal:     normal,
		Tangent:    tangent,
		ViewVector: viewVector,
		UV:         uv,
	}
}
