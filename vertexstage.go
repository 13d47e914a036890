package main

// TransformTriangle runs the vertex transform stage of spec §4.1 over a
// model-space triangle, producing raster-space vertices. ok is false if any
// vertex falls outside the canonical view volume, in which case the whole
// triangle is rejected rather than clipped. Grounded on
// Rasterizer::ConvertVerticesWorldToScreenSpace.
func TransformTriangle(v0, v1, v2 Vertex, worldViewProjection, world Mat4, cameraPos Vec3, width, height int) (out [3]RasterVertex, ok bool) {
	in := [3]Vertex{v0, v1, v2}

	for i, v := range in {
		clip := worldViewProjection.TransformVec4(v.Position.ToVec4(1))

		if clip.W == 0 {
			return out, false
		}

		x := clip.X / clip.W
		y := clip.Y / clip.W
		z := clip.Z / clip.W
		w := 1 / clip.W

		if x < -1 || x > 1 || y < -1 || y > 1 || z < 0 || z > 1 {
			return out, false
		}

		x = (x + 1) / 2 * float64(width)
		y = (1 - y) / 2 * float64(height)

		worldPos := world.TransformPoint(v.Position)

		out[i] = RasterVertex{
			Position:   Vec4{X: x, Y: y, Z: z, W: w},
			Normal:     world.TransformDirection(v.Normal),
			Tangent:    world.TransformDirection(v.Tangent),
			ViewVector: cameraPos.Sub(worldPos),
			UV:         v.UV,
		}
	}

	return out, true
}
