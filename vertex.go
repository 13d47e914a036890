package main

// Vertex is the per-vertex mesh input: object-space position, normal and
// tangent, and texture coordinate. Grounded on the original Vertex_Input.
type Vertex struct {
	Position Vec3
	Normal   Vec3
	Tangent  Vec3
	UV       Vec2
}

// RasterVertex is the output of the vertex transform stage: a raster-space
// position (X/Y in pixels, Z the NDC depth in [0,1], W = 1/clipW) plus the
// world-space attributes needed for shading. Grounded on the original
// Vertex_Output.
type RasterVertex struct {
	Position   Vec4
	Normal     Vec3
	Tangent    Vec3
	ViewVector Vec3
	UV         Vec2
}
