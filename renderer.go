package main

// Renderer is the interface both the software rasterizer and the hardware
// peer backends satisfy, per spec §1/§4.12: the core owns the pipeline but
// acknowledges other backends as swappable peers behind the same surface.
// Grounded on renderer_interface.go, trimmed to what the spec actually
// exercises — no lighting-system/clip-bounds surface, since those concerns
// live in Settings and the mesh's own cull mode here.
type Renderer interface {
	Initialize() error
	Shutdown()
	BeginFrame()
	RenderScene(scene *Scene, camera *Camera, settings *Settings)
	EndFrame()
	Present()
}

// RenderContext bundles the per-frame dependencies of a render call, per
// spec §9 ("model singletons as explicit context structs"). Renderer's
// RenderScene takes the camera and settings as separate arguments; nothing
// in this package builds a RenderContext.
type RenderContext struct {
	Camera   *Camera
	Settings *Settings
}

// SoftwareRasterizer is the core Renderer: the full per-frame pipeline of
// spec §4.1-§4.9 running entirely on the CPU against an in-process
// framebuffer and depth buffer. Grounded on ERenderer::RenderSoftware.
type SoftwareRasterizer struct {
	Width, Height int
	Framebuffer   *Framebuffer
	DepthBuffer   *DepthBuffer
}

func NewSoftwareRasterizer(width, height int) *SoftwareRasterizer {
	return &SoftwareRasterizer{
		Width:       width,
		Height:      height,
		Framebuffer: NewFramebuffer(width, height),
		DepthBuffer: NewDepthBuffer(width, height),
	}
}

func (r *SoftwareRasterizer) Initialize() error { return nil }
func (r *SoftwareRasterizer) Shutdown()         {}

// BeginFrame fills the framebuffer with the fixed clear color and resets the
// depth buffer to +Inf, per spec §4.9 and invariant 1.
func (r *SoftwareRasterizer) BeginFrame() {
	r.Framebuffer.Clear()
	r.DepthBuffer.Clear()
}

func (r *SoftwareRasterizer) EndFrame() {}
func (r *SoftwareRasterizer) Present()  {}

// RenderScene iterates meshes in scene order, applying the full per-triangle
// pipeline to each. No scene-level culling, no multi-pass, per spec §4.9.
func (r *SoftwareRasterizer) RenderScene(scene *Scene, camera *Camera, settings *Settings) {
	for _, mesh := range scene.Meshes() {
		r.renderMesh(mesh, camera, settings)
	}
}

func (r *SoftwareRasterizer) renderMesh(mesh *Mesh, camera *Camera, settings *Settings) {
	if mesh.Material == nil {
		return
	}

	// Effective cull mode: the global setting wins unless it defers to
	// each mesh's own choice, per spec §4.4. Grounded on ERenderer::RenderSoftware.
	cull := settings.CullMode()
	if cull == CullMeshBased {
		cull = mesh.CullMode
	}

	wvp := camera.WorldViewProjection(mesh.World)
	cameraPos := camera.Position()
	step := TopologyStep(mesh.Topology)

	for i := 0; i+2 < len(mesh.Indices); i += step {
		v0, v1, v2, ok := AssembleTriangle(mesh.Topology, mesh.Vertices, mesh.Indices, i)
		if !ok {
			continue
		}
		r.renderTriangle(v0, v1, v2, wvp, mesh.World, cameraPos, cull, mesh.Material, settings)
	}
}

func (r *SoftwareRasterizer) renderTriangle(v0, v1, v2 Vertex, wvp, world Mat4, cameraPos Vec3, cull CullMode, material Material, settings *Settings) {
	raster, ok := TransformTriangle(v0, v1, v2, wvp, world, cameraPos, r.Width, r.Height)
	if !ok {
		return
	}

	rv0, rv1, rv2 := raster[0], raster[1], raster[2]
	box := ComputeAABB(rv0, rv1, rv2, r.Width, r.Height)

	for y := box.Bottom; y < box.Top; y++ {
		for x := box.Left; x < box.Right; x++ {
			w0, w1, w2, ok := InsideTriangle(rv0, rv1, rv2, Vec2{X: float64(x), Y: float64(y)}, cull)
			if !ok {
				continue
			}

			z := InterpolateDepth(rv0, rv1, rv2, w0, w1, w2)
			if !r.DepthBuffer.Test(x, y, z) {
				continue
			}

			frag := InterpolateAttributes(rv0, rv1, rv2, Vec2{X: float64(x), Y: float64(y)}, z, w0, w1, w2)
			color := material.Shade(frag)

			// Transparency is read once per covered pixel, not cached per
			// triangle, per spec §5: a concurrent toggle from the input
			// goroutine must take effect mid-triangle.
			WritePixel(r.Framebuffer, r.DepthBuffer, x, y, z, color, material.Kind(), settings.TransparencyEnabled())
		}
	}
}
