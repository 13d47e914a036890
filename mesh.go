package main

// CullMode selects which triangle winding the raster stage discards.
// Grounded on the original CullMode enum; MESHBASED defers to each mesh's
// own CullMode field rather than the global settings value, resolved by
// the renderer at draw time.
type CullMode int

const (
	CullMeshBased CullMode = iota
	CullNone
	CullBackFace
	CullFrontFace
)

// Topology selects how the index buffer is read into triangles, per spec §3.
type Topology int

const (
	TopologyList Topology = iota
	TopologyStrip
)

// Mesh is a vertex/index buffer bound to a world transform, cull mode and
// material. Grounded on the original Mesh class, trimmed of its GPU upload
// path (LoadOnGPU/Render) since this pipeline only ever rasterizes in
// software.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	World    Mat4
	CullMode CullMode
	Topology Topology
	Material Material
}

func NewMesh(vertices []Vertex, indices []uint32, material Material) *Mesh {
	return &Mesh{
		Vertices: vertices,
		Indices:  indices,
		World:    IdentityMat4(),
		CullMode: CullBackFace,
		Topology: TopologyList,
		Material: material,
	}
}

// SetPose sets the mesh's world transform to a rigid rotation followed by a
// translation, grounded on main.cpp's `Elite::MakeTranslation` mesh
// constructor argument, generalized to also accept an orientation rather
// than placement only.
func (m *Mesh) SetPose(position Vec3, rotation Quaternion) {
	m.World = Translation(position).Multiply(rotation.ToMat4())
}
