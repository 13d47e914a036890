package main

// AssembleTriangle reads three vertices out of the index buffer starting at
// index i according to topology, per spec §4.2. ok is false for a
// degenerate triangle-strip triple (any two of the three indices equal);
// list topology is never degenerate by construction here.
// Grounded on Rasterizer::CreateTriangle.
func AssembleTriangle(topology Topology, vertices []Vertex, indices []uint32, i int) (v0, v1, v2 Vertex, ok bool) {
	idx0 := indices[i]
	idx1 := indices[i+1]
	idx2 := indices[i+2]

	switch topology {
	case TopologyList:
		return vertices[idx0], vertices[idx1], vertices[idx2], true

	case TopologyStrip:
		if idx0 == idx1 || idx1 == idx2 || idx2 == idx0 {
			return Vertex{}, Vertex{}, Vertex{}, false
		}
		if i%2 == 0 {
			return vertices[idx0], vertices[idx1], vertices[idx2], true
		}
		return vertices[idx0], vertices[idx2], vertices[idx1], true
	}

	return Vertex{}, Vertex{}, Vertex{}, false
}

// TopologyStep is the index-buffer step between successive AssembleTriangle
// calls for a given topology: list triangles don't share vertices, strip
// triangles share an edge with the next one.
func TopologyStep(topology Topology) int {
	if topology == TopologyStrip {
		return 1
	}
	return 3
}
