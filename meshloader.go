package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadMeshFile parses the plain-text triangulated face list described in
// spec §6: `v`/`vn`/`vt`/`f` records only, faces already triangulated
// (exactly three slash-separated position/uv/normal indices per line).
// Malformed lines are logged to standard error and skipped; parsing
// continues with whatever follows, per spec §7. Grounded on
// ObjReader::LoadModel, adapted from the teacher's bufio.Scanner/strconv
// idiom in obj_loader.go.
func LoadMeshFile(path string) ([]Vertex, []uint32, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open mesh file %s: %w", path, err)
	}
	defer file.Close()

	var positions []Vec3
	var normals []Vec3
	var uvs []Vec2
	var faces [][3][3]int // per face, per vertex: [posIdx, uvIdx, normalIdx] (0-based)

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)

		switch parts[0] {
		case "v":
			p, ok := parseVec3(parts[1:])
			if !ok {
				warnMalformedLine(path, lineNum, "vertex position")
				continue
			}
			positions = append(positions, p)

		case "vn":
			n, ok := parseVec3(parts[1:])
			if !ok {
				warnMalformedLine(path, lineNum, "vertex normal")
				continue
			}
			normals = append(normals, n)

		case "vt":
			uv, ok := parseVec2(parts[1:])
			if !ok {
				warnMalformedLine(path, lineNum, "texture coordinate")
				continue
			}
			uvs = append(uvs, Vec2{X: uv.X, Y: 1 - uv.Y})

		case "f":
			face, ok := parseFace(parts[1:])
			if !ok {
				warnMalformedLine(path, lineNum, "face")
				continue
			}
			faces = append(faces, face)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("read mesh file %s: %w", path, err)
	}

	vertices, indices := assembleVertexBuffer(positions, normals, uvs, faces, path)
	return vertices, indices, nil
}

func warnMalformedLine(path string, line int, what string) {
	fmt.Fprintf(os.Stderr, "mesh loader: %s:%d: malformed %s, skipping\n", path, line, what)
}

func parseVec3(fields []string) (Vec3, bool) {
	if len(fields) < 3 {
		return Vec3{}, false
	}
	x, err1 := strconv.ParseFloat(fields[0], 64)
	y, err2 := strconv.ParseFloat(fields[1], 64)
	z, err3 := strconv.ParseFloat(fields[2], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return Vec3{}, false
	}
	return Vec3{X: x, Y: y, Z: z}, true
}

func parseVec2(fields []string) (Vec2, bool) {
	if len(fields) < 2 {
		return Vec2{}, false
	}
	x, err1 := strconv.ParseFloat(fields[0], 64)
	y, err2 := strconv.ParseFloat(fields[1], 64)
	if err1 != nil || err2 != nil {
		return Vec2{}, false
	}
	return Vec2{X: x, Y: y}, true
}

// parseFace parses the three "position/uv/normal" triplets of a
// pre-triangulated face line into 0-based indices.
func parseFace(fields []string) ([3][3]int, bool) {
	var face [3][3]int
	if len(fields) != 3 {
		return face, false
	}
	for i, field := range fields {
		comps := strings.Split(field, "/")
		if len(comps) != 3 {
			return face, false
		}
		for j, comp := range comps {
			idx, err := strconv.Atoi(comp)
			if err != nil {
				return face, false
			}
			face[i][j] = idx - 1
		}
	}
	return face, true
}

// assembleVertexBuffer builds the deduplicated vertex/index buffers from
// parsed face records, computing a per-face tangent from position/uv deltas
// and Gram-Schmidt-rejecting it against each vertex's own normal, per
// spec §6. Grounded on the tangent derivation in ObjReader::LoadModel.
func assembleVertexBuffer(positions, normals []Vec3, uvs []Vec2, faces [][3][3]int, path string) ([]Vertex, []uint32) {
	var vertexBuffer []Vertex
	var indexBuffer []uint32

	lookup := func(idx int, pool []Vec3) (Vec3, bool) {
		if idx < 0 || idx >= len(pool) {
			return Vec3{}, false
		}
		return pool[idx], true
	}
	lookupUV := func(idx int) (Vec2, bool) {
		if idx < 0 || idx >= len(uvs) {
			return Vec2{}, false
		}
		return uvs[idx], true
	}

	for _, face := range faces {
		p0, ok0 := lookup(face[0][0], positions)
		p1, ok1 := lookup(face[1][0], positions)
		p2, ok2 := lookup(face[2][0], positions)
		uv0, okuv0 := lookupUV(face[0][1])
		uv1, okuv1 := lookupUV(face[1][1])
		uv2, okuv2 := lookupUV(face[2][1])
		n0, okn0 := lookup(face[0][2], normals)
		n1, okn1 := lookup(face[1][2], normals)
		n2, okn2 := lookup(face[2][2], normals)

		if !(ok0 && ok1 && ok2 && okuv0 && okuv1 && okuv2 && okn0 && okn1 && okn2) {
			fmt.Fprintf(os.Stderr, "mesh loader: %s: face references an out-of-range index, skipping\n", path)
			continue
		}

		edge0 := p1.Sub(p0)
		edge1 := p2.Sub(p0)
		diffX := Vec2{X: uv1.X - uv0.X, Y: uv2.X - uv0.X}
		diffY := Vec2{X: uv1.Y - uv0.Y, Y: uv2.Y - uv0.Y}

		denom := Cross2(diffX, diffY)
		var faceTangent Vec3
		if denom != 0 {
			r := 1 / denom
			faceTangent = edge0.Scale(diffY.Y).Sub(edge1.Scale(diffY.X)).Scale(r)
		}

		v0 := Vertex{Position: p0, Normal: n0, UV: uv0, Tangent: faceTangent.Reject(n0).Normalize()}
		v1 := Vertex{Position: p1, Normal: n1, UV: uv1, Tangent: faceTangent.Reject(n1).Normalize()}
		v2 := Vertex{Position: p2, Normal: n2, UV: uv2, Tangent: faceTangent.Reject(n2).Normalize()}

		idx0 := dedupVertex(&vertexBuffer, v0)
		idx1 := dedupVertex(&vertexBuffer, v1)
		idx2 := dedupVertex(&vertexBuffer, v2)

		indexBuffer = append(indexBuffer, idx0, idx1, idx2)
	}

	return vertexBuffer, indexBuffer
}

// dedupVertex returns the index of an existing vertex with identical
// position, uv and normal, appending a new one if none matches, per spec §6.
func dedupVertex(buffer *[]Vertex, v Vertex) uint32 {
	for i, existing := range *buffer {
		if existing.Position == v.Position && existing.UV == v.UV && existing.Normal == v.Normal {
			return uint32(i)
		}
	}
	*buffer = append(*buffer, v)
	return uint32(len(*buffer) - 1)
}
