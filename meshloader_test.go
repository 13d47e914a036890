package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeMeshFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "mesh.txt")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const triangleMesh = `
v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
vt 0 0
vt 1 0
vt 0 1
f 1/1/1 2/2/1 3/3/1
`

func TestLoadMeshFileBasicTriangle(t *testing.T) {
	path := writeMeshFile(t, triangleMesh)
	vertices, indices, err := LoadMeshFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(vertices) != 3 {
		t.Fatalf("expected 3 deduplicated vertices, got %d", len(vertices))
	}
	if len(indices) != 3 {
		t.Fatalf("expected 3 indices, got %d", len(indices))
	}
}

func TestLoadMeshFileTangentOrthogonalToNormal(t *testing.T) {
	path := writeMeshFile(t, triangleMesh)
	vertices, _, err := LoadMeshFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range vertices {
		if math.Abs(Dot3(v.Tangent, v.Normal)) > 1e-5 {
			t.Fatalf("expected tangent orthogonal to normal, got dot=%v", Dot3(v.Tangent, v.Normal))
		}
		if math.Abs(v.Tangent.Length()-1) > 1e-5 {
			t.Fatalf("expected unit tangent, got length %v", v.Tangent.Length())
		}
	}
}

func TestLoadMeshFileDeduplicatesSharedVertices(t *testing.T) {
	const quad = `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vn 0 0 1
vt 0 0
vt 1 0
vt 1 1
vt 0 1
f 1/1/1 2/2/1 3/3/1
f 1/1/1 3/3/1 4/4/1
`
	path := writeMeshFile(t, quad)
	vertices, indices, err := LoadMeshFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(vertices) != 4 {
		t.Fatalf("expected 4 deduplicated vertices across both triangles, got %d", len(vertices))
	}
	if len(indices) != 6 {
		t.Fatalf("expected 6 indices, got %d", len(indices))
	}
}

func TestLoadMeshFileSkipsMalformedLines(t *testing.T) {
	const withGarbage = `
v 0 0 0
v 1 0 0
garbage line that is not a directive at all
v 0 1 0
vn 0 0 1
vt 0 0
vt 1 0
vt 0 1
f 1/1/1 2/2/1 3/3/1
`
	path := writeMeshFile(t, withGarbage)
	vertices, indices, err := LoadMeshFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(vertices) != 3 || len(indices) != 3 {
		t.Fatalf("expected garbage line to be skipped without aborting parse, got %d vertices %d indices", len(vertices), len(indices))
	}
}

func TestLoadMeshFileMissingFileReturnsError(t *testing.T) {
	_, _, err := LoadMeshFile(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("expected error for missing mesh file")
	}
}
