package loaders

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/udhos/gwob"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/material"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	return path
}

const quadOBJ = `# unit quad in the XY plane
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`

func TestLoadOBJ_TriangulatesAndTransforms(t *testing.T) {
	path := writeFile(t, "quad.obj", quadOBJ)
	mat := material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5))

	mesh, err := LoadOBJ(path, OBJOptions{Scale: 2, Offset: core.NewVec3(1, 0, -3), Material: mat})
	if err != nil {
		t.Fatalf("LoadOBJ failed: %v", err)
	}

	if mesh.TriangleCount() != 2 {
		t.Errorf("Expected 2 triangles, got %d", mesh.TriangleCount())
	}
	if mesh.Material() != mat {
		t.Error("Expected mesh to carry the given material")
	}
	if math.Abs(mesh.SurfaceArea()-4) > 1e-9 {
		t.Errorf("Expected area 4 after scaling by 2, got %f", mesh.SurfaceArea())
	}

	bbox := mesh.BoundingBox()
	if bbox.Min != core.NewVec3(1, 0, -3) || bbox.Max != core.NewVec3(3, 2, -3) {
		t.Errorf("Unexpected bounds %v", bbox)
	}
}

func TestLoadOBJ_TextureCoordinates(t *testing.T) {
	path := writeFile(t, "tri.obj", `v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
f 1/1 2/2 3/3
`)

	mesh, err := LoadOBJ(path, OBJOptions{Material: material.NewDiffuse(core.NewVec3(1, 1, 1))})
	if err != nil {
		t.Fatalf("LoadOBJ failed: %v", err)
	}
	if mesh.ST == nil {
		t.Fatal("Expected texture coordinates to be loaded")
	}
	if len(mesh.ST) != len(mesh.Vertices) {
		t.Errorf("Expected one st per vertex, got %d for %d vertices", len(mesh.ST), len(mesh.Vertices))
	}
}

func TestLoadOBJ_Errors(t *testing.T) {
	if _, err := LoadOBJ(filepath.Join(t.TempDir(), "missing.obj"), OBJOptions{}); err == nil {
		t.Error("Expected error for missing file")
	}

	if _, err := meshFromObj(&gwob.Obj{}, OBJOptions{}); !errors.Is(err, ErrEmptyMesh) {
		t.Errorf("Expected ErrEmptyMesh, got %v", err)
	}
}
