package loaders

import (
	"errors"
	"fmt"

	"github.com/udhos/gwob"

	"github.com/df07/go-raytracer/internal/log"
	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/material"
)

var logger = log.New("loaders")

// ErrEmptyMesh is returned for an OBJ file without any triangle faces
var ErrEmptyMesh = errors.New("loaders: mesh has no faces")

// OBJOptions controls how an OBJ mesh is placed in the scene
type OBJOptions struct {
	Scale    float64 // uniform scale applied before Offset; 0 means 1
	Offset   core.Vec3
	Material material.Material
}

// LoadOBJ reads a Wavefront OBJ file into a triangle mesh. Polygons are
// triangulated by the parser, normals are ignored and texture coordinates
// are kept when every vertex has one.
func LoadOBJ(filename string, options OBJOptions) (*geometry.TriangleMesh, error) {
	parserOptions := &gwob.ObjParserOptions{
		LogStats:      log.IsEnabled(log.Debug),
		Logger:        func(msg string) { logger.Debug(msg) },
		IgnoreNormals: true,
	}

	obj, err := gwob.NewObjFromFile(filename, parserOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OBJ file %s: %w", filename, err)
	}

	mesh, err := meshFromObj(obj, options)
	if err != nil {
		return nil, fmt.Errorf("failed to load OBJ file %s: %w", filename, err)
	}
	logger.Infof("loaded %s: %d vertices, %d triangles", filename, len(mesh.Vertices), mesh.TriangleCount())
	return mesh, nil
}

func meshFromObj(obj *gwob.Obj, options OBJOptions) (*geometry.TriangleMesh, error) {
	if len(obj.Indices) < 3 {
		return nil, ErrEmptyMesh
	}

	stride := obj.StrideSize / 4
	positionOffset := obj.StrideOffsetPosition / 4
	textureOffset := obj.StrideOffsetTexture / 4
	count := obj.NumberOfElements()

	vertices := make([]core.Vec3, count)
	var st []core.Vec2
	if obj.TextCoordFound {
		st = make([]core.Vec2, count)
	}
	for i := 0; i < count; i++ {
		base := i * stride
		vertices[i] = core.NewVec3(
			obj.Coord64(base+positionOffset),
			obj.Coord64(base+positionOffset+1),
			obj.Coord64(base+positionOffset+2),
		)
		if st != nil {
			st[i] = core.NewVec2(obj.Coord64(base+textureOffset), obj.Coord64(base+textureOffset+1))
		}
	}

	indices := make([]int, 0, len(obj.Indices)-len(obj.Indices)%3)
	for i := 0; i+2 < len(obj.Indices); i += 3 {
		for _, idx := range obj.Indices[i : i+3] {
			if idx < 0 || idx >= count {
				return nil, fmt.Errorf("face index %d out of range [0, %d)", idx, count)
			}
		}
		indices = append(indices, obj.Indices[i:i+3]...)
	}

	scale := options.Scale
	if scale == 0 {
		scale = 1
	}
	vertices = geometry.Transform(vertices, scale, options.Offset)

	var meshOptions *geometry.TriangleMeshOptions
	if st != nil {
		meshOptions = &geometry.TriangleMeshOptions{ST: st}
	}
	return geometry.NewTriangleMesh(vertices, indices, options.Material, meshOptions), nil
}
