package geometry

import (
	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/material"
)

// NewQuad creates a two-triangle parallelogram mesh with corner at corner
// and edges u and v. The face normal is u × v. Texture coordinates run from
// (0,0) at the corner to (1,1) at corner+u+v.
func NewQuad(corner, u, v core.Vec3, mat material.Material) *TriangleMesh {
	vertices := []core.Vec3{
		corner,
		corner.Add(u),
		corner.Add(u).Add(v),
		corner.Add(v),
	}
	st := []core.Vec2{
		core.NewVec2(0, 0),
		core.NewVec2(1, 0),
		core.NewVec2(1, 1),
		core.NewVec2(0, 1),
	}
	return NewTriangleMesh(vertices, []int{0, 1, 2, 0, 2, 3}, mat, &TriangleMeshOptions{ST: st})
}
