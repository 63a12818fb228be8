package geometry

import (
	"math"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/material"
)

// boxCorners is a unit box centered at the origin
var boxCorners = [8]core.Vec3{
	core.NewVec3(-1, -1, -1), // 0: left-bottom-back
	core.NewVec3(1, -1, -1),  // 1: right-bottom-back
	core.NewVec3(1, 1, -1),   // 2: right-top-back
	core.NewVec3(-1, 1, -1),  // 3: left-top-back
	core.NewVec3(-1, -1, 1),  // 4: left-bottom-front
	core.NewVec3(1, -1, 1),   // 5: right-bottom-front
	core.NewVec3(1, 1, 1),    // 6: right-top-front
	core.NewVec3(-1, 1, 1),   // 7: left-top-front
}

// boxFaces winds every face counter-clockwise seen from outside
var boxFaces = []int{
	4, 5, 6, 4, 6, 7, // front (+Z)
	1, 0, 3, 1, 3, 2, // back (-Z)
	5, 1, 2, 5, 2, 6, // right (+X)
	0, 4, 7, 0, 7, 3, // left (-X)
	3, 7, 6, 3, 6, 2, // top (+Y)
	0, 1, 5, 0, 5, 4, // bottom (-Y)
}

// NewBox creates a closed 12-triangle box mesh. Size holds half-extents and
// yaw rotates the box about the vertical axis through its center, in radians.
func NewBox(center, size core.Vec3, yaw float64, mat material.Material) *TriangleMesh {
	sin, cos := math.Sincos(yaw)

	vertices := make([]core.Vec3, len(boxCorners))
	for i, c := range boxCorners {
		p := c.MultiplyVec(size)
		p = core.NewVec3(cos*p.X+sin*p.Z, p.Y, -sin*p.X+cos*p.Z)
		vertices[i] = p.Add(center)
	}

	return NewTriangleMesh(vertices, boxFaces, mat, nil)
}
