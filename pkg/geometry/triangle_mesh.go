package geometry

import (
	"sort"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/material"
)

// TriangleMesh is an indexed triangle mesh that owns its vertex, index and
// texture-coordinate buffers and an internal BVH over its own triangles
type TriangleMesh struct {
	Vertices []core.Vec3
	Indices  []int
	ST       []core.Vec2 // Optional, one per vertex

	material  material.Material
	triangles []*Triangle
	cdf       []float64 // cumulative triangle area for sampling
	area      float64
	bvh       *BVH
	bbox      core.AABB
}

// TriangleMeshOptions contains optional parameters for triangle mesh creation
type TriangleMeshOptions struct {
	ST []core.Vec2 // Per-vertex texture coordinates
}

// NewTriangleMesh creates a new triangle mesh from vertices and face indices.
// Every group of three indices forms one counter-clockwise triangle. It panics
// on malformed input.
func NewTriangleMesh(vertices []core.Vec3, indices []int, mat material.Material, options *TriangleMeshOptions) *TriangleMesh {
	if len(indices)%3 != 0 {
		panic("face indices must be a multiple of 3")
	}

	var st []core.Vec2
	if options != nil && options.ST != nil {
		if len(options.ST) != len(vertices) {
			panic("number of texture coordinates must match number of vertices")
		}
		st = options.ST
	}

	mesh := &TriangleMesh{
		Vertices:  vertices,
		Indices:   indices,
		ST:        st,
		material:  mat,
		triangles: make([]*Triangle, 0, len(indices)/3),
		bbox:      core.NewEmptyAABB(),
	}

	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		for _, idx := range []int{i0, i1, i2} {
			if idx < 0 || idx >= len(vertices) {
				panic("face index out of bounds")
			}
		}

		var st0, st1, st2 core.Vec2
		if st != nil {
			st0, st1, st2 = st[i0], st[i1], st[i2]
		}
		tri := NewTexturedTriangle(vertices[i0], vertices[i1], vertices[i2], st0, st1, st2, mat)

		mesh.triangles = append(mesh.triangles, tri)
		mesh.area += tri.SurfaceArea()
		mesh.cdf = append(mesh.cdf, mesh.area)
		mesh.bbox = mesh.bbox.Union(tri.BoundingBox())
	}

	prims := make([]Primitive, len(mesh.triangles))
	for i, tri := range mesh.triangles {
		prims[i] = tri
	}
	mesh.bvh = NewBVH(prims)

	return mesh
}

// Intersect finds the nearest triangle hit through the mesh's own BVH
func (m *TriangleMesh) Intersect(ray core.Ray, cull CullMode) Intersection {
	hit := m.bvh.Intersect(ray, cull)
	if hit.Hit {
		hit.Primitive = m
	}
	return hit
}

// BoundingBox returns the bounds of all triangles
func (m *TriangleMesh) BoundingBox() core.AABB {
	return m.bbox
}

// SurfaceArea returns the total area of all triangles
func (m *TriangleMesh) SurfaceArea() float64 {
	return m.area
}

// Sample picks a triangle proportionally to its area and a uniform point on it
func (m *TriangleMesh) Sample(sampler core.Sampler) SurfaceSample {
	if len(m.triangles) == 0 || m.area == 0 {
		return SurfaceSample{}
	}

	target := sampler.Get1D() * m.area
	i := sort.Search(len(m.cdf), func(i int) bool { return m.cdf[i] > target })
	if i >= len(m.triangles) {
		i = len(m.triangles) - 1
	}

	sample := m.triangles[i].Sample(sampler)
	sample.PDF = 1 / m.area
	return sample
}

// Emission returns the material's radiance when it is a light
func (m *TriangleMesh) Emission() core.Vec3 {
	if e, ok := m.material.(material.Emitter); ok {
		return e.Emit()
	}
	return core.Vec3{}
}

// HasEmission reports whether the mesh is a light
func (m *TriangleMesh) HasEmission() bool {
	return material.IsEmissive(m.material)
}

// DiffuseColor returns the material's diffuse reflectance at st
func (m *TriangleMesh) DiffuseColor(st core.Vec2) core.Vec3 {
	if p, ok := m.material.(*material.Phong); ok {
		return p.DiffuseColor(st)
	}
	return core.Vec3{}
}

// Material returns the mesh material
func (m *TriangleMesh) Material() material.Material {
	return m.material
}

// TriangleCount returns the number of triangles in the mesh
func (m *TriangleMesh) TriangleCount() int {
	return len(m.triangles)
}

// Triangles returns the mesh's triangles
func (m *TriangleMesh) Triangles() []*Triangle {
	return m.triangles
}

// BVHStats returns statistics for the mesh's internal hierarchy
func (m *TriangleMesh) BVHStats() BVHStats {
	return m.bvh.Stats()
}

// Transform returns a copy of vertices scaled about the origin and then
// translated by offset
func Transform(vertices []core.Vec3, scale float64, offset core.Vec3) []core.Vec3 {
	out := make([]core.Vec3, len(vertices))
	for i, v := range vertices {
		out[i] = v.Multiply(scale).Add(offset)
	}
	return out
}
