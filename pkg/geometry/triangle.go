package geometry

import (
	"math"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/material"
)

// Triangle represents a single flat-shaded triangle
type Triangle struct {
	V0, V1, V2    core.Vec3         // The three vertices, counter-clockwise around the normal
	ST0, ST1, ST2 core.Vec2         // Per-vertex texture coordinates
	Material      material.Material // Material of the triangle
	e1, e2        core.Vec3         // Cached edges V1-V0 and V2-V0
	normal        core.Vec3         // Cached unit normal
	area          float64
	bbox          core.AABB
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, material material.Material) *Triangle {
	return NewTexturedTriangle(v0, v1, v2, core.Vec2{}, core.Vec2{}, core.Vec2{}, material)
}

// NewTexturedTriangle creates a triangle with per-vertex texture coordinates
func NewTexturedTriangle(v0, v1, v2 core.Vec3, st0, st1, st2 core.Vec2, material material.Material) *Triangle {
	t := &Triangle{
		V0: v0, V1: v1, V2: v2,
		ST0: st0, ST1: st1, ST2: st2,
		Material: material,
	}

	t.e1 = v1.Subtract(v0)
	t.e2 = v2.Subtract(v0)
	cross := t.e1.Cross(t.e2)
	t.normal = cross.Normalize()
	t.area = 0.5 * cross.Length()
	t.bbox = core.NewAABBFromPoints(v0, v1, v2)

	return t
}

// Intersect tests the ray against the triangle with the Möller–Trumbore algorithm
func (t *Triangle) Intersect(ray core.Ray, cull CullMode) Intersection {
	if cull == CullBackFaces && !t.twoSided() && ray.Direction.Dot(t.normal) >= 0 {
		return Miss()
	}

	pvec := ray.Direction.Cross(t.e2)
	det := t.e1.Dot(pvec)
	if math.Abs(det) < Epsilon {
		return Miss()
	}
	invDet := 1.0 / det

	tvec := ray.Origin.Subtract(t.V0)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return Miss()
	}

	qvec := tvec.Cross(t.e1)
	v := ray.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return Miss()
	}

	tHit := t.e2.Dot(qvec) * invDet
	if tHit <= 0 {
		return Miss()
	}

	return Intersection{
		Hit:       true,
		T:         tHit,
		Point:     ray.At(tHit),
		Normal:    t.normal,
		UV:        core.NewVec2(u, v),
		ST:        t.interpolateST(u, v),
		Material:  t.Material,
		Emission:  t.Emission(),
		Primitive: t,
	}
}

// twoSided reports whether both faces stay visible under back-face culling
func (t *Triangle) twoSided() bool {
	return t.Material != nil && t.Material.Type() == material.ReflectionAndRefraction
}

func (t *Triangle) interpolateST(u, v float64) core.Vec2 {
	w := 1 - u - v
	return t.ST0.Multiply(w).Add(t.ST1.Multiply(u)).Add(t.ST2.Multiply(v))
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

// SurfaceArea returns the triangle's area
func (t *Triangle) SurfaceArea() float64 {
	return t.area
}

// Normal returns the triangle's unit normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// Sample picks a point uniformly over the triangle
func (t *Triangle) Sample(sampler core.Sampler) SurfaceSample {
	b0, b1, b2 := core.SampleTriangle(sampler.Get2D())
	point := t.V0.Multiply(b0).Add(t.V1.Multiply(b1)).Add(t.V2.Multiply(b2))

	pdf := 0.0
	if t.area > 0 {
		pdf = 1 / t.area
	}
	return SurfaceSample{
		Point:    point,
		Normal:   t.normal,
		Emission: t.Emission(),
		PDF:      pdf,
	}
}

// Emission returns the material's radiance when it is a light
func (t *Triangle) Emission() core.Vec3 {
	if e, ok := t.Material.(material.Emitter); ok {
		return e.Emit()
	}
	return core.Vec3{}
}

// HasEmission reports whether the triangle is a light
func (t *Triangle) HasEmission() bool {
	return material.IsEmissive(t.Material)
}

// DiffuseColor returns the material's diffuse reflectance at st
func (t *Triangle) DiffuseColor(st core.Vec2) core.Vec3 {
	if p, ok := t.Material.(*material.Phong); ok {
		return p.DiffuseColor(st)
	}
	return core.Vec3{}
}
