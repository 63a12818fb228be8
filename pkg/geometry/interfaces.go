package geometry

import (
	"math"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/material"
)

// Epsilon bounds the Möller–Trumbore determinant; smaller values mean the
// ray is nearly parallel to the triangle plane
const Epsilon = 1e-5

// CullMode selects whether back faces are intersectable
type CullMode int

const (
	// CullNone intersects both sides of every triangle
	CullNone CullMode = iota
	// CullBackFaces rejects hits where the ray travels along the face
	// normal. Refractive surfaces stay two-sided.
	CullBackFaces
)

// Primitive is an intersectable, boundable and sampleable surface
type Primitive interface {
	// Intersect returns the nearest hit with t > 0 or a miss
	Intersect(ray core.Ray, cull CullMode) Intersection

	BoundingBox() core.AABB
	SurfaceArea() float64

	// Sample returns a point distributed uniformly over the surface
	Sample(sampler core.Sampler) SurfaceSample

	// Emission returns the emitted radiance, zero for non-emitters
	Emission() core.Vec3
	HasEmission() bool

	// DiffuseColor returns the diffuse reflectance at texture coordinate st
	DiffuseColor(st core.Vec2) core.Vec3
}

// Intersection is the result of a ray query. A zero Intersection is a miss.
type Intersection struct {
	Hit       bool
	T         float64   // Ray parameter of the hit
	Point     core.Vec3 // World-space hit point
	Normal    core.Vec3 // Unit geometric normal, as wound, not flipped toward the ray
	UV        core.Vec2 // Barycentric coordinates (u, v)
	ST        core.Vec2 // Interpolated texture coordinates
	Material  material.Material
	Emission  core.Vec3
	Primitive Primitive
}

// Miss returns the no-hit sentinel
func Miss() Intersection {
	return Intersection{T: math.Inf(1)}
}

// Closer returns whichever of a and b is the nearer hit
func Closer(a, b Intersection) Intersection {
	if !a.Hit {
		return b
	}
	if b.Hit && b.T < a.T {
		return b
	}
	return a
}

// SurfaceSample is a point drawn on a primitive's surface
type SurfaceSample struct {
	Point    core.Vec3
	Normal   core.Vec3
	Emission core.Vec3
	PDF      float64 // Area density, 1/area for uniform sampling
}
