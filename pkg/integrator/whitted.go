package integrator

import (
	"fmt"
	"math"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/material"
	"github.com/df07/go-raytracer/pkg/scene"
)

// Whitted is a recursive ray tracer: Phong shading under point lights with
// hard shadows, perfect mirror reflection and Fresnel-weighted refraction.
// It is deterministic and ignores the sampler.
type Whitted struct{}

// NewWhitted creates a Whitted-style integrator
func NewWhitted() *Whitted {
	return &Whitted{}
}

func (w *Whitted) Name() string { return "whitted" }

func (w *Whitted) Validate(s *scene.Scene) error {
	if s.MaxDepth < 0 {
		return fmt.Errorf("max depth must be non-negative, got %d", s.MaxDepth)
	}
	return nil
}

// RayColor traces ray starting at depth 0
func (w *Whitted) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler) core.Vec3 {
	return w.castRay(ray, s, 0)
}

func (w *Whitted) castRay(ray core.Ray, s *scene.Scene, depth int) core.Vec3 {
	if depth > s.MaxDepth {
		return s.Background
	}

	hit := s.Intersect(ray, geometry.CullNone)
	if !hit.Hit {
		return s.Background
	}

	dir := ray.Direction
	p, n := hit.Point, hit.Normal
	eps := s.Epsilon

	switch hit.Material.Type() {
	case material.Emission:
		return hit.Emission

	case material.ReflectionAndRefraction:
		ior := indexOfRefraction(hit.Material)
		kr := material.Fresnel(dir, n, ior)

		reflectDir := material.Reflect(dir, n).Normalize()
		reflected := w.castRay(core.NewRay(offsetOrigin(p, n, reflectDir, eps), reflectDir), s, depth+1)
		if kr >= 1 {
			return reflected
		}

		refractDir := material.Refract(dir, n, ior).Normalize()
		refracted := w.castRay(core.NewRay(offsetOrigin(p, n, refractDir, eps), refractDir), s, depth+1)
		return reflected.Multiply(kr).Add(refracted.Multiply(1 - kr))

	case material.Reflection:
		kr := material.Fresnel(dir, n, indexOfRefraction(hit.Material))
		reflectDir := material.Reflect(dir, n).Normalize()
		return w.castRay(core.NewRay(offsetOrigin(p, n, reflectDir, eps), reflectDir), s, depth+1).Multiply(kr)

	default:
		return w.shadePhong(ray, hit, s)
	}
}

// shadePhong sums the diffuse and specular Phong terms of every point light
// that is not occluded. An occluded light contributes nothing.
func (w *Whitted) shadePhong(ray core.Ray, hit geometry.Intersection, s *scene.Scene) core.Vec3 {
	phong, ok := hit.Material.(*material.Phong)
	if !ok {
		return s.Background
	}

	dir := ray.Direction
	p, n := hit.Point, hit.Normal
	shadowOrigin := p.Add(n.Multiply(s.Epsilon))
	if dir.Dot(n) >= 0 {
		shadowOrigin = p.Subtract(n.Multiply(s.Epsilon))
	}

	var lightAmt, specular core.Vec3
	for _, light := range s.Lights {
		toLight := light.Position.Subtract(p)
		lightDist2 := toLight.LengthSquared()
		l := toLight.Normalize()

		shadow := s.Intersect(core.NewRay(shadowOrigin, l), geometry.CullNone)
		if shadow.Hit && shadow.T*shadow.T < lightDist2 {
			continue
		}

		lDotN := math.Max(0, l.Dot(n))
		lightAmt = lightAmt.Add(light.Intensity.Multiply(lDotN))

		r := material.Reflect(l.Negate(), n)
		spec := math.Pow(math.Max(0, -r.Dot(dir)), phong.SpecularExponent)
		specular = specular.Add(light.Intensity.Multiply(spec))
	}

	diffuse := lightAmt.MultiplyVec(phong.DiffuseColor(hit.ST)).Multiply(phong.Kd)
	return diffuse.Add(specular.Multiply(phong.Ks))
}

func indexOfRefraction(m material.Material) float64 {
	switch mat := m.(type) {
	case *material.Dielectric:
		return mat.IOR
	case *material.Mirror:
		return mat.IOR
	default:
		return 1
	}
}
