package integrator

import (
	"fmt"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/material"
	"github.com/df07/go-raytracer/pkg/scene"
)

// PathTracer implements unidirectional Monte-Carlo path tracing with
// next-event estimation against the scene's area lights and Russian
// roulette termination.
//
// Emission found by a bounce ray is counted only for camera rays and after
// delta bounces; everywhere else direct light comes from the explicit light
// sample, so no light path is counted twice.
type PathTracer struct{}

// NewPathTracer creates a path tracing integrator
func NewPathTracer() *PathTracer {
	return &PathTracer{}
}

func (pt *PathTracer) Name() string { return "path" }

func (pt *PathTracer) Validate(s *scene.Scene) error {
	if s.RussianRoulette <= 0 || s.RussianRoulette >= 1 {
		return fmt.Errorf("russian roulette probability must be in (0, 1), got %g", s.RussianRoulette)
	}
	return nil
}

// RayColor computes the radiance along a camera ray
func (pt *PathTracer) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler) core.Vec3 {
	return pt.castRay(ray, s, sampler, 0, false)
}

func (pt *PathTracer) castRay(ray core.Ray, s *scene.Scene, sampler core.Sampler, depth int, afterDelta bool) core.Vec3 {
	hit := s.Intersect(ray, geometry.CullBackFaces)
	if !hit.Hit {
		return s.Background
	}

	if hit.Material.Type() == material.Emission {
		if depth == 0 || afterDelta {
			return hit.Emission
		}
		return core.Vec3{}
	}

	wo := ray.Direction.Negate()
	direct := pt.directLight(hit, wo, s, sampler)

	rr := s.RussianRoulette
	if sampler.Get1D() > rr {
		return direct
	}

	scatter := hit.Material.Sample(wo, hit.Normal, sampler)
	if scatter.Delta {
		origin := offsetOrigin(hit.Point, hit.Normal, scatter.Direction, s.Epsilon)
		li := pt.castRay(core.NewRay(origin, scatter.Direction), s, sampler, depth+1, true)
		return direct.Add(li.MultiplyVec(scatter.Attenuation).Multiply(1 / rr))
	}

	cosTheta := scatter.Direction.Dot(hit.Normal)
	if scatter.PDF <= 0 || cosTheta <= 0 {
		return direct
	}

	origin := hit.Point.Add(hit.Normal.Multiply(s.Epsilon))
	li := pt.castRay(core.NewRay(origin, scatter.Direction), s, sampler, depth+1, false)
	f := hit.Material.Eval(scatter.Direction, wo, hit.Normal, hit.ST)
	return direct.Add(li.MultiplyVec(f).Multiply(cosTheta / scatter.PDF / rr))
}

// directLight estimates radiance reflected toward wo from one area-light
// sample, converting the area density to solid angle with the geometry term
func (pt *PathTracer) directLight(hit geometry.Intersection, wo core.Vec3, s *scene.Scene, sampler core.Sampler) core.Vec3 {
	if hit.Material.Type() != material.DiffuseAndGlossy {
		return core.Vec3{}
	}

	ls, ok := s.SampleLight(sampler)
	if !ok || ls.PDF <= 0 {
		return core.Vec3{}
	}

	origin := hit.Point.Add(hit.Normal.Multiply(s.Epsilon))
	toLight := ls.Point.Subtract(origin)
	dist2 := toLight.LengthSquared()
	ws := toLight.Normalize()

	geo := ws.Dot(hit.Normal) * -ws.Dot(ls.Normal)
	if geo <= geometry.Epsilon {
		return core.Vec3{}
	}

	occluder := s.Intersect(core.NewRay(origin, ws), geometry.CullBackFaces)
	if !occluder.Hit || occluder.Point.Subtract(ls.Point).Length() > s.Epsilon {
		return core.Vec3{}
	}

	f := hit.Material.Eval(ws, wo, hit.Normal, hit.ST)
	return ls.Emission.MultiplyVec(f).Multiply(geo / dist2 / ls.PDF)
}
