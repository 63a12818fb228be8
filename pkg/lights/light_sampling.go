package lights

import (
	"sort"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
)

// AreaLightSampler picks points on the union of all emissive primitives
// with density proportional to surface area
type AreaLightSampler struct {
	emitters []geometry.Primitive
	cdf      []float64 // running total of emitter areas
	total    float64
}

// NewAreaLightSampler collects the emissive primitives among prims
func NewAreaLightSampler(prims []geometry.Primitive) *AreaLightSampler {
	s := &AreaLightSampler{}
	for _, p := range prims {
		if !p.HasEmission() {
			continue
		}
		s.total += p.SurfaceArea()
		s.emitters = append(s.emitters, p)
		s.cdf = append(s.cdf, s.total)
	}
	return s
}

// Count returns the number of emissive primitives
func (s *AreaLightSampler) Count() int {
	return len(s.emitters)
}

// TotalArea returns the summed area of all emitters
func (s *AreaLightSampler) TotalArea() float64 {
	return s.total
}

// Sample draws a uniform value in [0, total area), selects the emitter
// whose cumulative-area interval contains it and samples a point on it.
// The returned pdf is 1/total area. It reports false when there are no
// emitters.
func (s *AreaLightSampler) Sample(sampler core.Sampler) (LightSample, bool) {
	if len(s.emitters) == 0 || s.total <= 0 {
		return LightSample{}, false
	}

	target := sampler.Get1D() * s.total
	i := sort.Search(len(s.cdf), func(i int) bool { return s.cdf[i] > target })
	if i >= len(s.emitters) {
		i = len(s.emitters) - 1
	}

	surface := s.emitters[i].Sample(sampler)
	return LightSample{
		Point:    surface.Point,
		Normal:   surface.Normal,
		Emission: surface.Emission,
		PDF:      1 / s.total,
	}, true
}
