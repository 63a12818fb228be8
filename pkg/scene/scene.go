package scene

import (
	"errors"
	"math"
	"time"

	"github.com/df07/go-raytracer/internal/log"
	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/lights"
)

var logger = log.New("scene")

// ErrUnknownScene is returned when looking up a scene name that is not registered
var ErrUnknownScene = errors.New("scene: unknown scene")

// View describes where primary rays start and how image-plane coordinates
// map onto camera space: the direction for NDC (x, y) is
// (±x·scale·aspect, y·scale, Forward), with x negated when MirrorX is set.
type View struct {
	Eye     core.Vec3
	Forward float64 // -1 looks down -Z, +1 down +Z
	MirrorX bool
}

// Scene contains all the elements needed for rendering. It is assembled by
// a builder, finalized with Build and then only read during rendering.
type Scene struct {
	Name string

	Width  int
	Height int
	FOV    float64 // vertical field of view in degrees
	View   View

	Background      core.Vec3
	MaxDepth        int     // recursion limit of the Whitted integrator
	RussianRoulette float64 // path continuation probability
	Epsilon         float64 // ray origin offset and visibility tolerance
	SamplesPerPixel int

	Primitives []geometry.Primitive
	Lights     []lights.PointLight

	bvh          *geometry.BVH
	lightSampler *lights.AreaLightSampler
}

// New creates an empty scene with the given image size and default
// parameters
func New(name string, width, height int) *Scene {
	return &Scene{
		Name:            name,
		Width:           width,
		Height:          height,
		FOV:             90,
		View:            View{Forward: -1},
		Background:      core.NewVec3(0.235294, 0.67451, 0.843137),
		MaxDepth:        5,
		RussianRoulette: 0.8,
		Epsilon:         1e-4,
		SamplesPerPixel: 1,
	}
}

// Add appends primitives to the scene
func (s *Scene) Add(prims ...geometry.Primitive) {
	s.Primitives = append(s.Primitives, prims...)
}

// AddLight appends a point light to the scene
func (s *Scene) AddLight(light lights.PointLight) {
	s.Lights = append(s.Lights, light)
}

// Build constructs the top-level BVH and the area-light sampler. It must be
// called once after the last primitive is added and before rendering.
func (s *Scene) Build() {
	start := time.Now()
	s.bvh = geometry.NewBVH(s.Primitives)
	s.lightSampler = lights.NewAreaLightSampler(s.Primitives)

	stats := s.bvh.Stats()
	logger.Debugf("BVH build time for %d primitives: %d ms (nodes: %d, leaves: %d, max depth: %d)",
		stats.Primitives, time.Since(start).Nanoseconds()/1e6, stats.TotalNodes, stats.LeafNodes, stats.MaxDepth)
	logger.Debugf("%d emissive primitives with total area %.3f", s.lightSampler.Count(), s.lightSampler.TotalArea())
}

// Intersect returns the nearest hit along ray or a miss. An unbuilt or
// empty scene never reports a hit.
func (s *Scene) Intersect(ray core.Ray, cull geometry.CullMode) geometry.Intersection {
	if s.bvh == nil {
		return geometry.Miss()
	}
	return s.bvh.Intersect(ray, cull)
}

// SampleLight picks a point on the emissive surfaces with density
// proportional to area. It reports false when the scene has no emitters.
func (s *Scene) SampleLight(sampler core.Sampler) (lights.LightSample, bool) {
	if s.lightSampler == nil {
		return lights.LightSample{}, false
	}
	return s.lightSampler.Sample(sampler)
}

// Scale returns tan(fov/2), the half-height of the image plane at distance 1
func (s *Scene) Scale() float64 {
	return math.Tan(s.FOV * math.Pi / 360)
}

// AspectRatio returns width/height
func (s *Scene) AspectRatio() float64 {
	return float64(s.Width) / float64(s.Height)
}

// BVHStats returns statistics for the top-level hierarchy
func (s *Scene) BVHStats() geometry.BVHStats {
	if s.bvh == nil {
		return geometry.BVHStats{}
	}
	return s.bvh.Stats()
}

// TriangleCount returns the number of triangles across all primitives
func (s *Scene) TriangleCount() int {
	count := 0
	for _, p := range s.Primitives {
		switch prim := p.(type) {
		case *geometry.TriangleMesh:
			count += prim.TriangleCount()
		case *geometry.Triangle:
			count++
		}
	}
	return count
}
