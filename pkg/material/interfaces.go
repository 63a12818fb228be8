package material

import (
	"github.com/df07/go-raytracer/pkg/core"
)

// Type enumerates the closed set of material variants
type Type int

const (
	DiffuseAndGlossy Type = iota
	Reflection
	ReflectionAndRefraction
	Emission
)

func (t Type) String() string {
	switch t {
	case DiffuseAndGlossy:
		return "diffuse"
	case Reflection:
		return "mirror"
	case ReflectionAndRefraction:
		return "glass"
	case Emission:
		return "emissive"
	}
	return "unknown"
}

// Material describes how a surface responds to light.
//
// Directions follow one convention throughout: wo points from the surface
// toward the viewer and wi points from the surface toward the light or the
// next bounce. Both are unit length.
type Material interface {
	Type() Type

	// Sample importance-samples a scattering direction wi for the given wo
	Sample(wo, normal core.Vec3, sampler core.Sampler) ScatterResult

	// Eval evaluates the BRDF for the pair (wi, wo) at texture coordinate st.
	// Delta materials return zero.
	Eval(wi, wo, normal core.Vec3, st core.Vec2) core.Vec3

	// PDF returns the density Sample would assign to wi
	PDF(wi, wo, normal core.Vec3) float64
}

// Emitter is implemented by materials that emit light
type Emitter interface {
	Emit() core.Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Direction   core.Vec3 // Sampled wi
	PDF         float64   // Solid-angle density, 0 when sampling failed
	Delta       bool      // Direction was chosen from a delta distribution
	Attenuation core.Vec3 // Throughput weight for delta scatters
}

// IsEmissive reports whether m emits light
func IsEmissive(m Material) bool {
	if m == nil {
		return false
	}
	_, ok := m.(Emitter)
	return ok && m.Type() == Emission
}
