package material

import (
	"github.com/df07/go-raytracer/pkg/core"
)

// Mirror reflects light specularly, weighted by the Fresnel reflectance of
// a dielectric interface with the given index of refraction
type Mirror struct {
	IOR float64
}

// NewMirror creates a new mirror material
func NewMirror(ior float64) *Mirror {
	return &Mirror{IOR: ior}
}

// Type implements Material
func (m *Mirror) Type() Type {
	return Reflection
}

// Sample returns the mirror direction with the Fresnel reflectance as weight
func (m *Mirror) Sample(wo, normal core.Vec3, sampler core.Sampler) ScatterResult {
	incident := wo.Negate()
	return ScatterResult{
		Direction:   Reflect(incident, normal).Normalize(),
		PDF:         1,
		Delta:       true,
		Attenuation: grey(Fresnel(incident, normal, m.IOR)),
	}
}

// Eval is zero for every finite direction pair
func (m *Mirror) Eval(wi, wo, normal core.Vec3, st core.Vec2) core.Vec3 {
	return core.Vec3{}
}

// PDF is zero for every finite direction pair
func (m *Mirror) PDF(wi, wo, normal core.Vec3) float64 {
	return 0
}

func grey(v float64) core.Vec3 {
	return core.NewVec3(v, v, v)
}
