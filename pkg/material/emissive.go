package material

import (
	"github.com/df07/go-raytracer/pkg/core"
)

// Emissive represents a light-emitting material
type Emissive struct {
	Radiance core.Vec3
}

// NewEmissive creates a new emissive material
func NewEmissive(radiance core.Vec3) *Emissive {
	return &Emissive{Radiance: radiance}
}

// Type implements Material
func (e *Emissive) Type() Type {
	return Emission
}

// Emit returns the emitted radiance
func (e *Emissive) Emit() core.Vec3 {
	return e.Radiance
}

// Sample never scatters
func (e *Emissive) Sample(wo, normal core.Vec3, sampler core.Sampler) ScatterResult {
	return ScatterResult{}
}

// Eval is zero: lights do not reflect
func (e *Emissive) Eval(wi, wo, normal core.Vec3, st core.Vec2) core.Vec3 {
	return core.Vec3{}
}

// PDF is zero: lights do not reflect
func (e *Emissive) PDF(wi, wo, normal core.Vec3) float64 {
	return 0
}
