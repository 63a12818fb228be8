package material

import (
	"math"

	"github.com/df07/go-raytracer/pkg/core"
)

// Phong is the diffuse/glossy material. The Whitted integrator shades it
// with a Lambert term plus a Phong highlight; the path tracer treats it as
// a Lambertian reflector with albedo Kd times the diffuse color.
type Phong struct {
	Diffuse          ColorSource
	Kd               float64 // diffuse coefficient
	Ks               float64 // specular coefficient
	SpecularExponent float64
}

// NewPhong creates a diffuse/glossy material
func NewPhong(diffuse ColorSource, kd, ks, specularExponent float64) *Phong {
	return &Phong{Diffuse: diffuse, Kd: kd, Ks: ks, SpecularExponent: specularExponent}
}

// NewDiffuse creates a purely diffuse material with the given albedo
func NewDiffuse(albedo core.Vec3) *Phong {
	return NewPhong(NewSolidColor(albedo), 1, 0, 0)
}

// Type implements Material
func (p *Phong) Type() Type {
	return DiffuseAndGlossy
}

// DiffuseColor returns the diffuse reflectance at st
func (p *Phong) DiffuseColor(st core.Vec2) core.Vec3 {
	if p.Diffuse == nil {
		return core.Vec3{}
	}
	return p.Diffuse.Evaluate(st)
}

// Sample draws a cosine-weighted direction in the hemisphere around normal
func (p *Phong) Sample(wo, normal core.Vec3, sampler core.Sampler) ScatterResult {
	wi := core.SampleCosineHemisphere(normal, sampler.Get2D())
	return ScatterResult{
		Direction: wi,
		PDF:       p.PDF(wi, wo, normal),
	}
}

// Eval returns albedo/π when both directions are above the surface
func (p *Phong) Eval(wi, wo, normal core.Vec3, st core.Vec2) core.Vec3 {
	if wi.Dot(normal) <= 0 || wo.Dot(normal) <= 0 {
		return core.Vec3{}
	}
	return p.DiffuseColor(st).Multiply(p.Kd / math.Pi)
}

// PDF returns cosθ/π for directions above the surface
func (p *Phong) PDF(wi, wo, normal core.Vec3) float64 {
	cosTheta := wi.Dot(normal)
	if cosTheta <= 0 {
		return 0
	}
	return cosTheta / math.Pi
}
