package material

import (
	"math"

	"github.com/df07/go-raytracer/pkg/core"
)

// Dielectric is a transparent material like glass that both reflects and
// refracts
type Dielectric struct {
	IOR float64 // Index of refraction (e.g. 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(ior float64) *Dielectric {
	return &Dielectric{IOR: ior}
}

// Type implements Material
func (d *Dielectric) Type() Type {
	return ReflectionAndRefraction
}

// Sample picks reflection with probability kr and refraction otherwise, so
// the Fresnel weights cancel against the selection probabilities
func (d *Dielectric) Sample(wo, normal core.Vec3, sampler core.Sampler) ScatterResult {
	incident := wo.Negate()
	kr := Fresnel(incident, normal, d.IOR)

	direction := Reflect(incident, normal)
	if kr < 1 && sampler.Get1D() >= kr {
		direction = Refract(incident, normal, d.IOR)
	}

	return ScatterResult{
		Direction:   direction.Normalize(),
		PDF:         1,
		Delta:       true,
		Attenuation: core.NewVec3(1, 1, 1),
	}
}

// Eval is zero for every finite direction pair
func (d *Dielectric) Eval(wi, wo, normal core.Vec3, st core.Vec2) core.Vec3 {
	return core.Vec3{}
}

// PDF is zero for every finite direction pair
func (d *Dielectric) PDF(wi, wo, normal core.Vec3) float64 {
	return 0
}

// Reflect mirrors the incident direction i about n: i - 2(i·n)n
func Reflect(i, n core.Vec3) core.Vec3 {
	return i.Subtract(n.Multiply(2 * i.Dot(n)))
}

// Refract bends the incident direction i through an interface with the
// given index of refraction using Snell's law. The side is inferred from
// the sign of i·n: a positive cosine means the ray is leaving the medium,
// so the indices are swapped and the normal flipped. Total internal
// reflection returns the zero vector.
func Refract(i, n core.Vec3, ior float64) core.Vec3 {
	cosi := clamp(i.Dot(n), -1, 1)
	etai, etat := 1.0, ior
	normal := n
	if cosi < 0 {
		cosi = -cosi
	} else {
		etai, etat = etat, etai
		normal = n.Negate()
	}

	eta := etai / etat
	k := 1 - eta*eta*(1-cosi*cosi)
	if k < 0 {
		return core.Vec3{}
	}
	return i.Multiply(eta).Add(normal.Multiply(eta*cosi - math.Sqrt(k)))
}

// Fresnel returns the fraction of light reflected at a dielectric
// interface, averaging the s- and p-polarized terms. Total internal
// reflection returns 1.
func Fresnel(i, n core.Vec3, ior float64) float64 {
	cosi := clamp(i.Dot(n), -1, 1)
	etai, etat := 1.0, ior
	if cosi > 0 {
		etai, etat = etat, etai
	}

	sint := etai / etat * math.Sqrt(math.Max(0, 1-cosi*cosi))
	if sint >= 1 {
		return 1
	}

	cost := math.Sqrt(math.Max(0, 1-sint*sint))
	cosi = math.Abs(cosi)
	rs := (etat*cosi - etai*cost) / (etat*cosi + etai*cost)
	rp := (etai*cosi - etat*cost) / (etai*cosi + etat*cost)
	return (rs*rs + rp*rp) / 2
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
