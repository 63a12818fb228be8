package lights

import "github.com/df07/go-raytracer/pkg/core"

// PointLight is an infinitesimal light used for analytic direct shading
type PointLight struct {
	Position  core.Vec3
	Intensity core.Vec3
}

// NewPointLight creates a point light with a grey intensity
func NewPointLight(position core.Vec3, intensity float64) PointLight {
	return PointLight{Position: position, Intensity: core.NewVec3(intensity, intensity, intensity)}
}
