package lights

import "github.com/df07/go-raytracer/pkg/core"

// LightSample contains information about a sampled point on an area light
type LightSample struct {
	Point    core.Vec3 // Point on the light source
	Normal   core.Vec3 // Normal at the light sample point
	Emission core.Vec3 // Emitted radiance
	PDF      float64   // Area density over the union of all emitters
}
