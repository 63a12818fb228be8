package integrator

import (
	"errors"
	"fmt"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/scene"
)

// ErrUnknownIntegrator is returned by New for an unrecognized name
var ErrUnknownIntegrator = errors.New("integrator: unknown integrator")

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// Name identifies the integrator in logs and on the command line
	Name() string
	// Validate checks that the scene parameters the integrator relies on
	// are usable. It is called once before rendering.
	Validate(s *scene.Scene) error
	// RayColor computes the radiance arriving along the reverse of ray.
	// Implementations must be safe for concurrent use with distinct samplers.
	RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler) core.Vec3
}

// New returns the integrator registered under name: "whitted" or "path"
func New(name string) (Integrator, error) {
	switch name {
	case "whitted":
		return NewWhitted(), nil
	case "path":
		return NewPathTracer(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownIntegrator, name)
	}
}

// offsetOrigin nudges p off the surface to the side dir points to
func offsetOrigin(p, normal, dir core.Vec3, eps float64) core.Vec3 {
	if dir.Dot(normal) < 0 {
		return p.Subtract(normal.Multiply(eps))
	}
	return p.Add(normal.Multiply(eps))
}
