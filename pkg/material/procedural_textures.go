package material

import (
	"math"

	"github.com/df07/go-raytracer/pkg/core"
)

// Default checkerboard colors used by the floor of the Whitted scene
var (
	CheckerOrange = core.NewVec3(0.815, 0.235, 0.031)
	CheckerYellow = core.NewVec3(0.937, 0.937, 0.231)
)

// Checkerboard is a procedural XOR pattern over texture coordinates
type Checkerboard struct {
	Scale  float64
	Color1 core.Vec3 // where exactly one of the two fractional tests passes
	Color2 core.Vec3
}

// NewCheckerboard creates a checkerboard with the given colors and a scale of 5
func NewCheckerboard(color1, color2 core.Vec3) *Checkerboard {
	return &Checkerboard{Scale: 5, Color1: color1, Color2: color2}
}

// Evaluate returns Color1 or Color2 depending on which check st falls in
func (c *Checkerboard) Evaluate(st core.Vec2) core.Vec3 {
	s := fract(st.X*c.Scale) > 0.5
	t := fract(st.Y*c.Scale) > 0.5
	if s != t {
		return c.Color1
	}
	return c.Color2
}

// fract returns x - floor(x)
func fract(x float64) float64 {
	return x - math.Floor(x)
}
