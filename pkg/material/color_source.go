package material

import (
	"github.com/df07/go-raytracer/pkg/core"
)

// ColorSource provides spatially-varying diffuse colors for materials
type ColorSource interface {
	// Evaluate returns the color at texture coordinate st
	Evaluate(st core.Vec2) core.Vec3
}

// SolidColor provides a uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) SolidColor {
	return SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of coordinates
func (s SolidColor) Evaluate(core.Vec2) core.Vec3 {
	return s.Color
}
