package renderer

import (
	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/scene"
)

// Camera generates primary rays through pixel centres for a scene's view
type Camera struct {
	eye     core.Vec3
	forward float64
	mirrorX bool
	scale   float64
	aspect  float64
	width   int
	height  int
}

// NewCamera creates a pinhole camera from the scene's view and image size
func NewCamera(s *scene.Scene) *Camera {
	return &Camera{
		eye:     s.View.Eye,
		forward: s.View.Forward,
		mirrorX: s.View.MirrorX,
		scale:   s.Scale(),
		aspect:  s.AspectRatio(),
		width:   s.Width,
		height:  s.Height,
	}
}

// GetRay returns the ray through the centre of pixel (i, j), with j=0 at the
// top row
func (c *Camera) GetRay(i, j int) core.Ray {
	x := (2*(float64(i)+0.5)/float64(c.width) - 1) * c.scale * c.aspect
	y := (1 - 2*(float64(j)+0.5)/float64(c.height)) * c.scale
	if c.mirrorX {
		x = -x
	}
	return core.NewRay(c.eye, core.NewVec3(x, y, c.forward))
}
