package scene

import (
	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/material"
)

// cornellLightEmission blends three measured spectral peaks of the classic
// Cornell box light into RGB
var cornellLightEmission = core.NewVec3(0.747+0.058, 0.747+0.258, 0.747).Multiply(8).
	Add(core.NewVec3(0.740+0.287, 0.740+0.160, 0.740).Multiply(15.6)).
	Add(core.NewVec3(0.737+0.642, 0.737+0.159, 0.737).Multiply(18.4))

// NewCornellScene creates the classic Cornell box with quad walls, two
// boxes and a ceiling area light
func NewCornellScene(opts BuildOptions) (*Scene, error) {
	width, height := imageSize(opts, 784, 784)
	s := New("cornell", width, height)
	s.FOV = 40
	s.View = View{Eye: core.NewVec3(278, 273, -800), Forward: 1, MirrorX: true}
	s.Background = core.Vec3{}
	s.RussianRoulette = 0.8
	s.Epsilon = 1e-4
	s.SamplesPerPixel = 16

	red := material.NewDiffuse(core.NewVec3(0.63, 0.065, 0.05))
	green := material.NewDiffuse(core.NewVec3(0.14, 0.45, 0.091))
	white := material.NewDiffuse(core.NewVec3(0.725, 0.71, 0.68))
	light := material.NewEmissive(cornellLightEmission)

	// Cornell box dimensions (standard 555x555x555 units), normals facing in
	boxSize := 555.0
	s.Add(
		// floor
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), white),
		// ceiling
		geometry.NewQuad(core.NewVec3(0, boxSize, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white),
		// back wall
		geometry.NewQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(0, boxSize, 0), core.NewVec3(boxSize, 0, 0), white),
		// left wall (green), x=0
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), green),
		// right wall (red), x=555
		geometry.NewQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), core.NewVec3(0, boxSize, 0), red),
	)

	s.Add(
		geometry.NewBox(core.NewVec3(185, 82.5, 169), core.NewVec3(82.5, 82.5, 82.5), -0.314, white),
		geometry.NewBox(core.NewVec3(368, 165, 351), core.NewVec3(82.5, 165, 82.5), 0.3, white),
	)

	// Area light just below the ceiling, facing down
	s.Add(geometry.NewQuad(core.NewVec3(213, 554, 227), core.NewVec3(130, 0, 0), core.NewVec3(0, 0, 105), light))
	return s, nil
}
