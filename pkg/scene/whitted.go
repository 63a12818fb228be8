package scene

import (
	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/lights"
	"github.com/df07/go-raytracer/pkg/loaders"
	"github.com/df07/go-raytracer/pkg/material"
)

// NewWhittedScene creates a textured floor with a diffuse box, a glass box
// and a mirror box lit by two point lights. The floor shows a checkerboard
// unless opts.TexturePath names an image.
func NewWhittedScene(opts BuildOptions) (*Scene, error) {
	width, height := imageSize(opts, 1280, 960)
	s := New("whitted", width, height)
	s.FOV = 90
	s.View = View{Eye: core.NewVec3(0, 0, 0), Forward: -1}
	s.Background = core.NewVec3(0.235294, 0.67451, 0.843137)
	s.MaxDepth = 5
	s.Epsilon = 1e-5

	var floorColor material.ColorSource = material.NewCheckerboard(material.CheckerYellow, material.CheckerOrange)
	if opts.TexturePath != "" {
		tex, err := loaders.LoadTexture(opts.TexturePath)
		if err != nil {
			return nil, err
		}
		floorColor = tex
	}
	floorMat := material.NewPhong(floorColor, 0.8, 0.2, 25)
	floor := geometry.NewTriangleMesh(
		[]core.Vec3{
			core.NewVec3(-5, -3, -6),
			core.NewVec3(5, -3, -6),
			core.NewVec3(5, -3, -16),
			core.NewVec3(-5, -3, -16),
		},
		[]int{0, 1, 3, 1, 2, 3},
		floorMat,
		&geometry.TriangleMeshOptions{ST: []core.Vec2{
			core.NewVec2(0, 0),
			core.NewVec2(1, 0),
			core.NewVec2(1, 1),
			core.NewVec2(0, 1),
		}},
	)

	diffuse := material.NewPhong(material.NewSolidColor(core.NewVec3(0.6, 0.7, 0.8)), 0.8, 0.2, 25)
	glass := material.NewDielectric(1.5)
	mirror := material.NewMirror(1.5)

	s.Add(
		floor,
		geometry.NewBox(core.NewVec3(-1, 0, -12), core.NewVec3(1, 1, 1), 0.5, diffuse),
		geometry.NewBox(core.NewVec3(0.5, -0.5, -8), core.NewVec3(0.75, 0.75, 0.75), -0.3, glass),
		geometry.NewBox(core.NewVec3(2.8, -1.8, -11), core.NewVec3(0.8, 1.2, 0.8), 0.7, mirror),
	)

	s.AddLight(lights.NewPointLight(core.NewVec3(-20, 70, 20), 0.5))
	s.AddLight(lights.NewPointLight(core.NewVec3(30, 50, -12), 0.5))
	return s, nil
}
