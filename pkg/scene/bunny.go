package scene

import (
	"errors"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/lights"
	"github.com/df07/go-raytracer/pkg/loaders"
	"github.com/df07/go-raytracer/pkg/material"
)

// NewBunnyScene loads the mesh at opts.OBJPath, scales it by 60 and shades
// it with a grey Phong material under two point lights
func NewBunnyScene(opts BuildOptions) (*Scene, error) {
	if opts.OBJPath == "" {
		return nil, errors.New("bunny scene requires an OBJ file")
	}

	mesh, err := loaders.LoadOBJ(opts.OBJPath, loaders.OBJOptions{
		Scale:    60,
		Material: material.NewPhong(material.NewSolidColor(core.NewVec3(0.5, 0.5, 0.5)), 0.6, 0, 0),
	})
	if err != nil {
		return nil, err
	}

	width, height := imageSize(opts, 1280, 960)
	s := New("bunny", width, height)
	s.FOV = 90
	s.View = View{Eye: core.NewVec3(-1, 5, 10), Forward: -1}
	s.MaxDepth = 5
	s.Epsilon = 1e-5
	s.Add(mesh)
	s.AddLight(lights.NewPointLight(core.NewVec3(-20, 70, 20), 1))
	s.AddLight(lights.NewPointLight(core.NewVec3(20, 70, 20), 1))
	return s, nil
}
