package main

import (
	"fmt"
	"os"

	"github.com/df07/go-raytracer/cmd"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-raytracer"
	app.Usage = "render scenes with Whitted ray tracing or path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Build one of the built-in scenes, trace it with the selected integrator and
write the frame as binary PPM, or PNG when the output name ends in .png.

Values from the settings file are overridden by flags given on the command
line. fov, depth, rr and epsilon default to the scene's own values.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "settings",
					Usage: "JSON settings file (spp, width, height, n_thrd, ...)",
				},
				cli.StringFlag{
					Name:  "scene, s",
					Value: "cornell",
					Usage: "built-in scene to render",
				},
				cli.StringFlag{
					Name:  "integrator, i",
					Usage: "light transport: whitted or path (default: the scene's choice)",
				},
				cli.IntFlag{
					Name:  "width",
					Value: 784,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 784,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 16,
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "threads, t",
					Usage: "worker goroutines (default: logical cpu count)",
				},
				cli.Float64Flag{
					Name:  "fov",
					Usage: "vertical field of view in degrees",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "maximum recursion depth of the whitted integrator",
				},
				cli.Float64Flag{
					Name:  "rr",
					Usage: "russian roulette continuation probability",
				},
				cli.Float64Flag{
					Name:  "epsilon",
					Usage: "ray offset and visibility tolerance",
				},
				cli.Float64Flag{
					Name:  "gamma",
					Value: 0.6,
					Usage: "exponent applied before quantizing to 8 bits",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 1,
					Usage: "base seed for the per-band samplers",
				},
				cli.StringFlag{
					Name:  "obj",
					Usage: "wavefront obj mesh for scenes that need one",
				},
				cli.StringFlag{
					Name:  "texture",
					Usage: "png or jpeg image for the whitted floor",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "binary.ppm",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:   "sysinfo",
			Usage:  "show cpu and memory information",
			Action: cmd.SystemInfo,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
