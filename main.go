package main

import (
	"os"

	"github.com/urfave/cli"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		os.Exit(1)
	}
}

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-pathtracer"
	app.Usage = "render scenes using Monte-Carlo path tracing"
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
			Usage: "render a built-in scene to an image",
			Description: `
Build the selected scene, trace it tile by tile on all CPUs and write the
result as PNG or PPM depending on the output extension.

Size, samples and depth default to the values recommended by the scene.
Interrupting the render writes the tiles finished so far.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "random",
					Usage: "scene to render, see the scenes command",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "maximum number of bounces",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "render goroutines, 0 uses one per logical CPU",
				},
				cli.IntFlag{
					Name:  "tile",
					Usage: "tile edge length in pixels",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "seed for scene generation and sampling",
				},
				cli.StringFlag{
					Name:  "texture",
					Usage: "PNG or JPEG image for textured scenes",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "output image, .png or .ppm (default output/<scene>/render_<timestamp>.png)",
				},
			},
			Action: renderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: listScenes,
		},
	}

	return app
}
