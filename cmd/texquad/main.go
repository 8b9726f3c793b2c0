package main

import (
	"os"

	"github.com/urfave/cli"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	configFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "YAML file describing geometry, attributes and shaders",
		},
		cli.StringFlag{
			Name:  "preset, p",
			Value: "triangles",
			Usage: "built-in configuration used when no config file is given",
		},
		cli.BoolFlag{
			Name:  "strict",
			Usage: "treat shader compile and link failures as fatal",
		},
	}

	app := cli.NewApp()
	app.Name = "texquad"
	app.Usage = "draw a single textured quad"
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
			Usage: "open a window and draw the quad textured with an image",
			Description: `
Upload the configured geometry and the image to the GPU, build the shader
program and issue the draw call(s) once. The window stays open until it is
closed.`,
			ArgsUsage: "image_file",
			Flags: append(configFlags,
				cli.IntFlag{
					Name:  "width",
					Value: 512,
					Usage: "window width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 512,
					Usage: "window height",
				},
				cli.StringFlag{
					Name:  "title",
					Value: "texquad",
					Usage: "window title",
				},
				cli.BoolFlag{
					Name:  "no-wait",
					Usage: "exit as soon as the frame is presented",
				},
			),
			Action: RenderQuad,
		},
		{
			Name:      "check",
			Usage:     "validate a configuration and print the texture policy and draw plan",
			ArgsUsage: "[image_file]",
			Flags:     configFlags,
			Action:    CheckQuad,
		},
		{
			Name:      "presets",
			Usage:     "print built-in configurations as YAML",
			ArgsUsage: "[preset_name]",
			Action:    ListPresets,
		},
	}
	return app
}
