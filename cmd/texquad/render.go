package main

import (
	"github.com/2Kronos/Texture-v1/driver/glfwdriver"
	"github.com/2Kronos/Texture-v1/internal/imageio"
	"github.com/urfave/cli"
)

// RenderQuad draws the configured quad in a window.
func RenderQuad(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return cli.NewExitError("render: expected exactly one image file", 1)
	}

	r, err := loadRenderer(ctx)
	if err != nil {
		return err
	}

	img, format, err := imageio.Load(ctx.Args().First())
	if err != nil {
		return err
	}
	logger.Infof("loaded %s image %dx%d", format, img.Bounds().Dx(), img.Bounds().Dy())

	diags, err := glfwdriver.Run(r, img, glfwdriver.Options{
		Width:  ctx.Int("width"),
		Height: ctx.Int("height"),
		Title:  ctx.String("title"),
		NoWait: ctx.Bool("no-wait"),
	})
	if err != nil {
		return err
	}
	if len(diags) != 0 {
		logger.Warningf("frame drawn with %d shader diagnostic(s)", len(diags))
	}
	return nil
}
