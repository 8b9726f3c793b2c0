package main

import (
	"fmt"
	"io"

	"github.com/2Kronos/Texture-v1/internal/imageio"
	"github.com/2Kronos/Texture-v1/quad"
	"github.com/urfave/cli"
)

// CheckQuad validates the configuration and prints what render would do,
// without touching the GPU.
func CheckQuad(ctx *cli.Context) error {
	setupLogging(ctx)

	r, err := loadRenderer(ctx)
	if err != nil {
		return err
	}
	w := ctx.App.Writer

	if ctx.NArg() > 0 {
		path := ctx.Args().First()
		img, format, err := imageio.Load(path)
		if err != nil {
			return err
		}
		width, height := img.Bounds().Dx(), img.Bounds().Dy()
		fmt.Fprintf(w, "image:      %s (%s, %dx%d)\n", path, format, width, height)
		fmt.Fprintf(w, "texture:    %s\n", quad.TexturePolicyFor(width, height))
	}

	printPlan(w, r.Config())
	return nil
}

func printPlan(w io.Writer, cfg quad.Config) {
	geom := cfg.Geometry
	fmt.Fprintf(w, "topology:   %s (%d vertices)\n", geom.Topology, geom.VertexCount())
	fmt.Fprintf(w, "attributes: %s, %s\n", cfg.Attributes.Position, cfg.Attributes.TexCoord)
	for _, dc := range quad.DrawCalls(geom.Topology, geom.VertexCount()) {
		fmt.Fprintf(w, "draw:       %s\n", dc)
	}
}
