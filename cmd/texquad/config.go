package main

import (
	"github.com/2Kronos/Texture-v1/quad"
	"github.com/urfave/cli"
)

// loadRenderer builds a renderer from the config or preset flags.
func loadRenderer(ctx *cli.Context) (*quad.Renderer, error) {
	var (
		cfg quad.Config
		err error
	)
	if path := ctx.String("config"); path != "" {
		logger.Infof("loading configuration from %s", path)
		cfg, err = quad.LoadConfig(path)
	} else {
		logger.Infof("using preset %s", ctx.String("preset"))
		cfg, err = quad.Preset(ctx.String("preset"))
	}
	if err != nil {
		return nil, err
	}

	var opts []quad.Option
	if ctx.Bool("strict") {
		opts = append(opts, quad.WithStrict(true))
	}
	return quad.New(cfg, opts...)
}
