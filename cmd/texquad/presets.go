package main

import (
	"fmt"

	"github.com/2Kronos/Texture-v1/quad"
	"github.com/urfave/cli"
)

// ListPresets prints one or all built-in configurations as YAML.
func ListPresets(ctx *cli.Context) error {
	setupLogging(ctx)

	names := quad.PresetNames()
	if ctx.NArg() > 0 {
		names = ctx.Args()
	}

	for i, name := range names {
		cfg, err := quad.Preset(name)
		if err != nil {
			return err
		}
		data, err := quad.MarshalConfig(cfg)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(ctx.App.Writer, "---")
		}
		fmt.Fprintf(ctx.App.Writer, "# %s\n%s", name, data)
	}
	return nil
}
