package main

import (
	"github.com/2Kronos/Texture-v1/log"
	"github.com/urfave/cli"
)

var logger = log.New("texquad")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
