// +build js,wasm

// Command texquad-wasm draws the textured quad on the page's <canvas> using
// the page's <img> element. The configuration can be chosen with a
// ?preset=fan_pair query parameter.
package main

import (
	"net/url"
	"strings"
	"syscall/js"

	"github.com/2Kronos/Texture-v1/driver/wasmdriver"
	"github.com/2Kronos/Texture-v1/log"
	"github.com/2Kronos/Texture-v1/quad"
)

var logger = log.New("texquad-wasm")

func main() {
	name := quad.DefaultPreset
	search := strings.TrimPrefix(js.Global().Get("location").Get("search").String(), "?")
	if q, err := url.ParseQuery(search); err == nil && q.Get("preset") != "" {
		name = q.Get("preset")
	}

	cfg, err := quad.Preset(name)
	if err != nil {
		logger.Error(err)
		panic(err)
	}
	r, err := quad.New(cfg)
	if err != nil {
		logger.Error(err)
		panic(err)
	}

	wasmdriver.Main(r, wasmdriver.Options{})
}
