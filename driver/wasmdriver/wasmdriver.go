// +build js,wasm

// Package wasmdriver hosts the renderer in a browser page: it draws onto a
// <canvas> with WebGL, textured with the pixels of an <img> element.
package wasmdriver

import (
	"github.com/2Kronos/Texture-v1/log"
	"github.com/2Kronos/Texture-v1/quad"
	"golang.org/x/xerrors"
)

var logger = log.New("wasmdriver")

// Options select the page elements.
type Options struct {
	CanvasSelector string
	ImageSelector  string
}

func (o Options) withDefaults() Options {
	if o.CanvasSelector == "" {
		o.CanvasSelector = "canvas"
	}
	if o.ImageSelector == "" {
		o.ImageSelector = "img"
	}
	return o
}

// Main draws the quad once. Any fatal error panics, halting the program
// the way an uncaught exception halts a page script.
func Main(r *quad.Renderer, opts Options) {
	if err := main(r, opts.withDefaults()); err != nil {
		logger.Error(err)
		panic(err)
	}
}

func main(r *quad.Renderer, opts Options) error {
	canvasEl, err := querySelector(opts.CanvasSelector)
	if err != nil {
		return err
	}
	imgEl, err := querySelector(opts.ImageSelector)
	if err != nil {
		return err
	}
	showElement(imgEl)

	img, err := readImage(imgEl)
	if err != nil {
		return xerrors.Errorf("%s: %w", opts.ImageSelector, err)
	}

	diags, err := r.Render(canvasSurface{canvasEl: canvasEl}, img)
	if err != nil {
		return err
	}
	for _, d := range diags {
		logger.Warningf("drawn with shader diagnostic: %s", d)
	}
	return nil
}
