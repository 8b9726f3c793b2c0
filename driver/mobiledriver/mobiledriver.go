// +build darwin linux windows

// Package mobiledriver hosts the renderer in a golang.org/x/mobile app. The
// quad is drawn on the first paint of a visible surface.
package mobiledriver

import (
	"image"

	"github.com/2Kronos/Texture-v1/log"
	"github.com/2Kronos/Texture-v1/quad"
	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/gl"
)

var logger = log.New("mobiledriver")

// Main runs the app event loop. load is called once, when the first frame
// is about to be drawn.
func Main(r *quad.Renderer, load func() (image.Image, error)) {
	app.Main(func(a app.App) {
		var (
			glctx gl.Context
			drawn bool
		)
		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					glctx, _ = e.DrawContext.(gl.Context)
					a.Send(paint.Event{})
				case lifecycle.CrossOff:
					glctx = nil
				}
			case paint.Event:
				if e.External || drawn || glctx == nil {
					continue
				}
				drawn = true
				draw(r, glctx, load)
				a.Publish()
			}
		}
	})
}

func draw(r *quad.Renderer, glctx gl.Context, load func() (image.Image, error)) {
	img, err := load()
	if err != nil {
		logger.Errorf("could not load image: %v", err)
		return
	}

	diags, err := r.Render(quad.ContextSurface(glctx), img)
	if err != nil {
		logger.Errorf("render failed: %v", err)
		return
	}
	for _, d := range diags {
		logger.Warningf("drawn with shader diagnostic: %s", d)
	}
}
