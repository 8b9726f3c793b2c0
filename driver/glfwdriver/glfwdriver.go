// +build !js

// Package glfwdriver hosts the renderer in a desktop window with a GL ES 2.0
// context.
package glfwdriver

import (
	"image"
	"runtime"

	"github.com/2Kronos/Texture-v1/log"
	"github.com/2Kronos/Texture-v1/quad"
	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/mobile/gl"
	"golang.org/x/xerrors"
)

var logger = log.New("glfwdriver")

// Options configure the window.
type Options struct {
	Width  int
	Height int
	Title  string

	// NoWait returns right after the frame is presented instead of
	// waiting for the window to be closed.
	NoWait bool
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 512
	}
	if o.Height <= 0 {
		o.Height = 512
	}
	if o.Title == "" {
		o.Title = "texquad"
	}
	return o
}

type result struct {
	diags quad.Diagnostics
	err   error
}

// Run opens a window, draws img once with r and presents the frame. It must
// be called from the main goroutine.
func Run(r *quad.Renderer, img image.Image, opts Options) (quad.Diagnostics, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	opts = opts.withDefaults()

	if err := glfw.Init(); err != nil {
		return nil, xerrors.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 0)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		// Without a window there is no context to hand to the renderer.
		logger.Errorf("could not create window: %v", err)
		return r.Render(noContext{err: err}, img)
	}
	defer win.Destroy()
	win.MakeContextCurrent()

	glctx, worker := gl.NewContext()

	// Context calls block until the worker runs them on this locked
	// thread, so the pass runs on its own goroutine.
	res := renderOnWorker(worker, glctx.Flush, func() result {
		diags, err := r.Render(quad.ContextSurface(glctx), img)
		return result{diags: diags, err: err}
	})
	if res.err != nil {
		return res.diags, res.err
	}

	win.SwapBuffers()
	logger.Noticef("frame presented in %q (%dx%d)", opts.Title, opts.Width, opts.Height)

	if opts.NoWait {
		return res.diags, nil
	}
	for !win.ShouldClose() {
		glfw.WaitEvents()
	}
	return res.diags, nil
}

type noContext struct {
	err error
}

func (s noContext) Context() (quad.GL, error) {
	return nil, s.err
}
