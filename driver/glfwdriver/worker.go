// +build !js

package glfwdriver

import (
	"golang.org/x/mobile/gl"
)

// renderOnWorker runs render on its own goroutine while the calling thread,
// which owns the context, executes queued GL calls. flush is called after
// render and blocks until the worker has drained the queue, so every call of
// the pass has reached the driver before the result is returned.
func renderOnWorker(worker gl.Worker, flush func(), render func() result) result {
	done := make(chan result, 1)
	go func() {
		res := render()
		flush()
		done <- res
	}()

	workAvailable := worker.WorkAvailable()
	for {
		select {
		case <-workAvailable:
			worker.DoWork()
		case res := <-done:
			return res
		}
	}
}
