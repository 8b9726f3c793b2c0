// +build js,wasm

package wasmdriver

import (
	"syscall/js"

	"github.com/2Kronos/Texture-v1/quad"
	"github.com/nuberu/webgl"
)

// canvasSurface yields a WebGL context for a <canvas> element.
type canvasSurface struct {
	canvasEl js.Value
}

func (s canvasSurface) Context() (quad.GL, error) {
	ctx, err := webgl.FromCanvas(s.canvasEl)
	if err != nil {
		return nil, err
	}
	return newGLContext(ctx), nil
}
