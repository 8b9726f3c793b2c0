// +build js,wasm

package wasmdriver

import (
	"image"
	"syscall/js"

	"golang.org/x/xerrors"
)

var errImageNotLoaded = xerrors.New("wasmdriver: image element has no pixels")

// readImage copies the decoded pixels of an <img> element by drawing it
// onto a detached 2D canvas. The element must already be loaded.
func readImage(imgEl js.Value) (*image.NRGBA, error) {
	width := imgEl.Get("naturalWidth").Int()
	height := imgEl.Get("naturalHeight").Int()
	if width == 0 || height == 0 {
		return nil, errImageNotLoaded
	}

	canvasEl := document().Call("createElement", "canvas")
	canvasEl.Set("width", width)
	canvasEl.Set("height", height)

	ctx2d := canvasEl.Call("getContext", "2d")
	if ctx2d.IsNull() {
		return nil, xerrors.New("wasmdriver: 2d context unavailable")
	}
	ctx2d.Call("drawImage", imgEl, 0, 0)
	data := ctx2d.Call("getImageData", 0, 0, width, height).Get("data")

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	bytes := js.Global().Get("Uint8Array").New(data.Get("buffer"))
	js.CopyBytesToGo(img.Pix, bytes)
	return img, nil
}
