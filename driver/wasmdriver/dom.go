// +build js,wasm

package wasmdriver

import (
	"syscall/js"

	"golang.org/x/xerrors"
)

var errNoElement = xerrors.New("wasmdriver: element not found")

func document() js.Value {
	return js.Global().Get("document")
}

func querySelector(selector string) (js.Value, error) {
	el := document().Call("querySelector", selector)
	if el.IsNull() || el.IsUndefined() {
		return js.Null(), xerrors.Errorf("%q: %w", selector, errNoElement)
	}
	return el, nil
}

// showElement clears an inline display:none.
func showElement(el js.Value) {
	el.Get("style").Set("display", "")
}
