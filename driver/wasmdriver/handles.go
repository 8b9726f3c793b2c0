package wasmdriver

import (
	"encoding/binary"
	"math"

	"golang.org/x/mobile/gl"
)

// handleTable maps the integer names used by golang.org/x/mobile/gl onto the
// JS objects returned by WebGL. Name 0 is never handed out, matching GL's
// convention for "no object".
type handleTable struct {
	objs []interface{}
}

func (t *handleTable) add(obj interface{}) uint32 {
	t.objs = append(t.objs, obj)
	return uint32(len(t.objs))
}

func (t *handleTable) get(name uint32) interface{} {
	if name == 0 || int(name) > len(t.objs) {
		return nil
	}
	return t.objs[name-1]
}

// attribAt converts a WebGL attribute location into a GL attribute. A
// negative location, for a name the program does not declare, keeps GL's -1.
func attribAt(loc int) gl.Attrib {
	if loc < 0 {
		return gl.Attrib{Value: ^uint(0)}
	}
	return gl.Attrib{Value: uint(loc)}
}

// float32s decodes little endian float32 data produced by f32.Bytes.
func float32s(data []byte) []float32 {
	out := make([]float32, len(data)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[4*i:]))
	}
	return out
}
