package quad

import (
	"fmt"

	"golang.org/x/mobile/gl"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// Topology controls how the flat vertex sequence is grouped into triangles.
type Topology int

const (
	// TriangleList draws every three consecutive vertices as a triangle
	// with a single draw call.
	TriangleList Topology = iota

	// TriangleFanPair draws vertices [0,3) and [3,6) as two separate
	// three-vertex fans.
	TriangleFanPair
)

// fanSize is the number of vertices in each fan of a TriangleFanPair.
const fanSize = 3

var topologyNames = map[Topology]string{
	TriangleList:    "triangles",
	TriangleFanPair: "fan_pair",
}

func (t Topology) String() string {
	if name, ok := topologyNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseTopology returns the topology with the given textual name.
func ParseTopology(name string) (Topology, error) {
	for t, n := range topologyNames {
		if n == name {
			return t, nil
		}
	}
	return 0, xerrors.Errorf("%q: %w", name, ErrUnknownTopology)
}

func (t Topology) MarshalYAML() (interface{}, error) {
	if _, ok := topologyNames[t]; !ok {
		return nil, xerrors.Errorf("%d: %w", int(t), ErrUnknownTopology)
	}
	return t.String(), nil
}

func (t *Topology) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseTopology(name)
	if err != nil {
		return xerrors.Errorf("line %d: %w", value.Line, err)
	}
	*t = parsed
	return nil
}

// checkVertexCount reports whether n vertices can be drawn with t.
func (t Topology) checkVertexCount(n int) error {
	switch t {
	case TriangleList:
		if n < 3 || n%3 != 0 {
			return xerrors.Errorf("%s needs a positive multiple of 3 vertices, got %d: %w", t, n, ErrTopology)
		}
	case TriangleFanPair:
		if n != 2*fanSize {
			return xerrors.Errorf("%s needs exactly %d vertices, got %d: %w", t, 2*fanSize, n, ErrTopology)
		}
	default:
		return xerrors.Errorf("%d: %w", int(t), ErrUnknownTopology)
	}
	return nil
}

// DrawCall is a single DrawArrays invocation.
type DrawCall struct {
	Mode  gl.Enum
	First int
	Count int
}

func (dc DrawCall) String() string {
	mode := fmt.Sprintf("%#x", uint32(dc.Mode))
	switch dc.Mode {
	case gl.TRIANGLES:
		mode = "TRIANGLES"
	case gl.TRIANGLE_FAN:
		mode = "TRIANGLE_FAN"
	}
	return fmt.Sprintf("%s [%d,%d)", mode, dc.First, dc.First+dc.Count)
}

// DrawCalls returns the draw calls issued for n vertices drawn with t.
func DrawCalls(t Topology, n int) []DrawCall {
	switch t {
	case TriangleFanPair:
		return []DrawCall{
			{Mode: gl.TRIANGLE_FAN, First: 0, Count: fanSize},
			{Mode: gl.TRIANGLE_FAN, First: fanSize, Count: fanSize},
		}
	default:
		return []DrawCall{{Mode: gl.TRIANGLES, First: 0, Count: n}}
	}
}
