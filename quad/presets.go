package quad

import (
	"sort"

	"golang.org/x/xerrors"
)

// PresetTriangles is the centered half-size quad drawn as a six-vertex
// triangle list, looked up through the texCoord attribute.
func PresetTriangles() Config {
	return Config{
		Geometry: Geometry{
			Topology: TriangleList,
			Positions: []float32{
				-0.5, -0.5, // bottom left
				-0.5, 0.5, // top left
				0.5, -0.5, // bottom right
				0.5, 0.5, // top right
				0.5, -0.5, // bottom right
				-0.5, 0.5, // top left
			},
			TexCoords: []float32{
				0, 0,
				0, 1,
				1, 0,
				1, 1,
				1, 0,
				0, 1,
			},
		},
		Attributes: Attributes{
			Position: DefaultPositionAttribute,
			TexCoord: "texCoord",
		},
	}
}

// PresetFanPair is the same quad drawn as two three-vertex fans with the
// opposite winding, looked up through the stexCoord attribute.
func PresetFanPair() Config {
	return Config{
		Geometry: Geometry{
			Topology: TriangleFanPair,
			Positions: []float32{
				-0.5, -0.5, // bottom left
				0.5, -0.5, // bottom right
				-0.5, 0.5, // top left

				0.5, 0.5, // top right
				-0.5, 0.5, // top left
				0.5, -0.5, // bottom right
			},
			TexCoords: []float32{
				0, 0,
				1, 0,
				0, 1,

				1, 1,
				0, 1,
				1, 0,
			},
		},
		Attributes: Attributes{
			Position: DefaultPositionAttribute,
			TexCoord: "stexCoord",
		},
	}
}

var presets = map[string]func() Config{
	"triangles": PresetTriangles,
	"fan_pair":  PresetFanPair,
}

// Preset returns the built-in configuration with the given name.
func Preset(name string) (Config, error) {
	fn, ok := presets[name]
	if !ok {
		return Config{}, xerrors.Errorf("%q: %w", name, ErrUnknownPreset)
	}
	return fn(), nil
}

// PresetNames lists the built-in presets in lexical order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
