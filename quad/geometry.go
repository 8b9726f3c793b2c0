package quad

import (
	"encoding/binary"

	"golang.org/x/mobile/exp/f32"
	"golang.org/x/xerrors"
)

// coordsPerVertex is the number of float components of every position and
// texture coordinate.
const coordsPerVertex = 2

// Geometry is the vertex data of the quad.
type Geometry struct {
	Topology  Topology  `yaml:"topology"`
	Positions []float32 `yaml:"positions,flow"`

	// TexCoords holds one pair per position. When empty, it is derived
	// from the positions' bounding box.
	TexCoords []float32 `yaml:"texcoords,flow,omitempty"`
}

// VertexCount returns the number of position pairs.
func (g Geometry) VertexCount() int {
	return len(g.Positions) / coordsPerVertex
}

// Validate checks the pairing and topology constraints of g.
func (g Geometry) Validate() error {
	if len(g.Positions)%coordsPerVertex != 0 {
		return xerrors.Errorf("positions: %w", ErrOddCoordinates)
	}
	if len(g.TexCoords)%coordsPerVertex != 0 {
		return xerrors.Errorf("texcoords: %w", ErrOddCoordinates)
	}
	if len(g.TexCoords) != 0 && len(g.TexCoords) != len(g.Positions) {
		return xerrors.Errorf("%d positions, %d texcoords: %w",
			len(g.Positions)/coordsPerVertex, len(g.TexCoords)/coordsPerVertex, ErrVertexCountMismatch)
	}
	return g.Topology.checkVertexCount(g.VertexCount())
}

// withTexCoords returns a copy of g whose texture coordinates are populated.
func (g Geometry) withTexCoords() Geometry {
	out := g
	out.Positions = append([]float32(nil), g.Positions...)
	if len(g.TexCoords) != 0 {
		out.TexCoords = append([]float32(nil), g.TexCoords...)
		return out
	}
	out.TexCoords = DeriveTexCoords(g.Positions)
	return out
}

// DeriveTexCoords maps the bounding box of positions onto [0,1]x[0,1] and
// returns the texture coordinate of every vertex. A degenerate axis maps
// to 0.
func DeriveTexCoords(positions []float32) []float32 {
	if len(positions) < coordsPerVertex {
		return nil
	}
	minX, minY := positions[0], positions[1]
	maxX, maxY := minX, minY
	for i := 0; i+1 < len(positions); i += coordsPerVertex {
		x, y := positions[i], positions[i+1]
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}

	out := make([]float32, len(positions)-len(positions)%coordsPerVertex)
	for i := 0; i+1 < len(positions); i += coordsPerVertex {
		out[i] = normalize(positions[i], minX, maxX)
		out[i+1] = normalize(positions[i+1], minY, maxY)
	}
	return out
}

func normalize(v, lo, hi float32) float32 {
	if hi == lo {
		return 0
	}
	return (v - lo) / (hi - lo)
}

// float32Bytes encodes values the way GL expects them in an array buffer.
func float32Bytes(values []float32) []byte {
	return f32.Bytes(binary.LittleEndian, values...)
}
