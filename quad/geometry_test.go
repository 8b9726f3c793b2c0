package quad

import (
	"encoding/binary"
	"math"
	"testing"

	"golang.org/x/mobile/gl"
	"golang.org/x/xerrors"
)

func TestGeometryValidate(t *testing.T) {
	specs := []struct {
		name string
		geom Geometry
		exp  error
	}{
		{"triangles preset", PresetTriangles().Geometry, nil},
		{"fan pair preset", PresetFanPair().Geometry, nil},
		{"derived texcoords", Geometry{Topology: TriangleList, Positions: []float32{0, 0, 1, 0, 0, 1}}, nil},
		{"odd positions", Geometry{Positions: []float32{0, 0, 1}}, ErrOddCoordinates},
		{"odd texcoords", Geometry{Positions: []float32{0, 0, 1, 0, 0, 1}, TexCoords: []float32{0}}, ErrOddCoordinates},
		{"mismatch", Geometry{Positions: []float32{0, 0, 1, 0, 0, 1}, TexCoords: []float32{0, 0, 1, 1}}, ErrVertexCountMismatch},
		{"empty list", Geometry{Topology: TriangleList}, ErrTopology},
		{"partial triangle", Geometry{Topology: TriangleList, Positions: []float32{0, 0, 1, 0}}, ErrTopology},
		{"fan pair of 3", Geometry{Topology: TriangleFanPair, Positions: []float32{0, 0, 1, 0, 0, 1}}, ErrTopology},
		{"bad topology", Geometry{Topology: Topology(7), Positions: []float32{0, 0, 1, 0, 0, 1}}, ErrUnknownTopology},
	}

	for _, spec := range specs {
		err := spec.geom.Validate()
		if spec.exp == nil && err != nil {
			t.Fatalf("[%s] expected no error; got %v", spec.name, err)
		}
		if spec.exp != nil && !xerrors.Is(err, spec.exp) {
			t.Fatalf("[%s] expected error %v; got %v", spec.name, spec.exp, err)
		}
	}
}

func TestDeriveTexCoords(t *testing.T) {
	got := DeriveTexCoords(PresetTriangles().Geometry.Positions)
	exp := PresetTriangles().Geometry.TexCoords

	if len(got) != len(exp) {
		t.Fatalf("expected %d coordinates; got %d", len(exp), len(got))
	}
	for i := range exp {
		if got[i] != exp[i] {
			t.Fatalf("expected coordinate %d to be %v; got %v", i, exp[i], got[i])
		}
	}
}

func TestDeriveTexCoordsDegenerate(t *testing.T) {
	got := DeriveTexCoords([]float32{1, 1, 1, 1, 1, 1})
	for i, v := range got {
		if v != 0 {
			t.Fatalf("expected coordinate %d to be 0; got %v", i, v)
		}
	}
	if DeriveTexCoords(nil) != nil {
		t.Fatal("expected nil for no positions")
	}
}

func TestFloat32Bytes(t *testing.T) {
	data := float32Bytes([]float32{1.5, -0.5})
	if len(data) != 8 {
		t.Fatalf("expected 8 bytes; got %d", len(data))
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(data[4:])); got != -0.5 {
		t.Fatalf("expected second value to be -0.5; got %v", got)
	}
}

func TestDrawCalls(t *testing.T) {
	list := DrawCalls(TriangleList, 9)
	if len(list) != 1 || list[0] != (DrawCall{Mode: gl.TRIANGLES, First: 0, Count: 9}) {
		t.Fatalf("expected a single 9 vertex triangle draw; got %v", list)
	}

	fans := DrawCalls(TriangleFanPair, 6)
	if len(fans) != 2 || fans[1] != (DrawCall{Mode: gl.TRIANGLE_FAN, First: 3, Count: 3}) {
		t.Fatalf("expected two fans; got %v", fans)
	}
}

func TestParseTopology(t *testing.T) {
	for _, name := range []string{"triangles", "fan_pair"} {
		top, err := ParseTopology(name)
		if err != nil {
			t.Fatal(err)
		}
		if top.String() != name {
			t.Fatalf("expected %q; got %q", name, top.String())
		}
	}
	if _, err := ParseTopology("strip"); !xerrors.Is(err, ErrUnknownTopology) {
		t.Fatalf("expected ErrUnknownTopology; got %v", err)
	}
}

func TestDrawCallString(t *testing.T) {
	dc := DrawCall{Mode: gl.TRIANGLE_FAN, First: 3, Count: 3}
	if got := dc.String(); got != "TRIANGLE_FAN [3,6)" {
		t.Fatalf("expected %q; got %q", "TRIANGLE_FAN [3,6)", got)
	}
}
