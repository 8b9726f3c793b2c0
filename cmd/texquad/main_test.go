package main

import (
	"bytes"
	"image"
	"image/png"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	app := newApp()
	app.Writer = &buf
	err := app.Run(append([]string{"texquad"}, args...))
	return buf.String(), err
}

func TestCheckFanPairPreset(t *testing.T) {
	out, err := runApp(t, "check", "--preset", "fan_pair")
	if err != nil {
		t.Fatal(err)
	}
	for _, exp := range []string{
		"topology:   fan_pair (6 vertices)",
		"attributes: position, stexCoord",
		"draw:       TRIANGLE_FAN [0,3)",
		"draw:       TRIANGLE_FAN [3,6)",
	} {
		if !strings.Contains(out, exp) {
			t.Fatalf("expected output to contain %q; got:\n%s", exp, out)
		}
	}
}

func TestCheckReportsTexturePolicy(t *testing.T) {
	dir, err := ioutil.TempDir("", "texquad")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "npot.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 300, 256))); err != nil {
		t.Fatal(err)
	}
	f.Close()

	out, err := runApp(t, "check", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "texture:    clamp-to-edge/linear") {
		t.Fatalf("expected clamp policy; got:\n%s", out)
	}
	if !strings.Contains(out, "draw:       TRIANGLES [0,6)") {
		t.Fatalf("expected a single triangle list draw; got:\n%s", out)
	}
}

func TestCheckUnknownPreset(t *testing.T) {
	if _, err := runApp(t, "check", "--preset", "strip"); err == nil {
		t.Fatal("expected an error")
	}
}

func TestPresets(t *testing.T) {
	out, err := runApp(t, "presets")
	if err != nil {
		t.Fatal(err)
	}
	for _, exp := range []string{"# fan_pair", "# triangles", "topology: fan_pair", "texcoord: stexCoord", "---"} {
		if !strings.Contains(out, exp) {
			t.Fatalf("expected output to contain %q; got:\n%s", exp, out)
		}
	}
}
