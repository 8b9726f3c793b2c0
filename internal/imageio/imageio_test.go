package imageio

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func TestDecodeFormats(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	src.SetRGBA(2, 1, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	specs := []struct {
		format string
		encode func(*bytes.Buffer) error
	}{
		{"png", func(b *bytes.Buffer) error { return png.Encode(b, src) }},
		{"bmp", func(b *bytes.Buffer) error { return bmp.Encode(b, src) }},
	}

	for _, spec := range specs {
		var buf bytes.Buffer
		if err := spec.encode(&buf); err != nil {
			t.Fatal(err)
		}

		img, format, err := Decode(&buf)
		if err != nil {
			t.Fatalf("[%s] %v", spec.format, err)
		}
		if format != spec.format {
			t.Fatalf("expected format %q; got %q", spec.format, format)
		}
		if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
			t.Fatalf("[%s] expected 3x2 image; got %v", spec.format, img.Bounds())
		}
		r, g, b, _ := img.At(2, 1).RGBA()
		if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
			t.Fatalf("[%s] expected pixel (10,20,30); got (%d,%d,%d)", spec.format, r>>8, g>>8, b>>8)
		}
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, _, err := Decode(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Fatal("expected an error")
	}
}

func TestLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "imageio")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "img.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewNRGBA(image.Rect(0, 0, 300, 256))); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, _, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 300 {
		t.Fatalf("expected width 300; got %d", img.Bounds().Dx())
	}

	if _, _, err := Load(filepath.Join(dir, "missing.png")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
