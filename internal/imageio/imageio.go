// Package imageio decodes source images for the renderer.
package imageio

import (
	"image"
	"io"
	"os"

	// Registered decoders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"golang.org/x/xerrors"
)

// Decode reads an image in any registered format and returns it together
// with the format name.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", xerrors.Errorf("decode image: %w", err)
	}
	return img, format, nil
}

// Load decodes the image stored at path.
func Load(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", xerrors.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, format, err := Decode(f)
	if err != nil {
		return nil, "", xerrors.Errorf("%s: %w", path, err)
	}
	return img, format, nil
}
