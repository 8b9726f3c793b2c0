package quad

import (
	"image"

	"golang.org/x/image/draw"
)

// ToNRGBA returns img as an *image.NRGBA anchored at the origin. Texels keep
// straight (non-premultiplied) alpha. An NRGBA image already anchored at the
// origin is returned as is.
func ToNRGBA(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Rect.Min == (image.Point{}) {
		return nrgba
	}
	b := img.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	return nrgba
}

// FlipRows returns a copy of src with its rows in reverse order. Image rows
// are stored top-down while GL samples level 0 bottom-up.
func FlipRows(src *image.NRGBA) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	rowLen := 4 * b.Dx()
	for y := 0; y < b.Dy(); y++ {
		srcOff := src.PixOffset(b.Min.X, b.Max.Y-1-y)
		dstOff := dst.PixOffset(0, y)
		copy(dst.Pix[dstOff:dstOff+rowLen], src.Pix[srcOff:srcOff+rowLen])
	}
	return dst
}

// MipChain returns level 0 followed by every successive half-size level
// down to 1x1, each downsampled bilinearly from the previous one.
func MipChain(level0 *image.NRGBA) []*image.NRGBA {
	chain := []*image.NRGBA{level0}
	cur := level0
	for {
		w, h := cur.Bounds().Dx(), cur.Bounds().Dy()
		if w <= 1 && h <= 1 {
			return chain
		}
		next := image.NewNRGBA(image.Rect(0, 0, half(w), half(h)))
		draw.BiLinear.Scale(next, next.Bounds(), cur, cur.Bounds(), draw.Src, nil)
		chain = append(chain, next)
		cur = next
	}
}

func half(n int) int {
	if n <= 1 {
		return 1
	}
	return n / 2
}
