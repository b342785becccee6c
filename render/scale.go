package render

import (
	"image"

	"github.com/nfnt/resize"

	"dasa.cc/seekarc/ring"
)

// Scale resizes an image drawn at mdpi for density d.
func Scale(img image.Image, d ring.Density) image.Image {
	if d == ring.MDPI {
		return img
	}
	b := img.Bounds()
	w := uint(float64(b.Dx()) * float64(d))
	h := uint(float64(b.Dy()) * float64(d))
	return resize.Resize(w, h, img, resize.Lanczos3)
}
