package display

import (
	"image"

	"github.com/disintegration/imaging"
)

// Render resamples src to the layout's render size with a Lanczos filter.
// Sizes that floor to zero are drawn as a single pixel.
func Render(src image.Image, layout Layout) *image.NRGBA {
	w := max(1, layout.RenderWidth)
	h := max(1, layout.RenderHeight)

	b := src.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return imaging.Clone(src)
	}
	return imaging.Resize(src, w, h, imaging.Lanczos)
}
