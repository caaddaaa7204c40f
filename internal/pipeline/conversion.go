package pipeline

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"image-viewer/internal/models"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/soniakeys/quant/median"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

const (
	JPEGQuality = 95
	WebPQuality = 95

	// PaletteSize is the adaptive palette size used for GIF output.
	PaletteSize = 256
)

var flattenBackground = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// PrepareForEncode applies the color-mode policy of format f to img and
// returns the image that should be handed to Encode. img is never modified.
//
//	PNG, WebP  alpha preserved
//	JPEG       alpha composited onto white, RGB
//	GIF        alpha dropped, adaptive palette of at most 256 colors
//	BMP        RGBA sources composited onto white, RGB
func PrepareForEncode(img *models.LoadedImage, f Format) (image.Image, error) {
	if img == nil || img.Pixels == nil {
		return nil, errors.New("no image data to encode")
	}

	switch f {
	case FormatPNG, FormatWebP:
		return img.Pixels, nil
	case FormatJPEG:
		return FlattenOnWhite(img.Pixels), nil
	case FormatGIF:
		return QuantizeAdaptive(img.Pixels, PaletteSize), nil
	case FormatBMP:
		if img.HasAlpha() {
			return FlattenOnWhite(img.Pixels), nil
		}
		return img.Pixels, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
}

// Encode writes an image already prepared by PrepareForEncode.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	case FormatWebP:
		data, err := webp.EncodeRGBA(straightRGBA(img), WebPQuality)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case FormatGIF:
		return gif.Encode(w, img, &gif.Options{NumColors: PaletteSize})
	case FormatBMP:
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
}

// straightRGBA exposes non-premultiplied pixels under the *image.RGBA type,
// which the webp encoder hands to libwebp unchanged. libwebp expects straight
// alpha; letting the encoder convert an NRGBA itself premultiplies it.
func straightRGBA(img image.Image) *image.RGBA {
	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		nrgba = imaging.Clone(img)
	}
	return &image.RGBA{Pix: nrgba.Pix, Stride: nrgba.Stride, Rect: nrgba.Rect}
}

// FlattenOnWhite composites src over an opaque white canvas using src's own
// alpha as the blend mask. The result is fully opaque.
func FlattenOnWhite(src image.Image) *image.NRGBA {
	b := src.Bounds()
	background := imaging.New(b.Dx(), b.Dy(), flattenBackground)
	return imaging.Overlay(background, src, image.Pt(0, 0), 1.0)
}

// QuantizeAdaptive maps src onto a median-cut palette of at most colors
// entries. Alpha is discarded and the color channels are kept as they are.
func QuantizeAdaptive(src image.Image, colors int) *image.Paletted {
	opaque := imaging.Clone(src)
	forceOpaque(opaque)

	paletted := median.Quantizer(colors).Paletted(opaque)
	draw.Draw(paletted, opaque.Bounds(), opaque, image.Point{}, draw.Src)
	return paletted
}
