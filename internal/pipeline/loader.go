package pipeline

import (
	"bufio"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"image-viewer/internal/logger"
	"image-viewer/internal/models"
	"image-viewer/internal/timing"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Loader decodes image files into normalized LoadedImages.
type Loader struct {
	logger        logger.Logger
	timingTracker *timing.Tracker
}

func NewLoader(log logger.Logger, tracker *timing.Tracker) *Loader {
	return &Loader{logger: log, timingTracker: tracker}
}

// Load opens path and decodes it. Every failure is a *LoadError.
func (l *Loader) Load(path string) (*models.LoadedImage, error) {
	if strings.TrimSpace(path) == "" {
		return nil, &LoadError{Path: path, Err: ErrEmptyPath}
	}

	ctx := l.timingTracker.StartTiming("load")

	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	var size int64
	if info, err := f.Stat(); err == nil {
		size = info.Size()
	}

	img, err := l.Decode(bufio.NewReader(f), path)
	if err != nil {
		return nil, err
	}
	img.FileSize = size

	l.logger.Info("ImageLoader", "image loaded", map[string]interface{}{
		"path":     path,
		"width":    img.Width,
		"height":   img.Height,
		"mode":     img.Mode.String(),
		"format":   img.Format,
		"duration": l.timingTracker.EndTiming(ctx).String(),
	})

	return img, nil
}

// Decode reads one image from r. Multi-frame formats yield their first frame,
// which is what the registered decoders return from image.Decode.
func (l *Loader) Decode(r io.Reader, path string) (*models.LoadedImage, error) {
	decoded, format, err := image.Decode(r)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("decode: %w", err)}
	}

	bounds := decoded.Bounds()
	if bounds.Empty() {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("decode: image has no pixels")}
	}

	pixels, mode := Normalize(decoded)

	l.logger.Debug("ImageLoader", "image decoded", map[string]interface{}{
		"decoder":     format,
		"source_type": fmt.Sprintf("%T", decoded),
		"mode":        mode.String(),
	})

	return &models.LoadedImage{
		Pixels: pixels,
		Mode:   mode,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Path:   path,
		Format: formatTag(format, path),
	}, nil
}

// Normalize converts any decoded image to an NRGBA buffer and classifies it.
// Alpha-capable and paletted sources become RGBA; everything else is RGB.
// Opaque *image.RGBA buffers, which the PNG decoder produces for truecolor
// files without alpha, count as RGB.
func Normalize(src image.Image) (*image.NRGBA, models.ColorMode) {
	mode := models.ModeRGB
	switch m := src.(type) {
	case *image.NRGBA, *image.NRGBA64, *image.NYCbCrA, *image.Paletted, *image.Alpha, *image.Alpha16:
		mode = models.ModeRGBA
	case *image.RGBA:
		if !m.Opaque() {
			mode = models.ModeRGBA
		}
	case *image.RGBA64:
		if !m.Opaque() {
			mode = models.ModeRGBA
		}
	}

	pixels := imaging.Clone(src)
	if mode == models.ModeRGB {
		forceOpaque(pixels)
	}
	return pixels, mode
}

func forceOpaque(img *image.NRGBA) {
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
}

func formatTag(decoder, path string) string {
	if decoder != "" {
		return strings.ToUpper(decoder)
	}
	return strings.ToUpper(strings.TrimPrefix(filepath.Ext(path), "."))
}
