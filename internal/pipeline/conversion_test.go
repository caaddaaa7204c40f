package pipeline

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"image-viewer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xwebp "golang.org/x/image/webp"
)

func loadedRGBA(w, h int) *models.LoadedImage {
	return &models.LoadedImage{
		Pixels: gradientNRGBA(w, h),
		Mode:   models.ModeRGBA,
		Width:  w,
		Height: h,
		Path:   "/photos/source.png",
		Format: "PNG",
	}
}

func TestPNGRoundTripPreservesPixelsAndAlpha(t *testing.T) {
	dir := t.TempDir()
	srcPath := writePNG(t, dir, "in.png", gradientNRGBA(32, 16))

	loader := newTestLoader()
	original, err := loader.Load(srcPath)
	require.NoError(t, err)

	outPath := filepath.Join(dir, "out.png")
	require.NoError(t, newTestSaver().SaveToPath(outPath, original, FormatPNG))

	reloaded, err := loader.Load(outPath)
	require.NoError(t, err)
	assert.Equal(t, models.ModeRGBA, reloaded.Mode)
	assert.Equal(t, original.Pixels.Pix, reloaded.Pixels.Pix)
}

func TestJPEGOutputIsOpaque(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "out.jpg")

	require.NoError(t, newTestSaver().SaveToPath(outPath, loadedRGBA(32, 32), FormatJPEG))

	decoded, format := decodeFile(t, outPath)
	assert.Equal(t, "jpeg", format)
	assert.True(t, decoded.(interface{ Opaque() bool }).Opaque())

	// Column 0 is fully transparent and must come out white.
	r, g, b, a := decoded.At(0, 16).RGBA()
	assert.Equal(t, uint32(0xffff), a)
	assert.Greater(t, r>>8, uint32(235))
	assert.Greater(t, g>>8, uint32(235))
	assert.Greater(t, b>>8, uint32(235))
}

func TestFlattenOnWhite(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 0, G: 0, B: 0, A: 0})
	src.SetNRGBA(1, 0, color.NRGBA{R: 0, G: 0, B: 0, A: 255})
	src.SetNRGBA(2, 0, color.NRGBA{R: 0, G: 0, B: 0, A: 128})

	out := FlattenOnWhite(src)

	assert.True(t, out.Opaque())
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, out.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 0, G: 0, B: 0, A: 255}, out.NRGBAAt(1, 0))
	assert.InDelta(t, 127, int(out.NRGBAAt(2, 0).R), 2)
}

func TestGIFOutputHasAtMost256Colors(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "out.gif")

	require.NoError(t, newTestSaver().SaveToPath(outPath, loadedRGBA(64, 64), FormatGIF))

	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer f.Close()

	decoded, err := gif.DecodeAll(f)
	require.NoError(t, err)
	require.Len(t, decoded.Image, 1)
	assert.LessOrEqual(t, len(decoded.Image[0].Palette), 256)
	assert.Equal(t, image.Rect(0, 0, 64, 64), decoded.Image[0].Bounds())
}

func TestQuantizeAdaptiveDropsAlpha(t *testing.T) {
	paletted := QuantizeAdaptive(gradientNRGBA(40, 40), PaletteSize)

	assert.LessOrEqual(t, len(paletted.Palette), PaletteSize)
	for _, c := range paletted.Palette {
		_, _, _, a := c.RGBA()
		assert.Equal(t, uint32(0xffff), a)
	}
}

func TestBMPFlattensRGBA(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "out.bmp")

	require.NoError(t, newTestSaver().SaveToPath(outPath, loadedRGBA(8, 8), FormatBMP))

	decoded, format := decodeFile(t, outPath)
	assert.Equal(t, "bmp", format)
	r, g, b, a := decoded.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), a)
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b})
}

func TestBMPKeepsRGBSource(t *testing.T) {
	img := loadedRGBA(4, 4)
	img.Mode = models.ModeRGB
	forceOpaque(img.Pixels)

	prepared, err := PrepareForEncode(img, FormatBMP)
	require.NoError(t, err)
	assert.Same(t, img.Pixels, prepared)
}

func TestWebPOutputDecodes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newTestSaver().SaveToWriter(&buf, "", loadedRGBA(24, 12), FormatWebP))

	decoded, format, err := image.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, "webp", format)
	assert.Equal(t, image.Rect(0, 0, 24, 12), decoded.Bounds())
}

func TestWebPKeepsStraightColorUnderPartialAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	fill := color.NRGBA{R: 200, G: 100, B: 50, A: 128}
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			src.SetNRGBA(x, y, fill)
		}
	}
	img := &models.LoadedImage{Pixels: src, Mode: models.ModeRGBA, Width: 32, Height: 32}

	var buf bytes.Buffer
	require.NoError(t, newTestSaver().SaveToWriter(&buf, "", img, FormatWebP))

	decoded, err := xwebp.Decode(&buf)
	require.NoError(t, err)

	got := color.NRGBAModel.Convert(decoded.At(16, 16)).(color.NRGBA)
	assert.InDelta(t, 200, int(got.R), 8)
	assert.InDelta(t, 100, int(got.G), 8)
	assert.InDelta(t, 50, int(got.B), 8)
	assert.InDelta(t, 128, int(got.A), 2)
}

func TestPrepareForEncodePreservesAlphaForPNGAndWebP(t *testing.T) {
	img := loadedRGBA(4, 4)
	for _, f := range []Format{FormatPNG, FormatWebP} {
		prepared, err := PrepareForEncode(img, f)
		require.NoError(t, err)
		assert.Same(t, img.Pixels, prepared, f.String())
	}
}

func TestPrepareForEncodeDoesNotMutateSource(t *testing.T) {
	img := loadedRGBA(8, 8)
	before := append([]byte(nil), img.Pixels.Pix...)

	for _, f := range OutputFormats() {
		_, err := PrepareForEncode(img, f)
		require.NoError(t, err)
	}
	assert.Equal(t, before, img.Pixels.Pix)
}

func TestPrepareForEncodeErrors(t *testing.T) {
	_, err := PrepareForEncode(nil, FormatPNG)
	assert.Error(t, err)

	_, err = PrepareForEncode(loadedRGBA(2, 2), Format(99))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestSaveToPathReportsSaveError(t *testing.T) {
	missingDir := filepath.Join(t.TempDir(), "nope", "out.png")

	err := newTestSaver().SaveToPath(missingDir, loadedRGBA(2, 2), FormatPNG)

	var saveErr *SaveError
	require.ErrorAs(t, err, &saveErr)
	assert.Equal(t, missingDir, saveErr.Path)
	assert.Equal(t, FormatPNG, saveErr.Format)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveToPathRejectsUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xyz")
	err := newTestSaver().SaveToPath(path, loadedRGBA(2, 2), Format(42))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
