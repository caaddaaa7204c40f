package display

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitZoomExample(t *testing.T) {
	zoom := FitZoom(1000, 500, Viewport{Width: 800, Height: 600})
	assert.InDelta(t, 0.76, zoom, 1e-9)

	layout := Compute(1000, 500, zoom, Viewport{Width: 800, Height: 600})
	assert.Equal(t, 760, layout.RenderWidth)
	assert.Equal(t, 380, layout.RenderHeight)
}

func TestFitZoomNeverUpscales(t *testing.T) {
	zoom := FitZoom(100, 50, Viewport{Width: 1920, Height: 1080})
	assert.InDelta(t, FitMargin, zoom, 1e-9)
}

func TestFitZoomStaysInsideViewport(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		w, h := 1+r.Intn(8000), 1+r.Intn(8000)
		vp := Viewport{Width: 50 + r.Intn(3000), Height: 50 + r.Intn(3000)}

		zoom := FitZoom(w, h, vp)
		require.LessOrEqual(t, zoom, 1.0)
		require.GreaterOrEqual(t, zoom, MinZoom)

		if zoom > MinZoom {
			layout := Compute(w, h, zoom, vp)
			require.LessOrEqual(t, layout.RenderWidth, vp.Width, "w=%d h=%d vp=%v", w, h, vp)
			require.LessOrEqual(t, layout.RenderHeight, vp.Height, "w=%d h=%d vp=%v", w, h, vp)
		}
	}
}

func TestFitZoomEmptyViewport(t *testing.T) {
	assert.Equal(t, ActualZoom, FitZoom(640, 480, Viewport{}))
	assert.Equal(t, ActualZoom, FitZoom(0, 480, Viewport{Width: 10, Height: 10}))
}

func TestFitZoomClampsTinyViewport(t *testing.T) {
	assert.Equal(t, MinZoom, FitZoom(10000, 10000, Viewport{Width: 10, Height: 10}))
}

func TestZoomSequencesStayBounded(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	zoom := ActualZoom
	for i := 0; i < 10000; i++ {
		if r.Intn(2) == 0 {
			zoom = ZoomIn(zoom)
		} else {
			zoom = ZoomOut(zoom)
		}
		require.GreaterOrEqual(t, zoom, MinZoom)
		require.LessOrEqual(t, zoom, MaxZoom)
	}

	for i := 0; i < 50; i++ {
		zoom = ZoomIn(zoom)
	}
	assert.Equal(t, MaxZoom, zoom)

	for i := 0; i < 50; i++ {
		zoom = ZoomOut(zoom)
	}
	assert.Equal(t, MinZoom, zoom)
}

func TestZoomStep(t *testing.T) {
	assert.InDelta(t, 1.25, ZoomIn(1.0), 1e-12)
	assert.InDelta(t, 0.8, ZoomOut(1.0), 1e-12)
}

func TestComputeCentersSmallImage(t *testing.T) {
	layout := Compute(200, 100, 1.0, Viewport{Width: 800, Height: 600})

	assert.Equal(t, Layout{
		RenderWidth:  200,
		RenderHeight: 100,
		OriginX:      400,
		OriginY:      300,
		ScrollWidth:  800,
		ScrollHeight: 600,
	}, layout)
}

func TestComputeAnchorsLargeImage(t *testing.T) {
	layout := Compute(1000, 900, 2.0, Viewport{Width: 800, Height: 600})

	assert.Equal(t, 2000, layout.RenderWidth)
	assert.Equal(t, 1800, layout.RenderHeight)
	assert.Equal(t, 1000, layout.OriginX)
	assert.Equal(t, 900, layout.OriginY)
	assert.Equal(t, 2000, layout.ScrollWidth)
	assert.Equal(t, 1800, layout.ScrollHeight)
}

func TestComputeMixedAxes(t *testing.T) {
	layout := Compute(1600, 100, 1.0, Viewport{Width: 800, Height: 600})

	assert.Equal(t, 800, layout.OriginX)
	assert.Equal(t, 300, layout.OriginY)
	assert.Equal(t, 1600, layout.ScrollWidth)
	assert.Equal(t, 600, layout.ScrollHeight)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, MinZoom, Clamp(0))
	assert.Equal(t, MinZoom, Clamp(-3))
	assert.Equal(t, MaxZoom, Clamp(99))
	assert.Equal(t, 2.5, Clamp(2.5))
}

func TestRenderResamplesToLayout(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 100, 50))
	for y := 0; y < 50; y++ {
		for x := 0; x < 100; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: 200, G: 10, B: 10, A: 255})
		}
	}

	out := Render(src, Compute(100, 50, 0.5, Viewport{Width: 800, Height: 600}))
	assert.Equal(t, image.Rect(0, 0, 50, 25), out.Bounds())

	c := out.NRGBAAt(25, 12)
	assert.InDelta(t, 200, int(c.R), 2)
	assert.Equal(t, uint8(255), c.A)
}

func TestRenderNeverEmpty(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	out := Render(src, Compute(4, 4, MinZoom, Viewport{Width: 10, Height: 10}))
	assert.Equal(t, image.Rect(0, 0, 1, 1), out.Bounds())
}

func TestRenderActualSizeCopies(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.SetNRGBA(1, 1, color.NRGBA{R: 1, G: 2, B: 3, A: 4})

	out := Render(src, Compute(3, 2, 1.0, Viewport{}))
	assert.Equal(t, src.Pix, out.Pix)

	out.SetNRGBA(1, 1, color.NRGBA{})
	assert.Equal(t, uint8(4), src.NRGBAAt(1, 1).A)
}
