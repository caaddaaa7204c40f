// Package display computes how a loaded image is zoomed and placed inside a
// scrollable viewport, and renders the resampled bitmap.
package display

import "math"

const (
	MinZoom    = 0.1
	MaxZoom    = 5.0
	ZoomStep   = 1.25
	ActualZoom = 1.0

	// FitMargin leaves 5% of the viewport free around a fitted image.
	FitMargin = 0.95
)

// floorEpsilon absorbs float error in products such as 1000 * (0.8*0.95).
const floorEpsilon = 1e-9

// Viewport is the visible canvas area in pixels.
type Viewport struct {
	Width  int
	Height int
}

// Empty reports whether the viewport has not been laid out yet.
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// Layout is the result of placing a zoomed image in a viewport. OriginX and
// OriginY are the centre of the rendered bitmap in canvas coordinates.
type Layout struct {
	RenderWidth  int
	RenderHeight int
	OriginX      int
	OriginY      int
	ScrollWidth  int
	ScrollHeight int
}

// Compute places an image of the given native size at zoom inside viewport.
// Smaller images are centred; larger ones are anchored top-left so the
// scroll region starts at the image edge.
func Compute(width, height int, zoom float64, viewport Viewport) Layout {
	rw := scaled(width, zoom)
	rh := scaled(height, zoom)

	return Layout{
		RenderWidth:  rw,
		RenderHeight: rh,
		OriginX:      max(rw/2, viewport.Width/2),
		OriginY:      max(rh/2, viewport.Height/2),
		ScrollWidth:  max(rw, viewport.Width),
		ScrollHeight: max(rh, viewport.Height),
	}
}

func scaled(size int, zoom float64) int {
	return int(math.Floor(float64(size)*zoom + floorEpsilon))
}

// FitZoom returns the zoom that fits the image into the viewport without
// upscaling past 100%, minus the fit margin.
func FitZoom(width, height int, viewport Viewport) float64 {
	if viewport.Empty() || width <= 0 || height <= 0 {
		return ActualZoom
	}

	wr := float64(viewport.Width) / float64(width)
	hr := float64(viewport.Height) / float64(height)

	return Clamp(math.Min(math.Min(wr, hr), 1.0) * FitMargin)
}

func ZoomIn(zoom float64) float64 {
	return Clamp(zoom * ZoomStep)
}

func ZoomOut(zoom float64) float64 {
	return Clamp(zoom / ZoomStep)
}

// Clamp bounds zoom to [MinZoom, MaxZoom]. NaN collapses to ActualZoom.
func Clamp(zoom float64) float64 {
	if math.IsNaN(zoom) {
		return ActualZoom
	}
	return math.Max(MinZoom, math.Min(MaxZoom, zoom))
}
