package layout

import (
	"image-viewer/internal/display"

	"fyne.io/fyne/v2"
)

// PlacementLayout sizes the first object to a computed display.Layout and
// places it by the same origin rule against the live container size, so the
// bitmap stays centred when the window is resized. Every other object is
// centred in the visible area. Without a placement the first object is
// treated like the others.
type PlacementLayout struct {
	placement display.Layout
	scale     float32
	placed    bool
}

func NewPlacementLayout() *PlacementLayout {
	return &PlacementLayout{}
}

// SetPlacement applies a layout computed in device pixels. scale is the
// canvas pixel density used to convert it to fyne units.
func (pl *PlacementLayout) SetPlacement(placement display.Layout, scale float32) {
	if scale <= 0 {
		scale = 1
	}
	pl.placement = placement
	pl.scale = scale
	pl.placed = true
}

func (pl *PlacementLayout) Clear() {
	pl.placement = display.Layout{}
	pl.placed = false
}

func (pl *PlacementLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	for i, obj := range objects {
		if i == 0 && pl.placed {
			w, h := pl.renderSize()
			obj.Resize(fyne.NewSize(w, h))
			originX := max(w/2, containerSize.Width/2)
			originY := max(h/2, containerSize.Height/2)
			obj.Move(fyne.NewPos(originX-w/2, originY-h/2))
			continue
		}

		objMin := obj.MinSize()
		obj.Resize(objMin)
		obj.Move(fyne.NewPos((containerSize.Width-objMin.Width)/2, (containerSize.Height-objMin.Height)/2))
	}
}

// MinSize is the render size of the placement. An enclosing scroll container
// stretches its content to at least the viewport, which makes the scroll
// extent max(render, viewport).
func (pl *PlacementLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if pl.placed {
		w, h := pl.renderSize()
		return fyne.NewSize(w, h)
	}

	minSize := fyne.NewSize(0, 0)
	for _, obj := range objects {
		minSize = minSize.Max(obj.MinSize())
	}
	return minSize
}

func (pl *PlacementLayout) renderSize() (float32, float32) {
	return float32(pl.placement.RenderWidth) / pl.scale, float32(pl.placement.RenderHeight) / pl.scale
}
