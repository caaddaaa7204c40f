package components

import (
	"image"
	"image/color"

	"image-viewer/internal/display"
	"image-viewer/internal/session"
	"image-viewer/internal/views/layout"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

const welcomeText = "Click 'Open' to start"

var (
	canvasBackground = color.NRGBA{R: 0x2b, G: 0x2b, B: 0x2b, A: 0xff}
	welcomeColor     = color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
)

// ImageDisplay is the scrollable dark canvas the rendered bitmap is placed on.
// Viewport and placements are in device pixels.
type ImageDisplay struct {
	container  *fyne.Container
	scroll     *container.Scroll
	wheel      *wheelZoom
	content    *fyne.Container
	image      *canvas.Image
	welcome    *canvas.Text
	background *canvas.Rectangle
	placement  *layout.PlacementLayout
}

func NewImageDisplay() *ImageDisplay {
	id := &ImageDisplay{}
	id.createComponents()
	id.buildLayout()
	return id
}

func (id *ImageDisplay) createComponents() {
	id.image = canvas.NewImageFromImage(nil)
	id.image.FillMode = canvas.ImageFillStretch
	id.image.ScaleMode = canvas.ImageScaleSmooth
	id.image.Hide()

	id.welcome = canvas.NewText(welcomeText, welcomeColor)
	id.welcome.TextSize = 14

	id.background = canvas.NewRectangle(canvasBackground)
	id.placement = layout.NewPlacementLayout()
}

func (id *ImageDisplay) buildLayout() {
	id.content = container.New(id.placement, id.image, id.welcome)
	id.wheel = newWheelZoom(id.content)
	id.scroll = container.NewScroll(id.wheel)
	id.wheel.scroll = id.scroll
	id.container = container.NewStack(id.background, id.scroll)
}

// SetCommandHandler receives the zoom commands raised by Ctrl+mouse wheel.
func (id *ImageDisplay) SetCommandHandler(handler func(session.Command)) {
	id.wheel.onZoom = handler
}

// SetImage shows a bitmap already resampled to placement's render size.
func (id *ImageDisplay) SetImage(img image.Image, placement display.Layout) {
	id.image.Image = img
	id.image.Show()
	id.welcome.Hide()
	id.placement.SetPlacement(placement, id.scale())

	id.refresh()
}

func (id *ImageDisplay) Clear() {
	id.image.Image = nil
	id.image.Hide()
	id.welcome.Show()
	id.placement.Clear()

	id.refresh()
}

func (id *ImageDisplay) refresh() {
	id.image.Refresh()
	id.content.Refresh()
	id.wheel.Refresh()
	id.scroll.Refresh()
}

// Viewport is the visible area of the scroll container in device pixels.
func (id *ImageDisplay) Viewport() display.Viewport {
	size := id.scroll.Size()
	s := id.scale()
	return display.Viewport{Width: int(size.Width * s), Height: int(size.Height * s)}
}

// scale is the pixel density of the canvas showing the display, 1 until it
// is on screen.
func (id *ImageDisplay) scale() float32 {
	app := fyne.CurrentApp()
	if app == nil {
		return 1
	}
	if c := app.Driver().CanvasForObject(id.scroll); c != nil && c.Scale() > 0 {
		return c.Scale()
	}
	return 1
}

func (id *ImageDisplay) GetContainer() *fyne.Container {
	return id.container
}
