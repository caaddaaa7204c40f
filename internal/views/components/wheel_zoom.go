package components

import (
	"image-viewer/internal/session"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// wheelZoom sits between the scroll container and its content. Wheel events
// with the shortcut modifier held (Ctrl, Cmd on macOS) become zoom commands;
// the rest are handed back to the scroll container.
type wheelZoom struct {
	widget.BaseWidget

	content   fyne.CanvasObject
	scroll    *container.Scroll
	modifiers func() fyne.KeyModifier
	onZoom    func(session.Command)
}

func newWheelZoom(content fyne.CanvasObject) *wheelZoom {
	w := &wheelZoom{content: content, modifiers: currentModifiers}
	w.ExtendBaseWidget(w)
	return w
}

func (w *wheelZoom) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(w.content)
}

func (w *wheelZoom) Scrolled(ev *fyne.ScrollEvent) {
	if w.onZoom != nil && ev.Scrolled.DY != 0 && w.modifiers()&fyne.KeyModifierShortcutDefault != 0 {
		if ev.Scrolled.DY > 0 {
			w.onZoom(session.CommandZoomIn)
		} else {
			w.onZoom(session.CommandZoomOut)
		}
		return
	}

	if w.scroll != nil {
		w.scroll.Scrolled(ev)
	}
}

func currentModifiers() fyne.KeyModifier {
	app := fyne.CurrentApp()
	if app == nil {
		return 0
	}
	if d, ok := app.Driver().(desktop.Driver); ok {
		return d.CurrentKeyModifiers()
	}
	return 0
}
