package components

import (
	"fmt"

	"image-viewer/internal/pipeline"
	"image-viewer/internal/session"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the open, zoom and convert controls.
type Toolbar struct {
	container     *fyne.Container
	openButton    *widget.Button
	zoomOutButton *widget.Button
	zoomInButton  *widget.Button
	fitButton     *widget.Button
	actualButton  *widget.Button
	convertButton *widget.Button
	zoomLabel     *widget.Label
	formatSelect  *widget.Select

	commandHandler func(session.Command)
	currentFormat  pipeline.Format
}

func NewToolbar() *Toolbar {
	toolbar := &Toolbar{currentFormat: pipeline.FormatPNG}
	toolbar.createComponents()
	toolbar.buildLayout()
	return toolbar
}

func (t *Toolbar) createComponents() {
	t.openButton = t.commandButton("Open", session.CommandOpen)
	t.openButton.Importance = widget.HighImportance

	t.zoomOutButton = t.commandButton("-", session.CommandZoomOut)
	t.zoomInButton = t.commandButton("+", session.CommandZoomIn)
	t.fitButton = t.commandButton("Fit", session.CommandFit)
	t.actualButton = t.commandButton("1:1", session.CommandActualSize)
	t.convertButton = t.commandButton("Convert & Save", session.CommandConvert)

	t.zoomLabel = widget.NewLabel("100%")

	options := make([]string, 0, len(pipeline.OutputFormats()))
	for _, f := range pipeline.OutputFormats() {
		options = append(options, f.String())
	}

	t.formatSelect = widget.NewSelect(options, func(name string) {
		if f, err := pipeline.ParseFormat(name); err == nil {
			t.currentFormat = f
		}
	})
	t.formatSelect.SetSelected(t.currentFormat.String())
}

func (t *Toolbar) commandButton(label string, cmd session.Command) *widget.Button {
	return widget.NewButton(label, func() {
		if t.commandHandler != nil {
			t.commandHandler(cmd)
		}
	})
}

func (t *Toolbar) buildLayout() {
	zoomSection := container.NewHBox(
		widget.NewLabel("Zoom:"),
		t.zoomOutButton,
		t.zoomLabel,
		t.zoomInButton,
		t.fitButton,
		t.actualButton,
	)

	convertSection := container.NewHBox(
		widget.NewLabel("Convert to:"),
		t.formatSelect,
		t.convertButton,
	)

	t.container = container.NewHBox(
		t.openButton,
		widget.NewSeparator(),
		zoomSection,
		widget.NewSeparator(),
		convertSection,
	)
}

func (t *Toolbar) SetCommandHandler(handler func(session.Command)) {
	t.commandHandler = handler
}

// SetZoom shows zoom as a whole percentage, truncated.
func (t *Toolbar) SetZoom(zoom float64) {
	t.zoomLabel.SetText(fmt.Sprintf("%d%%", int(zoom*100)))
}

func (t *Toolbar) SelectedFormat() pipeline.Format {
	return t.currentFormat
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}
