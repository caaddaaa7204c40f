package views

import (
	"fmt"
	"image"
	"io"

	"image-viewer/internal/display"
	"image-viewer/internal/pipeline"
	"image-viewer/internal/session"
	"image-viewer/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// MainView is the fyne window content: toolbar, image canvas, status bar,
// main menu and keyboard shortcuts.
type MainView struct {
	window       fyne.Window
	appName      string
	appVersion   string
	toolbar      *components.Toolbar
	imageDisplay *components.ImageDisplay
	statusBar    *components.StatusBar
	content      *fyne.Container

	commandHandler func(session.Command)
}

func NewMainView(window fyne.Window, appName, appVersion string) *MainView {
	mv := &MainView{
		window:     window,
		appName:    appName,
		appVersion: appVersion,
	}

	mv.toolbar = components.NewToolbar()
	mv.imageDisplay = components.NewImageDisplay()
	mv.statusBar = components.NewStatusBar()
	mv.toolbar.SetCommandHandler(mv.emit)
	mv.imageDisplay.SetCommandHandler(mv.emit)

	mv.content = container.NewBorder(
		mv.toolbar.GetContainer(),
		mv.statusBar.GetContainer(),
		nil, nil,
		mv.imageDisplay.GetContainer(),
	)

	window.SetContent(mv.content)
	window.SetMainMenu(mv.buildMainMenu())
	mv.registerShortcuts()

	return mv
}

// SetCommandHandler receives every command raised by toolbar, menu or
// keyboard.
func (mv *MainView) SetCommandHandler(handler func(session.Command)) {
	mv.commandHandler = handler
}

func (mv *MainView) emit(cmd session.Command) {
	if mv.commandHandler != nil {
		mv.commandHandler(cmd)
	}
}

func (mv *MainView) Viewport() display.Viewport {
	return mv.imageDisplay.Viewport()
}

func (mv *MainView) ShowImage(img image.Image, placement display.Layout) {
	mv.imageDisplay.SetImage(img, placement)
}

func (mv *MainView) SetZoomLevel(zoom float64) {
	mv.toolbar.SetZoom(zoom)
}

func (mv *MainView) SetImageInfo(format string, width, height int, fileSize int64) {
	mv.statusBar.SetImageInfo(format, width, height, fileSize)
}

func (mv *MainView) SetDocumentName(name string) {
	if name == "" {
		mv.window.SetTitle(mv.appName)
		return
	}
	mv.window.SetTitle(fmt.Sprintf("%s - %s", mv.appName, name))
}

func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

func (mv *MainView) SelectedFormat() pipeline.Format {
	return mv.toolbar.SelectedFormat()
}

// ShowOpenDialog asks for an image to open. callback is not called when the
// dialog is cancelled.
func (mv *MainView) ShowOpenDialog(callback func(path string)) {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			mv.ShowError("Failed to open image", err)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		callback(path)
	}, mv.window)

	d.SetFilter(storage.NewExtensionFileFilter(pipeline.OpenExtensions))
	d.Show()
}

// ShowSaveDialog asks for the output path of a conversion to f, suggesting
// fileName. callback receives the file the dialog created, or a nil writer
// and the path to create when the chosen name lacked an extension.
func (mv *MainView) ShowSaveDialog(fileName string, f pipeline.Format, callback func(w io.WriteCloser, path string)) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			mv.ShowError("Failed to convert image", err)
			return
		}
		if writer == nil {
			return
		}

		uri := writer.URI()
		w, path, err := saveTarget(writer, uri.Path(), f, func() error {
			return storage.Delete(uri)
		})
		if err != nil {
			mv.ShowError("Failed to convert image", err)
			return
		}
		callback(w, path)
	}, mv.window)

	d.SetFileName(fileName)
	d.SetFilter(storage.NewExtensionFileFilter([]string{f.Extension()}))
	d.Show()
}

// saveTarget keeps the dialog's writer when path already has an extension.
// Otherwise the empty file the dialog created is closed and removed, and the
// conversion goes to path with f's extension appended.
func saveTarget(w io.WriteCloser, path string, f pipeline.Format, remove func() error) (io.WriteCloser, string, error) {
	target := pipeline.WithExtension(path, f)
	if target == path {
		return w, path, nil
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	if err := remove(); err != nil {
		return nil, "", fmt.Errorf("remove %s: %w", path, err)
	}
	return nil, target, nil
}

// ClearImage returns the canvas and status bar to their empty state.
func (mv *MainView) ClearImage() {
	mv.imageDisplay.Clear()
	mv.statusBar.Reset()
	mv.SetDocumentName("")
}

func (mv *MainView) ShowError(title string, err error) {
	dialog.ShowError(fmt.Errorf("%s:\n%w", title, err), mv.window)
}

func (mv *MainView) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, mv.window)
}

func (mv *MainView) ShowWarning(title, message string) {
	dialog.ShowInformation(title, message, mv.window)
}

func (mv *MainView) ShowAbout() {
	message := fmt.Sprintf("%s v%s\n\n"+
		"A lightweight image viewer.\n\n"+
		"Supported formats:\nJPG, JPEG, PNG, WebP, GIF\n\n"+
		"Features:\n- View images with zoom\n- Convert between formats",
		mv.appName, mv.appVersion)
	dialog.ShowInformation("About "+mv.appName, message, mv.window)
}

func (mv *MainView) Show() {
	mv.window.Show()
}
