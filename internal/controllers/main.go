package controllers

import (
	"errors"
	"fmt"
	"image"
	"io"

	"image-viewer/internal/display"
	"image-viewer/internal/logger"
	"image-viewer/internal/pipeline"
	"image-viewer/internal/session"
)

// View is what the controller needs from the window.
type View interface {
	Viewport() display.Viewport
	ShowImage(img image.Image, placement display.Layout)
	SetZoomLevel(zoom float64)
	SetImageInfo(format string, width, height int, fileSize int64)
	SetDocumentName(name string)
	UpdateStatus(status string)
	SelectedFormat() pipeline.Format
	ShowOpenDialog(callback func(path string))
	ShowSaveDialog(fileName string, f pipeline.Format, callback func(w io.WriteCloser, path string))
	ClearImage()
	ShowError(title string, err error)
	ShowInfo(title, message string)
	ShowWarning(title, message string)
}

// MainController owns the current session and turns user commands into
// dispatcher calls. All methods run on the UI goroutine.
type MainController struct {
	dispatcher *session.Dispatcher
	session    session.Session
	view       View
	logger     logger.Logger
}

func NewMainController(dispatcher *session.Dispatcher, log logger.Logger) *MainController {
	return &MainController{
		dispatcher: dispatcher,
		session:    session.New(),
		logger:     log,
	}
}

func (mc *MainController) SetView(view View) {
	mc.view = view
}

func (mc *MainController) Session() session.Session {
	return mc.session
}

// HandleCommand is the single entry point for toolbar, menu and shortcut
// actions.
func (mc *MainController) HandleCommand(cmd session.Command) {
	mc.logger.Debug("MainController", "command received", map[string]interface{}{
		"command": cmd.String(),
	})

	switch cmd {
	case session.CommandOpen:
		mc.view.ShowOpenDialog(mc.OpenPath)
	case session.CommandConvert:
		mc.requestConvert()
	default:
		mc.run(cmd, session.Request{Viewport: mc.view.Viewport()})
	}
}

// OpenPath opens path directly, as the command-line argument does.
func (mc *MainController) OpenPath(path string) {
	if err := mc.run(session.CommandOpen, session.Request{Path: path, Viewport: mc.view.Viewport()}); err != nil {
		if !mc.session.HasImage() {
			mc.view.ClearImage()
		}
		mc.view.ShowError("Failed to open image", err)
		return
	}

	img := mc.session.Image
	mc.view.SetDocumentName(img.Name())
	mc.view.UpdateStatus(img.Path)
	mc.view.SetImageInfo(img.Format, img.Width, img.Height, img.FileSize)
}

func (mc *MainController) requestConvert() {
	if !mc.session.HasImage() {
		mc.view.ShowWarning("Warning", "No image loaded to convert.")
		return
	}

	f := mc.view.SelectedFormat()
	name := pipeline.DefaultOutputName(mc.session.Image.Path, f)
	mc.view.ShowSaveDialog(name, f, func(w io.WriteCloser, path string) {
		mc.Convert(w, path, f)
	})
}

// Convert saves the current image as f and reports the outcome. A non-nil w
// is the file the save dialog created for path and is written and closed;
// otherwise path, with f's extension appended when it has none, is created.
func (mc *MainController) Convert(w io.WriteCloser, path string, f pipeline.Format) {
	req := session.Request{Path: path, Format: f, Writer: w}
	if w == nil {
		req.Path = pipeline.WithExtension(path, f)
		path = req.Path
	}

	if err := mc.run(session.CommandConvert, req); err != nil {
		if errors.Is(err, session.ErrNoImage) {
			mc.view.ShowWarning("Warning", "No image loaded to convert.")
			return
		}
		mc.view.ShowError("Failed to convert image", err)
		return
	}

	mc.view.ShowInfo("Success", fmt.Sprintf("Image saved as:\n%s", path))
	mc.view.UpdateStatus(fmt.Sprintf("Saved: %s", path))
}

func (mc *MainController) run(cmd session.Command, req session.Request) error {
	next, err := mc.dispatcher.Dispatch(cmd, mc.session, req)
	if err != nil {
		return err
	}

	mc.session = next
	if cmd != session.CommandConvert {
		mc.refresh()
	}
	return nil
}

// refresh re-renders the bitmap for the current zoom and viewport.
func (mc *MainController) refresh() {
	placement, ok := mc.session.Layout(mc.view.Viewport())
	if !ok {
		return
	}

	bitmap := display.Render(mc.session.Image.Pixels, placement)
	mc.view.ShowImage(bitmap, placement)
	mc.view.SetZoomLevel(mc.session.View.Zoom)
}
