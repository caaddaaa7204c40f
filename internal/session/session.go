// Package session holds the viewer state as an explicit value and the
// command handlers that transform it.
package session

import (
	"io"

	"image-viewer/internal/display"
	"image-viewer/internal/models"
	"image-viewer/internal/pipeline"
)

// Session is the complete state of one viewer. Handlers receive a Session and
// return the next one; the zero Session has no image.
type Session struct {
	Image     *models.LoadedImage
	View      models.ViewState
	LastSaved string
}

func New() Session {
	return Session{View: models.NewViewState()}
}

func (s Session) HasImage() bool {
	return s.Image != nil && s.Image.Pixels != nil
}

// Layout places the current image in viewport. ok is false without an image.
func (s Session) Layout(viewport display.Viewport) (layout display.Layout, ok bool) {
	if !s.HasImage() {
		return display.Layout{}, false
	}
	return display.Compute(s.Image.Width, s.Image.Height, s.View.Zoom, viewport), true
}

// Request carries the arguments of one command. Path is the file to open for
// CommandOpen and the output file for CommandConvert. When Writer is set,
// CommandConvert encodes into it instead of creating Path, and closes it.
type Request struct {
	Path     string
	Viewport display.Viewport
	Format   pipeline.Format
	Writer   io.WriteCloser
}
