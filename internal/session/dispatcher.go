package session

import (
	"errors"
	"fmt"
	"io"

	"image-viewer/internal/logger"
	"image-viewer/internal/models"
	"image-viewer/internal/pipeline"
)

var (
	ErrNoImage        = errors.New("no image loaded to convert")
	ErrUnknownCommand = errors.New("unknown command")
)

type ImageLoader interface {
	Load(path string) (*models.LoadedImage, error)
}

type ImageSaver interface {
	SaveToPath(path string, img *models.LoadedImage, f pipeline.Format) error
	SaveToWriter(w io.Writer, path string, img *models.LoadedImage, f pipeline.Format) error
}

// Handler executes one command. On error it must return the input session.
type Handler func(s Session, req Request) (Session, error)

// Dispatcher maps commands to handlers.
type Dispatcher struct {
	handlers map[Command]Handler
	loader   ImageLoader
	saver    ImageSaver
	logger   logger.Logger
}

func NewDispatcher(loader ImageLoader, saver ImageSaver, log logger.Logger) *Dispatcher {
	d := &Dispatcher{
		loader: loader,
		saver:  saver,
		logger: log,
	}

	d.handlers = map[Command]Handler{
		CommandOpen:       d.open,
		CommandZoomIn:     zoomIn,
		CommandZoomOut:    zoomOut,
		CommandFit:        fit,
		CommandActualSize: actualSize,
		CommandConvert:    d.convert,
	}

	return d
}

func (d *Dispatcher) Dispatch(cmd Command, s Session, req Request) (Session, error) {
	h, ok := d.handlers[cmd]
	if !ok {
		return s, fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}

	next, err := h(s, req)
	if err != nil {
		d.logger.Error("Dispatcher", err, map[string]interface{}{
			"command": cmd.String(),
			"path":    req.Path,
		})
		return s, err
	}

	d.logger.Debug("Dispatcher", "command completed", map[string]interface{}{
		"command": cmd.String(),
		"zoom":    next.View.Zoom,
		"source":  next.View.Source.String(),
	})
	return next, nil
}
