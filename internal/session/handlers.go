package session

import (
	"image-viewer/internal/display"
	"image-viewer/internal/models"
	"image-viewer/internal/pipeline"
)

func (d *Dispatcher) open(s Session, req Request) (Session, error) {
	img, err := d.loader.Load(req.Path)
	if err != nil {
		return s, err
	}

	next := Session{Image: img, View: models.NewViewState()}
	return fit(next, req)
}

func (d *Dispatcher) convert(s Session, req Request) (Session, error) {
	if !s.HasImage() {
		if req.Writer != nil {
			req.Writer.Close()
		}
		return s, ErrNoImage
	}

	if err := d.save(s.Image, req); err != nil {
		return s, err
	}

	s.LastSaved = req.Path
	return s, nil
}

func (d *Dispatcher) save(img *models.LoadedImage, req Request) error {
	if req.Writer == nil {
		return d.saver.SaveToPath(req.Path, img, req.Format)
	}

	err := d.saver.SaveToWriter(req.Writer, req.Path, img, req.Format)
	if closeErr := req.Writer.Close(); err == nil && closeErr != nil {
		err = &pipeline.SaveError{Path: req.Path, Format: req.Format, Err: closeErr}
	}
	return err
}

func zoomIn(s Session, _ Request) (Session, error) {
	if !s.HasImage() || s.View.Zoom >= display.MaxZoom {
		return s, nil
	}
	s.View = models.ViewState{Zoom: display.ZoomIn(s.View.Zoom), Source: models.ZoomStep}
	return s, nil
}

func zoomOut(s Session, _ Request) (Session, error) {
	if !s.HasImage() || s.View.Zoom <= display.MinZoom {
		return s, nil
	}
	s.View = models.ViewState{Zoom: display.ZoomOut(s.View.Zoom), Source: models.ZoomStep}
	return s, nil
}

func fit(s Session, req Request) (Session, error) {
	if !s.HasImage() {
		return s, nil
	}
	zoom := display.FitZoom(s.Image.Width, s.Image.Height, req.Viewport)
	s.View = models.ViewState{Zoom: zoom, Source: models.ZoomFit}
	return s, nil
}

func actualSize(s Session, _ Request) (Session, error) {
	if !s.HasImage() {
		return s, nil
	}
	s.View = models.ViewState{Zoom: display.ActualZoom, Source: models.ZoomActual}
	return s, nil
}
