package pipeline

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"image-viewer/internal/logger"
	"image-viewer/internal/models"
	"image-viewer/internal/timing"
)

// Saver converts and writes LoadedImages. Every failure is a *SaveError.
type Saver struct {
	logger        logger.Logger
	timingTracker *timing.Tracker
}

func NewSaver(log logger.Logger, tracker *timing.Tracker) *Saver {
	return &Saver{logger: log, timingTracker: tracker}
}

// SaveToWriter encodes img as f into writer, typically the file a save dialog
// already created. path only labels logs and errors.
func (s *Saver) SaveToWriter(writer io.Writer, path string, img *models.LoadedImage, f Format) error {
	ctx := s.timingTracker.StartTiming("save")

	w := bufio.NewWriter(writer)
	err := s.encode(w, img, f)
	if err == nil {
		if err = w.Flush(); err != nil {
			err = fmt.Errorf("write: %w", err)
		}
	}
	if err != nil {
		return s.failed(path, f, err)
	}

	s.saved(path, f, s.timingTracker.EndTiming(ctx))
	return nil
}

// SaveToPath writes img to path in format f. The file is written in place;
// a failed encode may leave a partial file behind.
func (s *Saver) SaveToPath(path string, img *models.LoadedImage, f Format) error {
	if path == "" {
		return &SaveError{Path: path, Format: f, Err: ErrEmptyPath}
	}

	ctx := s.timingTracker.StartTiming("save")

	if err := s.writeFile(path, img, f); err != nil {
		return s.failed(path, f, err)
	}

	s.saved(path, f, s.timingTracker.EndTiming(ctx))
	return nil
}

func (s *Saver) failed(path string, f Format, err error) error {
	s.logger.Error("ImageSaver", err, map[string]interface{}{
		"path":   path,
		"format": f.String(),
	})
	return &SaveError{Path: path, Format: f, Err: err}
}

func (s *Saver) saved(path string, f Format, elapsed time.Duration) {
	s.logger.Info("ImageSaver", "image saved", map[string]interface{}{
		"path":     path,
		"format":   f.String(),
		"duration": elapsed.String(),
	})
}

func (s *Saver) writeFile(path string, img *models.LoadedImage, f Format) error {
	if !f.Valid() {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(file)
	if err := s.encode(w, img, f); err != nil {
		file.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("write: %w", err)
	}
	return file.Close()
}

func (s *Saver) encode(w io.Writer, img *models.LoadedImage, f Format) error {
	prepared, err := PrepareForEncode(img, f)
	if err != nil {
		return err
	}

	s.logger.Debug("ImageSaver", "encoding image", map[string]interface{}{
		"format":      f.String(),
		"source_mode": img.Mode.String(),
		"prepared":    fmt.Sprintf("%T", prepared),
	})

	if err := Encode(w, prepared, f); err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}
	return nil
}
