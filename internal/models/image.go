package models

import (
	"image"
	"path/filepath"
)

// ColorMode is the normalized color mode of a loaded image.
type ColorMode int

const (
	ModeRGB ColorMode = iota
	ModeRGBA
)

func (m ColorMode) String() string {
	switch m {
	case ModeRGB:
		return "RGB"
	case ModeRGBA:
		return "RGBA"
	default:
		return "unknown"
	}
}

// LoadedImage is a decoded, normalized image owned by one viewer session.
// It is replaced on every open and never mutated afterwards.
type LoadedImage struct {
	Pixels   *image.NRGBA
	Mode     ColorMode
	Width    int
	Height   int
	Path     string
	Format   string
	FileSize int64
}

// HasAlpha reports whether the image carries a meaningful alpha channel.
func (li *LoadedImage) HasAlpha() bool {
	return li != nil && li.Mode == ModeRGBA
}

// Name returns the base file name of the source path.
func (li *LoadedImage) Name() string {
	if li == nil || li.Path == "" {
		return ""
	}
	return filepath.Base(li.Path)
}
