package pipeline

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a target encoding for Convert.
type Format int

const (
	FormatPNG Format = iota
	FormatJPEG
	FormatWebP
	FormatGIF
	FormatBMP
)

const defaultOutputBase = "converted_image"

var formatInfo = map[Format]struct {
	name string
	ext  string
}{
	FormatPNG:  {"PNG", ".png"},
	FormatJPEG: {"JPEG", ".jpg"},
	FormatWebP: {"WebP", ".webp"},
	FormatGIF:  {"GIF", ".gif"},
	FormatBMP:  {"BMP", ".bmp"},
}

// OpenExtensions lists the extensions offered by the open dialog.
var OpenExtensions = []string{".jpg", ".jpeg", ".png", ".webp", ".gif"}

// OutputFormats returns the conversion targets in menu order.
func OutputFormats() []Format {
	return []Format{FormatPNG, FormatJPEG, FormatWebP, FormatGIF, FormatBMP}
}

func (f Format) String() string {
	if info, ok := formatInfo[f]; ok {
		return info.name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Extension returns the canonical file extension including the dot.
func (f Format) Extension() string {
	return formatInfo[f].ext
}

func (f Format) Valid() bool {
	_, ok := formatInfo[f]
	return ok
}

// ParseFormat accepts a format name or extension, case-insensitively.
func ParseFormat(name string) (Format, error) {
	key := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "."))
	switch key {
	case "png":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	case "webp":
		return FormatWebP, nil
	case "gif":
		return FormatGIF, nil
	case "bmp":
		return FormatBMP, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// DefaultOutputName suggests a file name for saving source as f.
func DefaultOutputName(source string, f Format) string {
	base := defaultOutputBase
	if source != "" {
		name := filepath.Base(source)
		base = strings.TrimSuffix(name, filepath.Ext(name))
	}
	return base + f.Extension()
}

// WithExtension appends f's canonical extension when path has none. An
// extension the user typed explicitly is kept.
func WithExtension(path string, f Format) string {
	if filepath.Ext(path) != "" {
		return path
	}
	return path + f.Extension()
}
