package pipeline

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyPath         = errors.New("no file path given")
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// LoadError reports a failed open: bad path, unreadable or corrupt file, or a
// codec that is not registered.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to open image %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SaveError reports a failed conversion or write.
type SaveError struct {
	Path   string
	Format Format
	Err    error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("failed to save %s image %q: %v", e.Format, e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }
