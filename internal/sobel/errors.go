package sobel

import (
	"errors"
	"fmt"
)

// ErrInvalidImageSize is matched by every SizeError.
var ErrInvalidImageSize = errors.New("invalid image size")

// SizeError reports an input too small for a 3x3 window.
type SizeError struct {
	Width  int
	Height int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%v: %dx%d, need at least %dx%d",
		ErrInvalidImageSize, e.Width, e.Height, KernelSize, KernelSize)
}

// Is reports whether target is ErrInvalidImageSize.
func (e *SizeError) Is(target error) bool {
	return target == ErrInvalidImageSize
}

// checkSize fails when a width x height raster cannot hold a full kernel window.
func checkSize(width, height int) error {
	if width < KernelSize || height < KernelSize {
		return &SizeError{Width: width, Height: height}
	}
	return nil
}
