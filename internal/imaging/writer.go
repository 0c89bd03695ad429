package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/disintegration/imaging"
)

// DefaultJPEGQuality is used when SaveOptions.JPEGQuality is zero.
const DefaultJPEGQuality = 95

// SaveOptions controls how Save encodes an image.
type SaveOptions struct {
	// Format overrides the format implied by the file extension.
	// Accepts the same names as the extensions: "jpg", "png", "gif", "tif", "bmp".
	Format string

	// JPEGQuality ranges from 1 to 100. Zero means DefaultJPEGQuality.
	JPEGQuality int
}

// Save encodes img to path.
//
// The format comes from opts.Format when set, otherwise from the extension
// of path. Every failure is returned as an *EncodeError; a partially
// written file is removed so that no truncated output is left behind.
func Save(img image.Image, path string, opts SaveOptions) error {
	format, err := resolveFormat(path, opts.Format)
	if err != nil {
		return &EncodeError{Path: path, Format: opts.Format, Err: err}
	}
	name := strings.ToLower(format.String())

	quality := opts.JPEGQuality
	if quality == 0 {
		quality = DefaultJPEGQuality
	}

	f, err := os.Create(path)
	if err != nil {
		return &EncodeError{Path: path, Format: name, Err: err}
	}

	if err := imaging.Encode(f, img, format, imaging.JPEGQuality(quality)); err != nil {
		f.Close()
		os.Remove(path)
		return &EncodeError{Path: path, Format: name, Err: err}
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return &EncodeError{Path: path, Format: name, Err: err}
	}
	return nil
}

func resolveFormat(path, override string) (imaging.Format, error) {
	if override != "" {
		return imaging.FormatFromExtension(override)
	}
	return imaging.FormatFromFilename(path)
}

// EncodePNGBase64 encodes img as PNG and returns it base64 encoded.
func EncodePNGBase64(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
