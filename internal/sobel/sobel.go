package sobel

import (
	"fmt"
	"image"
)

// Result is the output of a full pipeline run.
type Result struct {
	// Image is (W-2) x (H-2) and holds only Black, Grey and White pixels.
	Image *image.Gray

	// Bands counts the pixels of Image per level.
	Bands BandCounts
}

// Apply runs Grayscale, Convolve, Magnitude and Quantize on src.
//
// The size check happens before any buffer is allocated, so an undersized
// source fails with a *SizeError without doing work. Apply does not modify
// src and returns bit-identical output for identical input.
func Apply(src image.Image) (*Result, error) {
	b := src.Bounds()
	if err := checkSize(b.Dx(), b.Dy()); err != nil {
		return nil, err
	}

	gray := Grayscale(src)

	gx, gy, err := Convolve(gray)
	if err != nil {
		return nil, err
	}

	mag, err := Magnitude(gx, gy)
	if err != nil {
		return nil, fmt.Errorf("combine gradients: %w", err)
	}

	img, bands := Quantize(mag)
	return &Result{Image: img, Bands: bands}, nil
}
