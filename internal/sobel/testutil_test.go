package sobel

import (
	"image"
	"image/color"
)

// uniformImage returns a width x height RGBA image filled with c.
func uniformImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// verticalEdgeImage is black left of splitX and white from splitX on.
func verticalEdgeImage(width, height, splitX int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x < splitX {
				img.Set(x, y, color.RGBA{0, 0, 0, 255})
			} else {
				img.Set(x, y, color.RGBA{255, 255, 255, 255})
			}
		}
	}
	return img
}

// noiseImage fills an image with a deterministic pseudo-random pattern.
func noiseImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	seed := uint32(2463534242)
	next := func() uint8 {
		seed ^= seed << 13
		seed ^= seed >> 17
		seed ^= seed << 5
		return uint8(seed)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{next(), next(), next(), 255})
		}
	}
	return img
}

func bufferFrom(rows [][]int) Buffer {
	b := NewBuffer(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, v := range row {
			b.Set(x, y, v)
		}
	}
	return b
}
