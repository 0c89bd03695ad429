package sobel

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/parallel"
)

// Grayscale reduces src to an intensity buffer of the same dimensions.
//
// Each cell is (r+g+b)/3 with integer truncation, where r, g and b are the
// pixel's 8-bit non-premultiplied channels. Alpha is ignored.
func Grayscale(src image.Image) Buffer {
	bounds := src.Bounds()
	out := NewBuffer(bounds.Dx(), bounds.Dy())

	parallel.Line(out.Height, func(start, end int) {
		for y := start; y < end; y++ {
			row := out.Row(y)
			for x := range row {
				c := color.NRGBAModel.Convert(src.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.NRGBA)
				row[x] = intensity(c.R, c.G, c.B)
			}
		}
	})

	return out
}

// intensity sums first and divides once.
func intensity(r, g, b uint8) int {
	return (int(r) + int(g) + int(b)) / 3
}
