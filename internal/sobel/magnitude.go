package sobel

import (
	"fmt"
	"math"

	"github.com/anthonynsimon/bild/parallel"
)

// Magnitude combines two gradient buffers into floor(sqrt(gx²+gy²)) per cell.
//
// Squares are taken in float64 and the root is truncated toward zero. The
// result is not clamped; values above 255 are expected on strong edges.
func Magnitude(gx, gy Buffer) (Buffer, error) {
	if !gx.sameSize(gy) {
		return Buffer{}, fmt.Errorf("gradient size mismatch: %dx%d vs %dx%d",
			gx.Width, gx.Height, gy.Width, gy.Height)
	}

	out := NewBuffer(gx.Width, gx.Height)
	parallel.Line(out.Height, func(start, end int) {
		for y := start; y < end; y++ {
			rowX, rowY, row := gx.Row(y), gy.Row(y), out.Row(y)
			for x := range row {
				row[x] = magnitude(rowX[x], rowY[x])
			}
		}
	})

	return out, nil
}

func magnitude(gx, gy int) int {
	fx, fy := float64(gx), float64(gy)
	return int(math.Sqrt(fx*fx + fy*fy))
}
