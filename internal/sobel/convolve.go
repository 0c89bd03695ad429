package sobel

import "github.com/anthonynsimon/bild/parallel"

// KernelSize is the side length of the Sobel kernels.
const KernelSize = 3

// Kernel is a 3x3 weight matrix indexed [row][column].
type Kernel [KernelSize][KernelSize]int

var (
	// KernelX responds to horizontal intensity changes (vertical edges).
	KernelX = Kernel{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}

	// KernelY responds to vertical intensity changes (horizontal edges).
	KernelY = Kernel{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// Convolve applies KernelX and KernelY to in and returns both gradient buffers.
//
// The window for output cell (x, y) covers input columns x..x+2 and rows
// y..y+2. Windows that would leave the input are skipped rather than padded,
// so each gradient is exactly (Width-2) x (Height-2). Weights are used as
// written, without flipping.
//
// A *SizeError is returned when either dimension of in is below KernelSize.
func Convolve(in Buffer) (gx, gy Buffer, err error) {
	if err := checkSize(in.Width, in.Height); err != nil {
		return Buffer{}, Buffer{}, err
	}

	w := in.Width - (KernelSize - 1)
	h := in.Height - (KernelSize - 1)
	gx = NewBuffer(w, h)
	gy = NewBuffer(w, h)

	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			rowX, rowY := gx.Row(y), gy.Row(y)
			for x := 0; x < w; x++ {
				rowX[x], rowY[x] = window(in, x, y)
			}
		}
	})

	return gx, gy, nil
}

// window computes both kernel responses over the 3x3 block anchored at (x, y).
func window(in Buffer, x, y int) (sx, sy int) {
	for ky := 0; ky < KernelSize; ky++ {
		row := in.Row(y + ky)
		for kx := 0; kx < KernelSize; kx++ {
			v := row[x+kx]
			sx += v * KernelX[ky][kx]
			sy += v * KernelY[ky][kx]
		}
	}
	return sx, sy
}
