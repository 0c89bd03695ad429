package sobel

// Buffer is a row-major grid of integers.
//
// The same type carries the intensity buffer, both gradient buffers and the
// magnitude buffer. A Buffer is written once by the stage that creates it
// and only read afterwards.
type Buffer struct {
	Width  int
	Height int
	Pix    []int
}

// NewBuffer allocates a zeroed width x height buffer.
func NewBuffer(width, height int) Buffer {
	return Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]int, width*height),
	}
}

// At returns the value at column x, row y.
func (b Buffer) At(x, y int) int {
	return b.Pix[y*b.Width+x]
}

// Set stores v at column x, row y.
func (b Buffer) Set(x, y, v int) {
	b.Pix[y*b.Width+x] = v
}

// Row returns row y as a slice sharing the buffer's storage.
func (b Buffer) Row(y int) []int {
	return b.Pix[y*b.Width : (y+1)*b.Width]
}

func (b Buffer) sameSize(o Buffer) bool {
	return b.Width == o.Width && b.Height == o.Height
}
