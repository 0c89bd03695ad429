package sobel

import (
	"errors"
	"testing"
)

// referenceWindow spells out all nine products the way a hand-unrolled
// implementation would, as an independent check on the loop in window.
func referenceWindow(in Buffer, k Kernel, x, y int) int {
	return in.At(x, y)*k[0][0] + in.At(x+1, y)*k[0][1] + in.At(x+2, y)*k[0][2] +
		in.At(x, y+1)*k[1][0] + in.At(x+1, y+1)*k[1][1] + in.At(x+2, y+1)*k[1][2] +
		in.At(x, y+2)*k[2][0] + in.At(x+1, y+2)*k[2][1] + in.At(x+2, y+2)*k[2][2]
}

func TestConvolve_Dimensions(t *testing.T) {
	tests := []struct {
		w, h int
	}{
		{3, 3},
		{5, 5},
		{3, 10},
		{10, 3},
		{64, 17},
	}

	for _, tt := range tests {
		gx, gy, err := Convolve(NewBuffer(tt.w, tt.h))
		if err != nil {
			t.Fatalf("%dx%d: unexpected error: %v", tt.w, tt.h, err)
		}
		for _, g := range []Buffer{gx, gy} {
			if g.Width != tt.w-2 || g.Height != tt.h-2 {
				t.Errorf("%dx%d: got %dx%d, want %dx%d",
					tt.w, tt.h, g.Width, g.Height, tt.w-2, tt.h-2)
			}
		}
	}
}

func TestConvolve_TooSmall(t *testing.T) {
	tests := []struct {
		w, h int
	}{
		{0, 0},
		{2, 5},
		{5, 2},
		{1, 1},
		{2, 2},
	}

	for _, tt := range tests {
		_, _, err := Convolve(NewBuffer(tt.w, tt.h))
		if !errors.Is(err, ErrInvalidImageSize) {
			t.Errorf("%dx%d: got %v, want ErrInvalidImageSize", tt.w, tt.h, err)
		}
		var se *SizeError
		if !errors.As(err, &se) {
			t.Fatalf("%dx%d: error is not *SizeError", tt.w, tt.h)
		}
		if se.Width != tt.w || se.Height != tt.h {
			t.Errorf("SizeError: got %dx%d, want %dx%d", se.Width, se.Height, tt.w, tt.h)
		}
	}
}

func TestConvolve_MatchesUnrolledSum(t *testing.T) {
	in := Grayscale(noiseImage(23, 19))

	gx, gy, err := Convolve(in)
	if err != nil {
		t.Fatalf("Convolve failed: %v", err)
	}

	for y := 0; y < gx.Height; y++ {
		for x := 0; x < gx.Width; x++ {
			if got, want := gx.At(x, y), referenceWindow(in, KernelX, x, y); got != want {
				t.Fatalf("gx(%d,%d): got %d, want %d", x, y, got, want)
			}
			if got, want := gy.At(x, y), referenceWindow(in, KernelY, x, y); got != want {
				t.Fatalf("gy(%d,%d): got %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestConvolve_NegativeGradients(t *testing.T) {
	// Bright on the left and top: both gradients point negative.
	in := bufferFrom([][]int{
		{255, 255, 255},
		{255, 0, 0},
		{255, 0, 0},
	})

	gx, gy, err := Convolve(in)
	if err != nil {
		t.Fatalf("Convolve failed: %v", err)
	}
	if got := gx.At(0, 0); got != -765 {
		t.Errorf("gx: got %d, want -765", got)
	}
	if got := gy.At(0, 0); got != -765 {
		t.Errorf("gy: got %d, want -765", got)
	}
}

func TestConvolve_Extremes(t *testing.T) {
	in := bufferFrom([][]int{
		{0, 0, 255},
		{0, 0, 255},
		{0, 0, 255},
	})

	gx, gy, _ := Convolve(in)
	if got := gx.At(0, 0); got != 1020 {
		t.Errorf("gx: got %d, want 1020", got)
	}
	if got := gy.At(0, 0); got != 0 {
		t.Errorf("gy: got %d, want 0", got)
	}
}

func TestConvolve_DoesNotModifyInput(t *testing.T) {
	in := Grayscale(noiseImage(8, 8))
	before := append([]int(nil), in.Pix...)

	if _, _, err := Convolve(in); err != nil {
		t.Fatalf("Convolve failed: %v", err)
	}
	for i := range before {
		if in.Pix[i] != before[i] {
			t.Fatalf("input modified at %d", i)
		}
	}
}
