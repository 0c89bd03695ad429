package sobel

import (
	"math"
	"testing"
)

func TestMagnitude_Values(t *testing.T) {
	tests := []struct {
		gx, gy int
		want   int
	}{
		{0, 0, 0},
		{3, 4, 5},
		{-3, 4, 5},
		{3, -4, 5},
		{-3, -4, 5},
		{-1, -1, 1},
		{1, 1, 1},
		{119, 0, 119},
		{0, -200, 200},
		{1020, 1020, 1442},
		{-1020, 1020, 1442},
	}

	for _, tt := range tests {
		gx := bufferFrom([][]int{{tt.gx}})
		gy := bufferFrom([][]int{{tt.gy}})
		mag, err := Magnitude(gx, gy)
		if err != nil {
			t.Fatalf("Magnitude failed: %v", err)
		}
		if got := mag.At(0, 0); got != tt.want {
			t.Errorf("Magnitude(%d, %d): got %d, want %d", tt.gx, tt.gy, got, tt.want)
		}
	}
}

func TestMagnitude_MatchesFloorSqrt(t *testing.T) {
	gx := NewBuffer(41, 41)
	gy := NewBuffer(41, 41)
	for y := 0; y < 41; y++ {
		for x := 0; x < 41; x++ {
			gx.Set(x, y, (x-20)*51)
			gy.Set(x, y, (y-20)*51)
		}
	}

	mag, err := Magnitude(gx, gy)
	if err != nil {
		t.Fatalf("Magnitude failed: %v", err)
	}

	for i := range mag.Pix {
		a, b := float64(gx.Pix[i]), float64(gy.Pix[i])
		want := int(math.Floor(math.Sqrt(a*a + b*b)))
		if mag.Pix[i] != want {
			t.Fatalf("cell %d (gx=%d gy=%d): got %d, want %d",
				i, gx.Pix[i], gy.Pix[i], mag.Pix[i], want)
		}
	}
}

func TestMagnitude_SizeMismatch(t *testing.T) {
	_, err := Magnitude(NewBuffer(3, 3), NewBuffer(3, 4))
	if err == nil {
		t.Error("expected error for mismatched gradients")
	}
}
