package sobel

import (
	"image"
	"image/color"
	"sync/atomic"

	"github.com/anthonynsimon/bild/parallel"
)

// Level is one of the three output intensities.
type Level uint8

const (
	Black Level = 0
	Grey  Level = 100
	White Level = 255
)

// Magnitude cut-offs between the bands.
const (
	GreyThreshold  = 120
	WhiteThreshold = 200
)

// Levels returns the output levels from darkest to brightest.
func Levels() []Level {
	return []Level{Black, Grey, White}
}

// Gray returns the level as a gray colour.
func (l Level) Gray() color.Gray {
	return color.Gray{Y: uint8(l)}
}

func (l Level) String() string {
	switch l {
	case Black:
		return "black"
	case Grey:
		return "grey"
	case White:
		return "white"
	}
	return "unknown"
}

// Classify maps a gradient magnitude to its band.
//
//	m < 120         black
//	120 <= m < 200  grey
//	m >= 200        white
func Classify(m int) Level {
	if m < GreyThreshold {
		return Black
	}
	if m < WhiteThreshold {
		return Grey
	}
	return White
}

// BandCounts holds the number of output pixels in each band.
type BandCounts struct {
	Black int `json:"black"`
	Grey  int `json:"grey"`
	White int `json:"white"`
}

// Total is the number of classified pixels.
func (c BandCounts) Total() int {
	return c.Black + c.Grey + c.White
}

// Count returns the number of pixels at level l.
func (c BandCounts) Count(l Level) int {
	switch l {
	case Black:
		return c.Black
	case Grey:
		return c.Grey
	case White:
		return c.White
	}
	return 0
}

// Quantize plots mag into a single-channel raster of the same dimensions,
// one Level per cell, and counts the pixels in each band.
func Quantize(mag Buffer) (*image.Gray, BandCounts) {
	img := image.NewGray(image.Rect(0, 0, mag.Width, mag.Height))
	var black, grey, white atomic.Int64

	parallel.Line(mag.Height, func(start, end int) {
		var nb, ng, nw int64
		for y := start; y < end; y++ {
			src := mag.Row(y)
			dst := img.Pix[y*img.Stride : y*img.Stride+mag.Width]
			for x, m := range src {
				l := Classify(m)
				dst[x] = uint8(l)
				switch l {
				case Black:
					nb++
				case Grey:
					ng++
				default:
					nw++
				}
			}
		}
		black.Add(nb)
		grey.Add(ng)
		white.Add(nw)
	})

	return img, BandCounts{
		Black: int(black.Load()),
		Grey:  int(grey.Load()),
		White: int(white.Load()),
	}
}
