package pipeline

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/sobel-edge-filter/internal/sobel"
)

// BandSummary describes one output level and how much of the image it covers.
type BandSummary struct {
	Name       string  `json:"name"`
	Level      uint8   `json:"level"`
	Hex        string  `json:"hex"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Summarize lists every output level with its pixel count, darkest first.
func Summarize(bands sobel.BandCounts) []BandSummary {
	total := bands.Total()
	out := make([]BandSummary, 0, 3)
	for _, l := range sobel.Levels() {
		c, _ := colorful.MakeColor(l.Gray())
		s := BandSummary{
			Name:  l.String(),
			Level: uint8(l),
			Hex:   c.Hex(),
			Count: bands.Count(l),
		}
		if total > 0 {
			s.Percentage = float64(s.Count) / float64(total) * 100
		}
		out = append(out, s)
	}
	return out
}
