package renderer

import "time"

// BandStats contains statistics about one rendered band
type BandStats struct {
	Index    int
	Y0, Y1   int
	Worker   int // ID of the worker that rendered the band
	Pixels   int
	Samples  int
	Duration time.Duration
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int
	Height          int
	Workers         int
	SamplesPerPixel int
	TotalPixels     int
	TotalSamples    int
	Duration        time.Duration
	Bands           []BandStats // indexed by band
}

// SamplesPerSecond returns the overall sample throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}
