package renderer

import (
	"time"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels  int           // Total number of pixels rendered
	TotalSamples int           // Total number of samples taken
	Workers      int           // Goroutines that traced samples
	Duration     time.Duration // Wall time spent tracing
}

// PixelAccumulator sums linear-space samples for a single pixel
type PixelAccumulator struct {
	ColorAccum  core.Vec3 // RGB accumulator
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel
func (pa *PixelAccumulator) AddSample(color core.Vec3) {
	pa.ColorAccum = pa.ColorAccum.Add(color)
	pa.SampleCount++
}

// Mean returns the average color, or black before any sample
func (pa *PixelAccumulator) Mean() core.Vec3 {
	if pa.SampleCount == 0 {
		return core.ColorBlack
	}
	return pa.ColorAccum.Divide(float64(pa.SampleCount))
}
