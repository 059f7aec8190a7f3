package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// ErrInvalidConfig is wrapped by every render configuration error
var ErrInvalidConfig = errors.New("invalid render config")

// RenderConfig contains rendering configuration
type RenderConfig struct {
	ImageWidth      int       // Image width in pixels
	ImageHeight     int       // Image height in pixels
	SamplesPerPixel int       // Number of rays per pixel
	MaxDepth        int       // Maximum ray bounce depth
	FocalLength     float64   // Distance from camera center to the viewport
	ViewportHeight  float64   // Vertical extent of the viewport in world units
	CameraOrigin    core.Vec3 // Camera center; the camera looks down -Z
	RNGSeed         uint64    // Seed for all random sampling
	Jitter          bool      // Jitter samples within each pixel (box-filter antialiasing)
	NumWorkers      int       // Parallel workers; 0 or 1 renders on the calling goroutine
	TileSize        int       // Tile edge in pixels for parallel rendering (0 = default)
}

// DefaultTileSize is the tile edge used by the worker pool when none is configured
const DefaultTileSize = 16

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		ImageWidth:      400,
		ImageHeight:     225, // 16:9 aspect ratio
		SamplesPerPixel: 100,
		MaxDepth:        50,
		FocalLength:     1.0,
		ViewportHeight:  2.0,
		CameraOrigin:    core.NewVec3(0, 0, 0),
		RNGSeed:         42,
		Jitter:          true,
		NumWorkers:      1,
	}
}

// AspectRatio returns width over height
func (c RenderConfig) AspectRatio() float64 {
	return float64(c.ImageWidth) / float64(c.ImageHeight)
}

// TotalSamples returns the number of camera samples a full render traces
func (c RenderConfig) TotalSamples() int {
	return c.ImageWidth * c.ImageHeight * c.SamplesPerPixel
}

// Validate reports configuration errors before any pixel is rendered
func (c RenderConfig) Validate() error {
	if c.ImageWidth <= 0 || c.ImageHeight <= 0 {
		return fmt.Errorf("%w: image dimensions must be positive, got %dx%d", ErrInvalidConfig, c.ImageWidth, c.ImageHeight)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: samples per pixel must be positive, got %d", ErrInvalidConfig, c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max depth must not be negative, got %d", ErrInvalidConfig, c.MaxDepth)
	}
	if !positiveFinite(c.FocalLength) {
		return fmt.Errorf("%w: focal length must be positive and finite, got %v", ErrInvalidConfig, c.FocalLength)
	}
	if !positiveFinite(c.ViewportHeight) {
		return fmt.Errorf("%w: viewport height must be positive and finite, got %v", ErrInvalidConfig, c.ViewportHeight)
	}
	if !c.CameraOrigin.IsFinite() {
		return fmt.Errorf("%w: camera origin must be finite, got %v", ErrInvalidConfig, c.CameraOrigin)
	}
	if c.NumWorkers < 0 {
		return fmt.Errorf("%w: worker count must not be negative, got %d", ErrInvalidConfig, c.NumWorkers)
	}
	if c.TileSize < 0 {
		return fmt.Errorf("%w: tile size must not be negative, got %d", ErrInvalidConfig, c.TileSize)
	}
	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
