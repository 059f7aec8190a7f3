package renderer

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

func TestDefaultRenderConfig_Valid(t *testing.T) {
	config := DefaultRenderConfig()
	if err := config.Validate(); err != nil {
		t.Fatalf("Default config should be valid: %v", err)
	}
	if config.ViewportHeight != 2.0 {
		t.Errorf("Expected viewport height 2, got %f", config.ViewportHeight)
	}
	if !config.Jitter {
		t.Error("Expected jitter enabled by default")
	}
}

func TestRenderConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *RenderConfig)
	}{
		{"zero width", func(c *RenderConfig) { c.ImageWidth = 0 }},
		{"negative height", func(c *RenderConfig) { c.ImageHeight = -1 }},
		{"zero samples", func(c *RenderConfig) { c.SamplesPerPixel = 0 }},
		{"negative depth", func(c *RenderConfig) { c.MaxDepth = -1 }},
		{"zero focal length", func(c *RenderConfig) { c.FocalLength = 0 }},
		{"NaN focal length", func(c *RenderConfig) { c.FocalLength = math.NaN() }},
		{"infinite viewport", func(c *RenderConfig) { c.ViewportHeight = math.Inf(1) }},
		{"negative viewport", func(c *RenderConfig) { c.ViewportHeight = -2 }},
		{"non-finite origin", func(c *RenderConfig) { c.CameraOrigin = core.NewVec3(math.NaN(), 0, 0) }},
		{"negative workers", func(c *RenderConfig) { c.NumWorkers = -2 }},
		{"negative tile size", func(c *RenderConfig) { c.TileSize = -8 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultRenderConfig()
			tt.modify(&config)
			if err := config.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestRenderConfig_ZeroDepthIsValid(t *testing.T) {
	config := DefaultRenderConfig()
	config.MaxDepth = 0
	if err := config.Validate(); err != nil {
		t.Errorf("Max depth 0 renders black but is a valid configuration: %v", err)
	}
}

func TestRenderConfig_Derived(t *testing.T) {
	config := DefaultRenderConfig()
	config.ImageWidth = 40
	config.ImageHeight = 20
	config.SamplesPerPixel = 3

	if got := config.AspectRatio(); got != 2.0 {
		t.Errorf("Expected aspect ratio 2, got %f", got)
	}
	if got := config.TotalSamples(); got != 2400 {
		t.Errorf("Expected 2400 total samples, got %d", got)
	}
}
