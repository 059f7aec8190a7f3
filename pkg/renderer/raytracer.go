package renderer

import (
	"context"
	"fmt"
	"image"
	"math/rand"
	"time"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/integrator"
)

// Raytracer handles the rendering process
type Raytracer struct {
	scene      core.Scene
	config     RenderConfig
	camera     *Camera
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer validates the configuration and scene and prepares a render.
// A nil logger discards output.
func NewRaytracer(scene core.Scene, config RenderConfig, logger core.Logger) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if scene == nil {
		return nil, fmt.Errorf("%w: scene is nil", ErrInvalidConfig)
	}
	if v, ok := scene.(core.Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	if logger == nil {
		logger = NewDiscardLogger()
	}

	return &Raytracer{
		scene:      scene,
		config:     config,
		camera:     NewCamera(config),
		integrator: integrator.NewPathTracingIntegrator(config.MaxDepth),
		logger:     logger,
	}, nil
}

// Config returns the validated render configuration
func (rt *Raytracer) Config() RenderConfig {
	return rt.config
}

// Camera returns the camera built from the configuration
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// Render traces every pixel and delivers it to sink in row-major order.
// progress may be nil. Sink errors and context cancellation stop the render.
func (rt *Raytracer) Render(ctx context.Context, sink ImageSink, progress ProgressFunc) (RenderStats, error) {
	workers := max(1, rt.config.NumWorkers)
	rt.logger.Printf("Rendering %dx%d, %d samples per pixel, max depth %d, %d worker(s)...\n",
		rt.config.ImageWidth, rt.config.ImageHeight, rt.config.SamplesPerPixel, rt.config.MaxDepth, workers)

	startTime := time.Now()
	var err error
	if workers > 1 {
		err = rt.renderParallel(ctx, sink, progress, workers)
	} else {
		err = rt.renderSequential(ctx, sink, progress)
	}
	if err != nil {
		return RenderStats{}, err
	}

	stats := RenderStats{
		TotalPixels:  rt.config.ImageWidth * rt.config.ImageHeight,
		TotalSamples: rt.config.TotalSamples(),
		Workers:      workers,
		Duration:     time.Since(startTime),
	}
	rt.logger.Printf("Render completed in %v\n", stats.Duration)
	return stats, nil
}

// RenderImage renders into a new RGBA image
func (rt *Raytracer) RenderImage(ctx context.Context, progress ProgressFunc) (*image.RGBA, RenderStats, error) {
	buffer := NewImageBuffer(rt.config.ImageWidth, rt.config.ImageHeight)
	stats, err := rt.Render(ctx, buffer, progress)
	if err != nil {
		return nil, RenderStats{}, err
	}
	return buffer.Image(), stats, nil
}

// renderSequential threads a single random stream through the whole image
func (rt *Raytracer) renderSequential(ctx context.Context, sink ImageSink, progress ProgressFunc) error {
	random := rand.New(rand.NewSource(int64(rt.config.RNGSeed)))

	for y := 0; y < rt.config.ImageHeight; y++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for x := 0; x < rt.config.ImageWidth; x++ {
			c := ToRGB(rt.samplePixel(x, y, random, progress))
			if err := sink.WritePixel(x, y, c.R, c.G, c.B); err != nil {
				return fmt.Errorf("failed to write pixel (%d, %d): %w", x, y, err)
			}
		}
	}
	return nil
}

// renderParallel traces tiles on a worker pool, then delivers the finished buffer in scan order
func (rt *Raytracer) renderParallel(ctx context.Context, sink ImageSink, progress ProgressFunc, workers int) error {
	pixels := make([]RGB, rt.config.ImageWidth*rt.config.ImageHeight)

	pool := NewWorkerPool(rt, workers)
	if err := pool.Render(ctx, pixels, progress); err != nil {
		return err
	}

	for y := 0; y < rt.config.ImageHeight; y++ {
		for x := 0; x < rt.config.ImageWidth; x++ {
			c := pixels[y*rt.config.ImageWidth+x]
			if err := sink.WritePixel(x, y, c.R, c.G, c.B); err != nil {
				return fmt.Errorf("failed to write pixel (%d, %d): %w", x, y, err)
			}
		}
	}
	return nil
}

// samplePixel averages SamplesPerPixel camera samples for one pixel in linear space
func (rt *Raytracer) samplePixel(x, y int, random *rand.Rand, progress ProgressFunc) core.Vec3 {
	var accum PixelAccumulator
	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		ray := rt.camera.GetRay(x, y, random)
		accum.AddSample(rt.integrator.RayColor(ray, rt.scene, random))
		if progress != nil {
			progress()
		}
	}
	return accum.Mean()
}
