package renderer

import (
	"context"
	"math/rand"
	"runtime"
	"sync"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// WorkerPool manages parallel tile rendering.
// Each pixel draws from its own stream seeded by core.PixelSeed, so output does
// not depend on worker count or scheduling.
type WorkerPool struct {
	raytracer  *Raytracer
	numWorkers int
	tileSize   int
}

// NewWorkerPool creates a worker pool with the specified number of workers (<= 0 = CPU count)
func NewWorkerPool(raytracer *Raytracer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	tileSize := raytracer.config.TileSize
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}
	return &WorkerPool{
		raytracer:  raytracer,
		numWorkers: numWorkers,
		tileSize:   tileSize,
	}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Render fills pixels (row-major, width*height) and blocks until every tile is done
// or ctx is cancelled. Tiles cover disjoint slots, so workers write without locking.
func (wp *WorkerPool) Render(ctx context.Context, pixels []RGB, progress ProgressFunc) error {
	config := wp.raytracer.config
	tiles := NewTileGrid(config.ImageWidth, config.ImageHeight, wp.tileSize)

	taskQueue := make(chan Tile)
	var wg sync.WaitGroup
	for i := 0; i < wp.numWorkers; i++ {
		wg.Add(1)
		go wp.run(ctx, taskQueue, pixels, progress, &wg)
	}

submit:
	for _, tile := range tiles {
		select {
		case <-ctx.Done():
			break submit
		case taskQueue <- tile:
		}
	}
	close(taskQueue) // No more tasks
	wg.Wait()

	return ctx.Err()
}

// run is the main worker loop
func (wp *WorkerPool) run(ctx context.Context, tasks <-chan Tile, pixels []RGB, progress ProgressFunc, wg *sync.WaitGroup) {
	defer wg.Done()

	rt := wp.raytracer
	width := rt.config.ImageWidth
	for tile := range tasks {
		for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
			if ctx.Err() != nil {
				break
			}
			for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
				random := rand.New(rand.NewSource(core.PixelSeed(rt.config.RNGSeed, x, y)))
				pixels[y*width+x] = ToRGB(rt.samplePixel(x, y, random, progress))
			}
		}
	}
}
