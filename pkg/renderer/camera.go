package renderer

import (
	"math/rand"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// Camera generates primary rays through a fixed viewport looking down -Z
type Camera struct {
	center      core.Vec3
	pixel00     core.Vec3 // Center of the upper-left pixel
	pixelDeltaU core.Vec3 // Offset to the next pixel along a row
	pixelDeltaV core.Vec3 // Offset to the next row (downwards)
	jitter      bool
}

// NewCamera builds the viewport basis from the render configuration
func NewCamera(config RenderConfig) *Camera {
	viewportWidth := config.ViewportHeight * config.AspectRatio()

	// Image rows grow downward, so the vertical edge points along -Y
	horizontal := core.NewVec3(viewportWidth, 0, 0)
	vertical := core.NewVec3(0, -config.ViewportHeight, 0)

	pixelDeltaU := horizontal.Divide(float64(config.ImageWidth))
	pixelDeltaV := vertical.Divide(float64(config.ImageHeight))

	upperLeft := config.CameraOrigin.
		Subtract(core.NewVec3(0, 0, config.FocalLength)).
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5))

	// Offset by half a pixel so samples are centered on pixels
	pixel00 := upperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	return &Camera{
		center:      config.CameraOrigin,
		pixel00:     pixel00,
		pixelDeltaU: pixelDeltaU,
		pixelDeltaV: pixelDeltaV,
		jitter:      config.Jitter,
	}
}

// Center returns the camera position
func (c *Camera) Center() core.Vec3 { return c.center }

// PixelDeltas returns the world-space size of one pixel along a row and a column
func (c *Camera) PixelDeltas() (u, v core.Vec3) { return c.pixelDeltaU, c.pixelDeltaV }

// PixelCenter returns the world-space center of pixel (x, y)
func (c *Camera) PixelCenter(x, y int) core.Vec3 {
	return c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(x))).
		Add(c.pixelDeltaV.Multiply(float64(y)))
}

// GetRay generates a sample ray through pixel (x, y).
// With jitter enabled the target is offset uniformly within ±half a pixel on each axis.
func (c *Camera) GetRay(x, y int, random *rand.Rand) core.Ray {
	target := c.PixelCenter(x, y)
	if c.jitter {
		offsetU := random.Float64() - 0.5
		offsetV := random.Float64() - 0.5
		target = target.
			Add(c.pixelDeltaU.Multiply(offsetU)).
			Add(c.pixelDeltaV.Multiply(offsetV))
	}

	return core.NewRay(c.center, target.Subtract(c.center))
}
