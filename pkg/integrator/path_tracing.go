package integrator

import (
	"math"
	"math/rand"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// ShadowAcneEpsilon is the minimum hit distance, keeping scattered rays from
// re-hitting the surface they start on
const ShadowAcneEpsilon = 0.001

// PathTracingIntegrator implements recursive unidirectional path tracing
// with a hard bounce limit
type PathTracingIntegrator struct {
	maxDepth int
}

// NewPathTracingIntegrator creates a new path tracing integrator.
// A path is cut off (black) after maxDepth scattering events.
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{maxDepth: maxDepth}
}

// MaxDepth returns the bounce limit
func (pt *PathTracingIntegrator) MaxDepth() int {
	return pt.maxDepth
}

// RayColor computes the color for a single camera ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, scene core.Scene, random *rand.Rand) core.Vec3 {
	return pt.rayColor(ray, scene, random, 0)
}

func (pt *PathTracingIntegrator) rayColor(ray core.Ray, scene core.Scene, random *rand.Rand, depth int) core.Vec3 {
	// If we've reached the ray bounce limit, no more light is gathered
	if depth >= pt.maxDepth {
		return core.ColorBlack
	}

	hit, isHit := scene.Hit(ray, ShadowAcneEpsilon, math.Inf(1))
	if !isHit {
		return BackgroundGradient(ray, scene)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, random)
	if !didScatter {
		return core.ColorBlack // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyVec(pt.rayColor(scatter.Scattered, scene, random, depth+1))
}

// BackgroundGradient returns the sky color seen along a ray that hits nothing
func BackgroundGradient(r core.Ray, scene core.Scene) core.Vec3 {
	topColor, bottomColor := scene.BackgroundColors()

	unitDirection := r.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
}
