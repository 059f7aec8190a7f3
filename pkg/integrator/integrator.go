package integrator

import (
	"math/rand"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray.
	// random is the caller's stream and is advanced, not copied.
	RayColor(ray core.Ray, scene core.Scene, random *rand.Rand) core.Vec3
}
