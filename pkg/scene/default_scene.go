package scene

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/material"
)

// NewDefaultScene creates the demo scene: a ground sphere and three spheres
// in a row showing the diffuse, glass and glossy materials
func NewDefaultScene() *Scene {
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewClearDielectric(1.5)
	gold := material.NewGlossy(core.NewVec3(0.8, 0.6, 0.2), 0.1)

	return NewScene(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold),
	)
}

// NewGlassScene creates a scene dominated by refraction: a clear sphere with a
// tinted core, a water-like sphere and a rough mirror behind them
func NewGlassScene() *Scene {
	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	glass := material.NewClearDielectric(1.5)
	water := material.NewDielectric(core.NewVec3(0.9, 0.95, 1.0), 1.33)
	red := material.NewLambertian(core.NewVec3(0.65, 0.25, 0.2))
	mirror := material.NewGlossy(core.NewVec3(0.8, 0.8, 0.8), 0.3)

	// The glass material is shared by the outer shell and the left sphere
	return NewScene(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, glass),
		geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.25, red),
		geometry.NewSphere(core.NewVec3(-1.1, -0.15, -1), 0.35, glass),
		geometry.NewSphere(core.NewVec3(1.1, -0.1, -1), 0.4, water),
		geometry.NewSphere(core.NewVec3(0, 0.6, -3), 1.0, mirror),
	)
}
